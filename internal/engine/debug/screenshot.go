// Package debug provides developer conveniences for the running game.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes numbered PNG captures into a directory.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
	last   string
	seq    int
}

// NewScreenshots creates a capturer writing to dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// SetDir changes the output directory.
func (s *Screenshots) SetDir(dir string) {
	s.dir = dir
}

// FlipRGBA builds an image from bottom-up RGBA rows, as read back from
// OpenGL.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels writes bottom-up RGBA pixels as a PNG and returns its path.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img)
}

// Save writes img as a PNG and returns its path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.nextName()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// nextName returns a timestamped file name, adding a counter when several
// captures land in the same second.
func (s *Screenshots) nextName() string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	if stamp == s.last {
		s.seq++
	} else {
		s.last, s.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", s.prefix, stamp)
	if s.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", s.prefix, stamp, s.seq)
	}
	return filepath.Join(s.dir, name)
}
