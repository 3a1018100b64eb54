package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipRGBA(t *testing.T) {
	// 1x2: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); b == 0 || r != 0 {
		t.Error("top row should be blue after flip")
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Error("bottom row should be red after flip")
	}
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	if _, err := FlipRGBA(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "drivetown")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	pixels := make([]byte, 4*3*4)
	first, err := s.SavePixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	second, err := s.SavePixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	if first == second {
		t.Errorf("two captures in one second share a name: %s", first)
	}
	if filepath.Base(first) != "drivetown_2026-03-01_12-00-00.png" {
		t.Errorf("unexpected name %s", filepath.Base(first))
	}
	if filepath.Base(second) != "drivetown_2026-03-01_12-00-00_1.png" {
		t.Errorf("unexpected name %s", filepath.Base(second))
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("image size = %dx%d, want 4x3", b.Dx(), b.Dy())
	}
}
