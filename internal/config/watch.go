package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/drivetown/internal/logger"
)

// reloadDebounce coalesces the several events one editor save produces.
const reloadDebounce = 100 * time.Millisecond

// Watcher re-reads a config file whenever it changes on disk.
//
// Reloaded configs arrive on Configs. Files that fail to parse or validate
// are reported on Errors and no config is sent for them.
type Watcher struct {
	Configs chan *Config
	Errors  chan error

	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so that
// editors that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		Configs: make(chan *Config, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		log:     logger.Named("config"),
		watcher: fw,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Configs and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.done)
	}()

	// Reload once the file has been quiet for reloadDebounce.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.log.Debug("config reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.log.Debug("config file reloaded", zap.String("path", w.path))
	}
	w.send(cfg, err)
}

// send delivers a result, replacing an unread one of the same kind so the
// consumer always sees the newest file.
func (w *Watcher) send(cfg *Config, err error) {
	if err != nil {
		select {
		case <-w.Errors:
		default:
		}
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case <-w.Configs:
	default:
	}
	select {
	case w.Configs <- cfg:
	case <-w.closeCh:
	}
}
