// Package watcher reports audio files created in a directory using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.AudioWatcher = (*Watcher)(nil)

// DefaultSettle is how long a file must stay unchanged before it is reported.
const DefaultSettle = 500 * time.Millisecond

// AudioExtensions lists the file extensions treated as recordings.
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".webm", ".mp4", ".aac"}

// Watcher reports new audio files once they stop being written.
type Watcher struct {
	extensions map[string]bool
	settle     time.Duration
}

// New creates a watcher for AudioExtensions.
// settle <= 0 uses DefaultSettle.
func New(settle time.Duration) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	extensions := make(map[string]bool, len(AudioExtensions))
	for _, ext := range AudioExtensions {
		extensions[ext] = true
	}
	return &Watcher{
		extensions: extensions,
		settle:     settle,
	}
}

// IsAudioFile reports whether path has a recognised audio extension.
func (w *Watcher) IsAudioFile(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// Watch starts watching dir. Both channels are closed when ctx is cancelled.
// Each file is reported at most once per Watch call.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan string, <-chan error, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, nil, fmt.Errorf("add watch path: %w", err)
	}

	paths := make(chan string)
	errs := make(chan error)
	go w.run(ctx, fsw, paths, errs)

	return paths, errs, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, paths chan<- string, errs chan<- error) {
	defer close(errs)
	defer close(paths)
	defer fsw.Close()

	// pending maps a path to when it last changed.
	pending := make(map[string]time.Time)
	reported := make(map[string]bool)

	ticker := time.NewTicker(w.settle / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.IsAudioFile(event.Name) {
				logger.Debug("Ignoring non-audio file: %s", event.Name)
				continue
			}
			if reported[event.Name] {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			select {
			case errs <- err:
			case <-ctx.Done():
				return
			}

		case now := <-ticker.C:
			for path, changed := range pending {
				if now.Sub(changed) < w.settle {
					continue
				}
				delete(pending, path)
				reported[path] = true

				select {
				case paths <- path:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
