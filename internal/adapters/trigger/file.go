package trigger

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/wallcycle/internal/ports"
)

// FileSource requests a rotation whenever a trigger file is created or written,
// e.g. `touch ~/.wallcycle/next`.
type FileSource struct {
	path   string
	logger ports.Logger
}

// NewFileSource watches path. Its parent directory must exist.
func NewFileSource(path string, logger ports.Logger) *FileSource {
	return &FileSource{
		path:   filepath.Clean(path),
		logger: logger,
	}
}

// Name identifies the source in logs.
func (s *FileSource) Name() string {
	return "file " + s.path
}

// Start watches the trigger file's directory until ctx is canceled.
func (s *FileSource) Start(ctx context.Context, notify func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so the file may be removed and recreated.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				notify()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("trigger file watcher error", ports.Err(err))
			}
		}
	}()
	return nil
}
