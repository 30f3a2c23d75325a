package changelog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback poll cadence for missed fsnotify events.
const pollInterval = 250 * time.Millisecond

// Tailer streams content appended to the today log as it is written.
// It uses fsnotify for change detection with a periodic poll as backup,
// and survives the rename that replaces the file on day rollover.
type Tailer struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewTailer creates a Tailer for the given file path. The file does not
// need to exist yet; the tailer waits for its creation.
func NewTailer(path string) (*Tailer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Tailer{path: path, watcher: watcher}, nil
}

// Close releases the underlying watcher.
func (t *Tailer) Close() error {
	return t.watcher.Close()
}

// Run dumps the file's current content to w, then streams appended
// content until ctx is cancelled. When the file shrinks or is replaced,
// reading restarts from the beginning of the new content.
func (t *Tailer) Run(ctx context.Context, w io.Writer) error {
	dir := filepath.Dir(t.path)
	if dir == "" {
		dir = "."
	}
	if err := t.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	offset, err := t.drain(w, 0)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-t.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if event.Name != t.path {
				continue
			}
			if offset, err = t.drain(w, offset); err != nil {
				return err
			}
		case <-ticker.C:
			if offset, err = t.drain(w, offset); err != nil {
				return err
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// drain copies everything past offset to w and returns the new offset.
// A missing file is not an error (it may not have been created yet); a
// truncated or replaced file resets the offset to zero.
func (t *Tailer) drain(w io.Writer, offset int64) (int64, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return offset, fmt.Errorf("opening %s: %w", t.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat %s: %w", t.path, err)
	}
	if info.Size() < offset {
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seeking in %s: %w", t.path, err)
	}

	n, err := io.Copy(w, f)
	if err != nil {
		return offset, fmt.Errorf("reading %s: %w", t.path, err)
	}
	return offset + n, nil
}
