package locator

import (
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watcher reports when a watched executable is written, removed, renamed or replaced.
// It watches parent directories so that replacement by rename is seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   ports.Logger
	onChange func(key string)

	mu    sync.Mutex
	files map[string]string // cleaned file path -> key passed to Watch
	dirs  map[string]bool
	done  chan struct{}
}

// NewWatcher starts a watcher that calls onChange with the key of a changed executable.
func NewWatcher(logger ports.Logger, onChange func(key string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create executable watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   logger,
		onChange: onChange,
		files:    make(map[string]string),
		dirs:     make(map[string]bool),
		done:     make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Watch starts watching the executable identified by key.
// The bare command token is looked up in PATH.
func (w *Watcher) Watch(key string) error {
	file := key
	if key == domain.BareExecutable {
		found, err := exec.LookPath(key)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "cannot locate executable in PATH"), "key", key)
		}
		file = found
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "cannot resolve executable path"), "path", file)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.files[abs] = key
	if w.dirs[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		delete(w.files, abs)
		return zerr.With(zerr.Wrap(err, "cannot watch directory"), "dir", dir)
	}
	w.dirs[dir] = true
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) processEvents() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Create) {
				continue
			}

			w.mu.Lock()
			key, watched := w.files[filepath.Clean(event.Name)]
			w.mu.Unlock()

			if watched && w.onChange != nil {
				w.onChange(key)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Debug("executable watcher error: " + err.Error())
		}
	}
}
