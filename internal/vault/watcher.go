package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/models"
)

// DefaultDebounce coalesces bursts of file events into one trigger.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls trigger when a note under the vault is created, written,
// renamed or removed. Events on paths for which ignore returns true are
// dropped. fsnotify is not recursive, so the root and every kind directory
// are watched individually.
type Watcher struct {
	dir      string
	trigger  func()
	ignore   func(path string) bool
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	done    chan struct{}
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewWatcher returns a stopped watcher over dir. ignore may be nil.
func NewWatcher(dir string, trigger func(), ignore func(path string) bool, debounce time.Duration, log *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if ignore == nil {
		ignore = func(string) bool { return false }
	}
	return &Watcher{
		dir:      dir,
		trigger:  trigger,
		ignore:   ignore,
		debounce: debounce,
		logger:   log.WithComponent("vault.watcher"),
	}
}

// Start creates the kind directories and begins watching. Calling Start on a
// running watcher is an error.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return fmt.Errorf("vault watcher already running")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}

	dirs := []string{w.dir}
	for _, kind := range models.RecordKinds {
		dirs = append(dirs, filepath.Join(w.dir, string(kind)))
	}
	for _, d := range dirs {
		if err = os.MkdirAll(d, dirPerm); err != nil {
			fw.Close()
			return fmt.Errorf("create %s: %w", d, err)
		}
		if err = fw.Add(d); err != nil {
			fw.Close()
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	w.watcher = fw
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.loop(fw, w.done)

	w.logger.Info().Str("func", "Watcher.Start").Str("dir", w.dir).Msg("watching vault")
	return nil
}

// Stop closes the watcher and waits for the event loop to exit. A pending
// debounced trigger is dropped.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fw := w.watcher
	w.watcher = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if fw != nil {
		close(w.done)
	}
	w.mu.Unlock()

	if fw == nil {
		return nil
	}

	err := fw.Close()
	w.wg.Wait()
	if err != nil {
		return fmt.Errorf("close fsnotify watcher: %w", err)
	}
	return nil
}

func (w *Watcher) loop(fw *fsnotify.Watcher, done <-chan struct{}) {
	defer w.wg.Done()

	for {
		select {
		case <-done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if isNoteEvent(event) && !w.ignore(event.Name) {
				w.schedule()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("func", "Watcher.loop").Msg("fsnotify error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	w.timer = nil
	running := w.watcher != nil
	w.mu.Unlock()

	if running {
		w.trigger()
	}
}

func isNoteEvent(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || filepath.Ext(name) != noteExt {
		return false
	}
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
