package scanner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/cache-browser/internal/model"
)

// DefaultDebounce is the quiet period after the last event before a rescan
const DefaultDebounce = 500 * time.Millisecond

// WatchOptions configures a Watcher
type WatchOptions struct {
	Debounce time.Duration

	// Initial is the catalog already shown; an identical rescan is not delivered
	Initial *model.Catalog

	OnCatalog func(*model.Catalog)
	OnError   func(error)
}

// Watcher rescans a directory after changes settle and delivers catalogs
// whose fingerprint differs from the last one delivered
type Watcher struct {
	scanner  *Scanner
	dir      string
	debounce time.Duration
	opts     WatchOptions
	fsw      *fsnotify.Watcher

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once

	last    uint64
	hasLast bool
}

// Watch starts watching dir until ctx is done or Close is called
func (s *Scanner) Watch(ctx context.Context, dir string, opts WatchOptions) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, &ScanError{Dir: dir, Err: err}
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		scanner:  s,
		dir:      dir,
		debounce: debounce,
		opts:     opts,
		fsw:      fsw,
		cancel:   cancel,
	}
	if opts.Initial != nil {
		w.last = opts.Initial.Fingerprint
		w.hasLast = true
	}

	w.wg.Add(1)
	go w.run(ctx)
	return w, nil
}

// Dir returns the watched directory
func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops the watcher and waits for the loop to exit.
// No callback runs after Close returns.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.cancel()
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			timer.Reset(w.debounce)
			pending = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: %s: %v", w.dir, err)

		case <-pending:
			pending = nil
			w.rescan(ctx)
		}
	}
}

func (w *Watcher) rescan(ctx context.Context) {
	catalog, err := w.scanner.Scan(ctx, w.dir)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return
		}
		log.Printf("watcher: rescan %s: %v", w.dir, err)
		if w.opts.OnError != nil {
			w.opts.OnError(err)
		}
		return
	}

	if w.hasLast && catalog.Fingerprint == w.last {
		return
	}
	w.last = catalog.Fingerprint
	w.hasLast = true

	if w.opts.OnCatalog != nil {
		w.opts.OnCatalog(catalog)
	}
}
