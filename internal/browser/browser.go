package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ytget/cache-browser/internal/identity"
	"github.com/ytget/cache-browser/internal/model"
	"github.com/ytget/cache-browser/internal/platform"
	"github.com/ytget/cache-browser/internal/playback"
	"github.com/ytget/cache-browser/internal/preview"
	"github.com/ytget/cache-browser/internal/scanner"
)

var (
	// ErrNoDirectory is returned by Rescan before any directory was opened
	ErrNoDirectory = errors.New("no directory opened")

	// ErrIndexOutOfRange is returned by Select for an index outside the catalog
	ErrIndexOutOfRange = errors.New("catalog index out of range")

	// ErrNotListed is returned by SelectPath for a path missing from the catalog
	ErrNotListed = errors.New("entry not in catalog")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("browser is closed")
)

// SettingsStore persists the values a session restores on start.
// *config.Settings satisfies it.
type SettingsStore interface {
	GetLastDirectory() string
	SetLastDirectory(dir string)
	GetVolume() float64
	SetVolume(volume float64)
}

// Options configures a Browser
type Options struct {
	Watch    bool
	Debounce time.Duration
}

// Browser is one browsing session over a cache directory
type Browser struct {
	scanner  *scanner.Scanner
	preview  *preview.Controller
	player   *playback.Controller
	settings SettingsStore
	opts     Options

	mu       sync.RWMutex
	catalog  *model.Catalog
	selected int
	watcher  *scanner.Watcher
	closed   bool

	onCatalog    func(*model.Catalog)
	onPreview    func(model.PreviewState)
	onPlayback   func(model.PlaybackSession)
	onWatchError func(error)
}

// New creates a browser. settings may be nil.
func New(sc *scanner.Scanner, engine playback.Engine, settings SettingsStore, opts Options) *Browser {
	volume := model.DefaultVolume
	if settings != nil {
		volume = settings.GetVolume()
	}

	player := playback.NewController(engine, volume)
	b := &Browser{
		scanner:  sc,
		player:   player,
		preview:  preview.NewController(player),
		settings: settings,
		opts:     opts,
		selected: -1,
	}

	player.SetUpdateCallback(b.notifyPlayback)
	b.preview.SetUpdateCallback(b.notifyPreview)
	return b
}

// SetCatalogCallback sets the callback for catalogs delivered by the watcher
func (b *Browser) SetCatalogCallback(callback func(*model.Catalog)) {
	b.mu.Lock()
	b.onCatalog = callback
	b.mu.Unlock()
}

// SetPreviewCallback sets the callback for preview state changes
func (b *Browser) SetPreviewCallback(callback func(model.PreviewState)) {
	b.mu.Lock()
	b.onPreview = callback
	b.mu.Unlock()
}

// SetPlaybackCallback sets the callback for playback transitions
func (b *Browser) SetPlaybackCallback(callback func(model.PlaybackSession)) {
	b.mu.Lock()
	b.onPlayback = callback
	b.mu.Unlock()
}

// SetWatchErrorCallback sets the callback for failed background rescans
func (b *Browser) SetWatchErrorCallback(callback func(error)) {
	b.mu.Lock()
	b.onWatchError = callback
	b.mu.Unlock()
}

// LastDirectory returns the directory remembered from the previous session
func (b *Browser) LastDirectory() string {
	if b.settings == nil {
		return ""
	}
	return b.settings.GetLastDirectory()
}

// Open scans dir and makes it the current directory. The previous selection
// is released. On failure the current catalog is kept.
func (b *Browser) Open(ctx context.Context, dir string) (*model.Catalog, error) {
	if b.isClosed() {
		return nil, ErrClosed
	}

	catalog, err := b.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	b.preview.Close()

	b.mu.Lock()
	b.catalog = catalog
	b.selected = -1
	oldWatcher := b.watcher
	b.watcher = nil
	b.mu.Unlock()

	if oldWatcher != nil {
		oldWatcher.Close()
	}
	if b.settings != nil {
		b.settings.SetLastDirectory(catalog.Dir)
	}
	if b.opts.Watch {
		b.startWatcher(catalog)
	}

	log.Printf("opened %s: %d entries", catalog.Dir, catalog.Len())
	return catalog, nil
}

// Rescan rebuilds the catalog of the current directory, keeping the
// selection when its file is still listed
func (b *Browser) Rescan(ctx context.Context) (*model.Catalog, error) {
	if b.isClosed() {
		return nil, ErrClosed
	}

	b.mu.RLock()
	current := b.catalog
	b.mu.RUnlock()
	if current == nil {
		return nil, ErrNoDirectory
	}

	catalog, err := b.scanner.Scan(ctx, current.Dir)
	if err != nil {
		return nil, err
	}
	b.replaceCatalog(catalog)
	return catalog, nil
}

// Catalog returns the current catalog, nil before the first Open
func (b *Browser) Catalog() *model.Catalog {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.catalog
}

// SelectedIndex returns the selected catalog index or -1
func (b *Browser) SelectedIndex() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

// Select previews the entry at index. Audio is always stopped first.
func (b *Browser) Select(index int) (model.PreviewState, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return model.PreviewState{}, ErrClosed
	}
	entry, ok := b.catalog.Entry(index)
	if !ok {
		b.mu.Unlock()
		return model.PreviewState{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	b.selected = index
	b.mu.Unlock()

	return b.preview.Select(entry), nil
}

// SelectPath previews the entry with path. Callers holding a stale index
// use it so a catalog swapped by the watcher cannot change the target.
func (b *Browser) SelectPath(path string) (model.PreviewState, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return model.PreviewState{}, ErrClosed
	}
	index := b.catalog.IndexOf(path)
	entry, ok := b.catalog.Entry(index)
	if !ok {
		b.mu.Unlock()
		return model.PreviewState{}, fmt.Errorf("%w: %s", ErrNotListed, path)
	}
	b.selected = index
	b.mu.Unlock()

	return b.preview.Select(entry), nil
}

// SelectedEntry returns the entry being previewed
func (b *Browser) SelectedEntry() (model.CatalogEntry, bool) {
	return b.preview.Selected()
}

// Preview returns the current preview state
func (b *Browser) Preview() model.PreviewState {
	return b.preview.State()
}

// TogglePlay plays or stops the selected audio entry
func (b *Browser) TogglePlay() error {
	return b.player.TogglePlay()
}

// SetVolume sets and persists the playback volume
func (b *Browser) SetVolume(volume float64) {
	b.player.SetVolume(volume)
	if b.settings != nil {
		b.settings.SetVolume(b.player.Volume())
	}
}

// Volume returns the playback volume in [0, 1]
func (b *Browser) Volume() float64 {
	return b.player.Volume()
}

// Status returns the playback status
func (b *Browser) Status() model.PlaybackStatus {
	return b.player.Status()
}

// Session returns the current or last playback session
func (b *Browser) Session() model.PlaybackSession {
	return b.player.Session()
}

// SuggestedFileName returns the export name for entry: its decoded identity
// made safe for a file name, or the raw base name, plus the format extension
func (b *Browser) SuggestedFileName(entry model.CatalogEntry) string {
	name := sanitizeFileName(entry.DecodedIdentity)
	if name == "" {
		name = identity.StripExtension(filepath.Base(entry.Path))
	}
	return name + entry.Format.Extension()
}

// CopyOut copies entry to dst without touching the source
func (b *Browser) CopyOut(entry model.CatalogEntry, dst string) error {
	if err := platform.CopyFile(entry.Path, dst); err != nil {
		return fmt.Errorf("copy %s to %s: %w", filepath.Base(entry.Path), dst, err)
	}
	log.Printf("copied %s to %s", entry.Path, dst)
	return nil
}

// Reveal shows entry in the system file manager
func (b *Browser) Reveal(entry model.CatalogEntry) error {
	return platform.OpenFileInManager(entry.Path)
}

// Close stops playback and watching. Later calls return ErrClosed.
func (b *Browser) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	watcher := b.watcher
	b.watcher = nil
	b.mu.Unlock()

	if watcher != nil {
		watcher.Close()
	}
	b.player.Shutdown()
	b.preview.Close()
}

func (b *Browser) isClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

// replaceCatalog installs a rescan of the current directory
func (b *Browser) replaceCatalog(catalog *model.Catalog) {
	b.mu.Lock()
	if b.catalog != nil && b.catalog.Dir != catalog.Dir {
		b.mu.Unlock()
		return
	}

	previous, hadSelection := b.catalog.Entry(b.selected)
	b.catalog = catalog
	b.selected = -1
	keep := false
	if hadSelection {
		if idx := catalog.IndexOf(previous.Path); idx >= 0 {
			b.selected = idx
			keep = true
		}
	}
	b.mu.Unlock()

	if hadSelection && !keep {
		b.preview.Close()
	}
}

func (b *Browser) startWatcher(catalog *model.Catalog) {
	w, err := b.scanner.Watch(context.Background(), catalog.Dir, scanner.WatchOptions{
		Debounce:  b.opts.Debounce,
		Initial:   catalog,
		OnCatalog: b.handleWatchedCatalog,
		OnError:   b.handleWatchError,
	})
	if err != nil {
		log.Printf("watch %s: %v", catalog.Dir, err)
		return
	}

	b.mu.Lock()
	if b.closed || b.catalog == nil || b.catalog.Dir != catalog.Dir || b.watcher != nil {
		b.mu.Unlock()
		w.Close()
		return
	}
	b.watcher = w
	b.mu.Unlock()
}

func (b *Browser) handleWatchedCatalog(catalog *model.Catalog) {
	if b.isClosed() {
		return
	}
	b.replaceCatalog(catalog)

	b.mu.RLock()
	callback := b.onCatalog
	current := b.catalog
	b.mu.RUnlock()
	if callback != nil && current == catalog {
		callback(catalog)
	}
}

func (b *Browser) handleWatchError(err error) {
	b.mu.RLock()
	callback := b.onWatchError
	b.mu.RUnlock()
	if callback != nil {
		callback(err)
	}
}

func (b *Browser) notifyPreview(state model.PreviewState) {
	b.mu.RLock()
	callback := b.onPreview
	b.mu.RUnlock()
	if callback != nil {
		callback(state)
	}
}

func (b *Browser) notifyPlayback(session model.PlaybackSession) {
	b.mu.RLock()
	callback := b.onPlayback
	b.mu.RUnlock()
	if callback != nil {
		callback(session)
	}
}

// sanitizeFileName replaces characters that are not allowed in file names
func sanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7F:
			return '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		default:
			return r
		}
	}, name)
	return strings.Trim(name, " .")
}
