package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/cache-browser/internal/identity"
	"github.com/ytget/cache-browser/internal/model"
)

// FileClassifier is satisfied by *classify.Classifier
type FileClassifier interface {
	ClassifyFile(path string) model.Format
}

// Options configures a Scanner
type Options struct {
	// Workers bounds parallel classification. Zero means GOMAXPROCS.
	Workers int

	Include []string
	Exclude []string

	// OnProgress is called after each file is classified. Calls are serialized.
	OnProgress func(done, total int)
}

// Scanner builds catalogs of a cache directory
type Scanner struct {
	classifier FileClassifier
	filter     *Filter
	workers    int
	onProgress func(done, total int)
}

// New creates a scanner
func New(classifier FileClassifier, opts Options) (*Scanner, error) {
	filter, err := NewFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Scanner{
		classifier: classifier,
		filter:     filter,
		workers:    workers,
		onProgress: opts.OnProgress,
	}, nil
}

type candidate struct {
	path string
	name string
	info fs.FileInfo
}

// Scan classifies the immediate regular files of dir and returns them
// ordered by decoded identity, then path. Unknown files are dropped.
func (s *Scanner) Scan(ctx context.Context, dir string) (*model.Catalog, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &ScanError{Dir: dir, Err: err}
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, &ScanError{Dir: absDir, Err: err}
	}

	candidates := s.collect(absDir, dirEntries)
	entries := make([]model.CatalogEntry, len(candidates))

	var (
		progressMu sync.Mutex
		done       int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			format := s.classifier.ClassifyFile(c.path)
			entries[i] = model.CatalogEntry{
				Path:            c.path,
				DecodedIdentity: identity.DecodeFileName(c.name),
				ContentType:     format.ContentType(),
				Format:          format,
				Size:            c.info.Size(),
				ModTime:         c.info.ModTime(),
			}

			if s.onProgress != nil {
				progressMu.Lock()
				done++
				s.onProgress(done, len(candidates))
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", absDir, err)
	}

	known := entries[:0]
	for _, e := range entries {
		if e.ContentType.IsKnown() {
			known = append(known, e)
		}
	}
	SortEntries(known)

	return &model.Catalog{
		Dir:         absDir,
		Entries:     known,
		Fingerprint: Fingerprint(known),
	}, nil
}

// collect returns the regular files that pass the filter
func (s *Scanner) collect(dir string, dirEntries []os.DirEntry) []candidate {
	candidates := make([]candidate, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !s.filter.Allow(name) {
			continue
		}

		path := filepath.Join(dir, name)
		var (
			info fs.FileInfo
			err  error
		)
		if de.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(path)
		} else {
			info, err = de.Info()
		}
		if err != nil {
			log.Printf("scanner: stat %s: %v", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		candidates = append(candidates, candidate{path: path, name: name, info: info})
	}
	return candidates
}

// SortEntries orders entries by decoded identity, then path, comparing bytes
func SortEntries(entries []model.CatalogEntry) {
	slices.SortStableFunc(entries, func(a, b model.CatalogEntry) int {
		if c := strings.Compare(a.DecodedIdentity, b.DecodedIdentity); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// Fingerprint hashes the ordered (path, format, size, mtime) tuples
func Fingerprint(entries []model.CatalogEntry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		d.WriteString(e.Path)
		d.WriteString("\x00")
		d.WriteString(string(e.Format))
		d.WriteString("\x00")
		d.WriteString(strconv.FormatInt(e.Size, 10))
		d.WriteString("\x00")
		d.WriteString(strconv.FormatInt(e.ModTime.UnixNano(), 10))
		d.WriteString("\n")
	}
	return d.Sum64()
}
