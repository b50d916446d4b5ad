package model

import "time"

// CatalogEntry describes one classified file of the cache directory
type CatalogEntry struct {
	Path            string
	DecodedIdentity string
	ContentType     ContentType
	Format          Format
	Size            int64
	ModTime         time.Time
}

// Catalog is the ordered result of one directory scan
type Catalog struct {
	Dir         string
	Entries     []CatalogEntry
	Fingerprint uint64
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// Entry returns the entry at index i
func (c *Catalog) Entry(i int) (CatalogEntry, bool) {
	if c == nil || i < 0 || i >= len(c.Entries) {
		return CatalogEntry{}, false
	}
	return c.Entries[i], true
}

// IndexOf returns the index of the entry with the given path or -1
func (c *Catalog) IndexOf(path string) int {
	if c == nil {
		return -1
	}
	for i, e := range c.Entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

// CountByType returns how many entries carry each content type
func (c *Catalog) CountByType() map[ContentType]int {
	counts := make(map[ContentType]int)
	if c == nil {
		return counts
	}
	for _, e := range c.Entries {
		counts[e.ContentType]++
	}
	return counts
}
