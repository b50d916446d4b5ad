package classify

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ytget/cache-browser/internal/model"
)

// Prober is the expensive last-resort audio check.
// Any failure must be reported as false.
type Prober interface {
	Probe(path string) bool
}

// ProberFunc adapts a function to Prober
type ProberFunc func(path string) bool

// Probe calls f(path)
func (f ProberFunc) Probe(path string) bool {
	return f(path)
}

// Classifier combines the signature table with an optional fallback prober
type Classifier struct {
	prober Prober
}

// NewClassifier creates a classifier; prober may be nil to disable the fallback
func NewClassifier(prober Prober) *Classifier {
	return &Classifier{prober: prober}
}

// Classify returns the format for header, probing path only when every
// cheap rule failed on a non-empty header.
func (c *Classifier) Classify(header []byte, path string) model.Format {
	format := Classify(header)
	if format != model.FormatUnknown || len(header) == 0 {
		return format
	}
	if c == nil || c.prober == nil {
		return model.FormatUnknown
	}
	if c.prober.Probe(path) {
		return model.FormatAudio
	}
	return model.FormatUnknown
}

// ClassifyFile reads the header of path and classifies it.
// Read failures yield FormatUnknown.
func (c *Classifier) ClassifyFile(path string) model.Format {
	header, err := ReadHeader(path)
	if err != nil {
		log.Printf("classify: header read failed for %s: %v", path, err)
		return model.FormatUnknown
	}
	return c.Classify(header, path)
}

// ReadHeader returns up to HeaderSize leading bytes of path
func ReadHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read: %w", err)
	}
	return buf[:n], nil
}
