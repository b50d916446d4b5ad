package classify

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cache-browser/internal/model"
)

type countingProber struct {
	result bool
	calls  atomic.Int32
}

func (p *countingProber) Probe(string) bool {
	p.calls.Add(1)
	return p.result
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestClassifier_ProbeRunsLast(t *testing.T) {
	prober := &countingProber{result: true}
	c := NewClassifier(prober)

	assert.Equal(t, model.FormatPNG, c.Classify([]byte("\x89PNG\r\n\x1a\n"), "x"))
	assert.Equal(t, model.FormatXML, c.Classify([]byte("<a>"), "x"))
	assert.Equal(t, int32(0), prober.calls.Load())

	assert.Equal(t, model.FormatAudio, c.Classify([]byte{0x01, 0x02, 0x03}, "x"))
	assert.Equal(t, int32(1), prober.calls.Load())
}

func TestClassifier_ProbeFailureIsUnknown(t *testing.T) {
	prober := &countingProber{result: false}
	c := NewClassifier(prober)

	assert.Equal(t, model.FormatUnknown, c.Classify(make([]byte, 16), "x"))
	assert.Equal(t, int32(1), prober.calls.Load())
}

func TestClassifier_EmptyFileSkipsProbe(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty", nil)

	prober := &countingProber{result: true}
	c := NewClassifier(prober)

	assert.Equal(t, model.FormatUnknown, c.ClassifyFile(path))
	assert.Equal(t, int32(0), prober.calls.Load())
}

func TestClassifier_MissingFileIsUnknown(t *testing.T) {
	prober := &countingProber{result: true}
	c := NewClassifier(prober)

	assert.Equal(t, model.FormatUnknown, c.ClassifyFile(filepath.Join(t.TempDir(), "gone")))
	assert.Equal(t, int32(0), prober.calls.Load())
}

func TestClassifier_NilProber(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, model.FormatUnknown, c.Classify([]byte{0x01, 0x02}, "x"))

	var nilClassifier *Classifier
	assert.Equal(t, model.FormatJPEG, nilClassifier.Classify([]byte{0xFF, 0xD8, 0xFF}, "x"))
}

func TestClassifier_ClassifyFile(t *testing.T) {
	dir := t.TempDir()
	c := NewClassifier(ProberFunc(func(string) bool { return false }))

	tests := []struct {
		name     string
		data     []byte
		expected model.Format
	}{
		{"gif", []byte("GIF89a\x01\x00\x01\x00"), model.FormatGIF},
		{"ogg", []byte("OggS\x00\x02"), model.FormatOGG},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), model.FormatFLAC},
		{"xml", []byte("\n\n<?xml version=\"1.0\"?><root/>"), model.FormatXML},
		{"junk", []byte("just some text"), model.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.data)
			assert.Equal(t, tt.expected, c.ClassifyFile(path))
		})
	}
}

func TestReadHeader(t *testing.T) {
	dir := t.TempDir()

	short := writeFile(t, dir, "short", []byte("abc"))
	header, err := ReadHeader(short)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), header)

	long := writeFile(t, dir, "long", make([]byte, HeaderSize*3))
	header, err = ReadHeader(long)
	require.NoError(t, err)
	assert.Len(t, header, HeaderSize)

	_, err = ReadHeader(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
