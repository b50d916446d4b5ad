package classify

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/cache-browser/internal/model"
)

// headerFor builds the shortest header satisfying every part of s
func headerFor(s Signature) []byte {
	header := make([]byte, s.Span())
	for _, p := range s.Parts {
		copy(header[p.Offset:], p.Magic)
	}
	return header
}

func TestClassify_EverySignature(t *testing.T) {
	for _, s := range Signatures {
		header := headerFor(s)
		assert.Equal(t, s.Format, Classify(header), "header % X", header)
	}
}

func TestClassify_ShortHeaderNeverMatchesRule(t *testing.T) {
	for _, s := range Signatures {
		header := headerFor(s)
		for n := 0; n < len(header); n++ {
			assert.False(t, s.Match(header[:n]), "%s matched %d of %d bytes", s.Format, n, len(header))
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		expected model.ContentType
		format   model.Format
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}, model.ContentTypeImage, model.FormatJPEG},
		{"wav", []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00, 0x00, 0x00, 0x57, 0x41, 0x56, 0x45}, model.ContentTypeAudio, model.FormatWAV},
		{"xml declaration", []byte{0x3C, 0x3F, 0x78, 0x6D, 0x6C, 0x20, 0x76, 0x65}, model.ContentTypeXML, model.FormatXML},
		{"all zero", make([]byte, 16), model.ContentTypeUnknown, model.FormatUnknown},
		{"riff without wave", []byte("RIFF\x00\x00\x00\x00AVI "), model.ContentTypeUnknown, model.FormatUnknown},
		{"3ds", []byte{0x4D, 0x4D, 0x10, 0x00}, model.ContentTypeModel3DS, model.Format3DS},
		{"big endian tiff", []byte{0x4D, 0x4D, 0x00, 0x2A, 0x00}, model.ContentTypeImage, model.FormatTIFF},
		{"library container", []byte("\x00\x00\x00\x01\x02\x03librar"), model.ContentTypeContainerArchive, model.FormatTara},
		{"tara header", []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0x69, 0x00, 0xAA}, model.ContentTypeContainerArchive, model.FormatTara},
		{"empty", nil, model.ContentTypeUnknown, model.FormatUnknown},
		{"one byte", []byte{0xFF}, model.ContentTypeUnknown, model.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := Classify(tt.header)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.expected, format.ContentType())
		})
	}
}

func TestClassify_Total(t *testing.T) {
	valid := map[model.ContentType]bool{
		model.ContentTypeImage:            true,
		model.ContentTypeXML:              true,
		model.ContentTypeModel3DS:         true,
		model.ContentTypeContainerArchive: true,
		model.ContentTypeAudio:            true,
		model.ContentTypeUnknown:          true,
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		header := make([]byte, rng.Intn(HeaderSize+16))
		rng.Read(header)
		ct := Classify(header).ContentType()
		assert.True(t, valid[ct], "header % X gave %q", header, ct)
	}
}

func TestClassify_OnlyFirstHeaderSizeBytesCount(t *testing.T) {
	header := append(bytes.Repeat([]byte{'a'}, HeaderSize), []byte("<x>")...)
	assert.Equal(t, model.FormatUnknown, Classify(header))
}

func TestSignature_Span(t *testing.T) {
	for _, s := range Signatures {
		assert.LessOrEqual(t, s.Span(), 16, "%s", s.Format)
		assert.Greater(t, s.Span(), 0, "%s", s.Format)
	}
}
