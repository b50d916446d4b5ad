package classify

import (
	"bytes"

	"github.com/ytget/cache-browser/internal/model"
)

// HeaderSize is how many leading bytes are read from each file.
// Signatures need at most 16, the XML probe looks at all of them.
const HeaderSize = 128

// Part is a byte pattern expected at a fixed offset
type Part struct {
	Offset int
	Magic  []byte
}

// Signature matches when every part matches
type Signature struct {
	Format model.Format
	Parts  []Part
}

func sig(format model.Format, magic ...byte) Signature {
	return Signature{Format: format, Parts: []Part{{Offset: 0, Magic: magic}}}
}

// Signatures is checked top to bottom, first match wins.
// 4D 4D must stay after big-endian TIFF.
var Signatures = []Signature{
	// Images
	sig(model.FormatJPEG, 0xFF, 0xD8, 0xFF),
	sig(model.FormatPNG, 0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A),
	sig(model.FormatGIF, []byte("GIF87a")...),
	sig(model.FormatGIF, []byte("GIF89a")...),
	sig(model.FormatBMP, []byte("BM")...),
	sig(model.FormatTIFF, 0x49, 0x49, 0x2A, 0x00), // little endian
	sig(model.FormatTIFF, 0x4D, 0x4D, 0x00, 0x2A), // big endian

	// Models and containers
	sig(model.Format3DS, 0x4D, 0x4D),
	{Format: model.FormatTara, Parts: []Part{
		{Offset: 0, Magic: []byte{0x00, 0x00, 0x00}},
		{Offset: 6, Magic: []byte("librar")},
	}},
	sig(model.FormatTara, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0x69, 0x00),

	// Audio
	sig(model.FormatMP3, []byte("ID3")...),
	sig(model.FormatMP3, 0xFF, 0xFB),
	{Format: model.FormatWAV, Parts: []Part{
		{Offset: 0, Magic: []byte("RIFF")},
		{Offset: 8, Magic: []byte("WAVE")},
	}},
	sig(model.FormatOGG, []byte("OggS")...),
	sig(model.FormatFLAC, []byte("fLaC")...),
	sig(model.FormatAAC, []byte("ADIF")...),
	sig(model.FormatAAC, 0xFF, 0xF1), // ADTS
	sig(model.FormatAAC, 0xFF, 0xF9), // ADTS
	sig(model.FormatWMA, 0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
		0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C), // ASF header GUID
}

// Span returns how many header bytes the signature needs
func (s Signature) Span() int {
	span := 0
	for _, p := range s.Parts {
		if end := p.Offset + len(p.Magic); end > span {
			span = end
		}
	}
	return span
}

// Match reports whether header satisfies every part.
// A header shorter than a part never matches it.
func (s Signature) Match(header []byte) bool {
	if len(s.Parts) == 0 {
		return false
	}
	for _, p := range s.Parts {
		end := p.Offset + len(p.Magic)
		if end > len(header) {
			return false
		}
		if !bytes.Equal(header[p.Offset:end], p.Magic) {
			return false
		}
	}
	return true
}

// Classify runs the signature table and then the XML probe.
// It never runs the audio fallback.
func Classify(header []byte) model.Format {
	if len(header) == 0 {
		return model.FormatUnknown
	}
	if len(header) > HeaderSize {
		header = header[:HeaderSize]
	}

	for _, s := range Signatures {
		if s.Match(header) {
			return s.Format
		}
	}

	if LooksLikeXML(header) {
		return model.FormatXML
	}
	return model.FormatUnknown
}
