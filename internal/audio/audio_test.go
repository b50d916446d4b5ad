package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcmWAV returns a 16-bit stereo PCM WAV file with frames of a sine tone
func pcmWAV(frames int) []byte {
	const (
		channels   = 2
		sampleRate = 22050
		bits       = 16
	)
	blockAlign := channels * bits / 8
	dataSize := frames * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bits))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	for i := 0; i < frames; i++ {
		v := int16(math.Sin(float64(i)/10) * 8000)
		binary.Write(&buf, binary.LittleEndian, v)
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecode_WAV(t *testing.T) {
	path := writeFile(t, "tone", pcmWAV(2048))

	stream, format, err := Decode(path)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, 2, format.NumChannels)
	assert.EqualValues(t, 22050, format.SampleRate)
	assert.Equal(t, 2048, stream.Len())
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "adts", []byte{0xFF, 0xF1, 0x50, 0x80, 0x02, 0x1F, 0xFC})

	_, _, err := Decode(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_Junk(t *testing.T) {
	path := writeFile(t, "junk", bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, 64))

	_, _, err := Decode(path)
	require.Error(t, err)
}

func TestDecoderProber(t *testing.T) {
	tone := writeFile(t, "tone", pcmWAV(1024))
	junk := writeFile(t, "junk", []byte("definitely not audio"))
	empty := writeFile(t, "empty", nil)

	var p DecoderProber
	assert.True(t, p.Probe(tone))
	assert.False(t, p.Probe(junk))
	assert.False(t, p.Probe(empty))
	assert.False(t, p.Probe(filepath.Join(t.TempDir(), "missing")))
}

func TestFFprobeProber_MissingCommand(t *testing.T) {
	p := FFprobeProber{Command: "ffprobe-does-not-exist"}
	assert.False(t, p.Probe(writeFile(t, "tone", pcmWAV(16))))
}

func TestNewProber(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantErr bool
	}{
		{"", false, false},
		{"decoder", false, false},
		{"Decoder", false, false},
		{"ffprobe", false, false},
		{"none", true, false},
		{"magic", true, true},
	}

	for _, tt := range tests {
		p, err := NewProber(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "NewProber(%q)", tt.name)
		} else {
			assert.NoError(t, err, "NewProber(%q)", tt.name)
		}
		assert.Equal(t, tt.wantNil, p == nil, "NewProber(%q)", tt.name)
	}
}
