package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"ascii", "aGVsbG8=", "hello"},
		{"path like", "dGFua2kvbWFwcy9zYW5kYm94", "tanki/maps/sandbox"},
		{"cyrillic", Encode("Танки"), "Танки"},
		{"invalid alphabet", "not base64!", "not base64!"},
		{"bad padding", "aGVsbG8", "aGVsbG8"},
		{"invalid utf8", Encode(string([]byte{0xff, 0xfe, 0xfd})), Encode(string([]byte{0xff, 0xfe, 0xfd}))},
		{"empty", "", ""},
		{"url alphabet", "-_-_", "-_-_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.in))
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"sounds/engine_idle",
		"日本語のテキスト",
		"emoji 🎮 ok",
		"with\nnewline",
		"   spaced   ",
	}

	for _, s := range inputs {
		assert.Equal(t, s, Decode(Encode(s)), "round trip of %q", s)
	}
}

func TestTryDecode(t *testing.T) {
	decoded, ok := TryDecode("aGVsbG8=")
	assert.True(t, ok)
	assert.Equal(t, "hello", decoded)

	decoded, ok = TryDecode("%%%")
	assert.False(t, ok)
	assert.Equal(t, "%%%", decoded)

	_, ok = TryDecode("")
	assert.False(t, ok)
}

func TestDecodeFileName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"aGVsbG8=.cache", "hello"},
		{"/tmp/cache/aGVsbG8=.bin", "hello"},
		{"aGVsbG8=", "hello"},
		{"plain.txt", "plain"},
		{".hidden", ".hidden"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DecodeFileName(tt.in), "DecodeFileName(%q)", tt.in)
	}
}
