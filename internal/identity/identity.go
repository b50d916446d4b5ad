// Package identity recovers the human-readable name that the cache embeds in
// each file name as standard base64.
package identity

import (
	"encoding/base64"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var encoding = base64.StdEncoding.Strict()

// Decode returns the UTF-8 text encoded in name, or name unchanged when it is
// not strict standard base64 or the decoded bytes are not valid UTF-8.
func Decode(name string) string {
	decoded, _ := TryDecode(name)
	return decoded
}

// TryDecode is Decode with an explicit outcome
func TryDecode(name string) (string, bool) {
	if name == "" {
		return name, false
	}
	raw, err := encoding.DecodeString(name)
	if err != nil || !utf8.Valid(raw) {
		return name, false
	}
	return string(raw), true
}

// Encode is the inverse of Decode for valid UTF-8 input
func Encode(s string) string {
	return encoding.EncodeToString([]byte(s))
}

// DecodeFileName strips directories and the last extension from base, then decodes it
func DecodeFileName(base string) string {
	return Decode(StripExtension(filepath.Base(base)))
}

// StripExtension removes the last extension from a base name
func StripExtension(base string) string {
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
