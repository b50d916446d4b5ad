package classify

import (
	"bytes"
	"strings"
	"unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LooksLikeXML is the textual probe: after leading whitespace (and a UTF-8
// byte order mark) the text starts with "<?xml" in any case, or starts with
// "<" and contains ">" somewhere in the header.
func LooksLikeXML(header []byte) bool {
	if len(header) < 2 {
		return false
	}
	if len(header) > HeaderSize {
		header = header[:HeaderSize]
	}

	text := string(bytes.TrimPrefix(header, utf8BOM))
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if text == "" {
		return false
	}

	if len(text) >= 5 && strings.EqualFold(text[:5], "<?xml") {
		return true
	}
	return text[0] == '<' && strings.Contains(text, ">")
}
