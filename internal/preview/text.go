package preview

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectEncoding(content []byte) textEncoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return encodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

// decodeText turns file content into displayable UTF-8.
// Invalid sequences are replaced, never reported.
func decodeText(content []byte) string {
	switch detectEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}
	return strings.ToValidUTF8(string(content), "�")
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return strings.ToValidUTF8(string(content), "�")
	}
	return string(out)
}
