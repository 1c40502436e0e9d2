package scan

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Byte-order marks, longest first so UTF-32 LE is not mistaken for UTF-16 LE.
var (
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeContent classifies raw file bytes and returns decoded text. Valid
// UTF-8 (with or without BOM) and BOM-marked UTF-16/32 variants are decoded
// lossily; anything else is reported as binary and the returned text is
// empty.
func decodeContent(data []byte) (text string, binary bool) {
	if len(data) == 0 {
		return "", false
	}

	switch {
	case bytes.HasPrefix(data, bomUTF32LE):
		return decodeWith(utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder(), data)
	case bytes.HasPrefix(data, bomUTF32BE):
		return decodeWith(utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder(), data)
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), data)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), data)
	case bytes.HasPrefix(data, bomUTF8):
		return strings.ToValidUTF8(string(data[len(bomUTF8):]), "�"), false
	}

	// NUL bytes mark binary content even when the byte stream happens to be
	// valid UTF-8.
	if bytes.IndexByte(data, 0) >= 0 {
		return "", true
	}
	if !utf8.Valid(data) {
		return "", true
	}
	return string(data), false
}

func decodeWith(dec transform.Transformer, data []byte) (string, bool) {
	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", true
	}
	return strings.ToValidUTF8(string(decoded), "�"), false
}

// binaryPlaceholder stands in for binary content so that raw bytes never
// reach the document.
func binaryPlaceholder(baseName string, size int) string {
	return fmt.Sprintf("[Binary file: %s (%d bytes)]", baseName, size)
}
