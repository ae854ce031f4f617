package fetcher

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts raw input bytes to a UTF-8 string. Valid UTF-8 passes
// through unchanged; anything else is reinterpreted as Latin-1, which maps
// every byte to a code point and therefore never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding is total; this path is unreachable in practice
		// but falls back to lossy UTF-8 conversion anyway.
		return string(data)
	}
	return string(decoded)
}
