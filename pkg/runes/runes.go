package runes

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var ErrInvalidRune = errors.New("rune error")

// Decode returns the character starting at offset and its width in bytes.
// Invalid or truncated UTF-8 is an error instead of a replacement character.
func Decode(b []byte, offset int) (rune, int, error) {
	if offset < 0 || offset >= len(b) {
		return 0, 0, fmt.Errorf("offset %d out of range [0,%d)", offset, len(b))
	}

	char, width := utf8.DecodeRune(b[offset:])
	if char == utf8.RuneError && width <= 1 {
		return utf8.RuneError, 1, ErrInvalidRune
	}

	return char, width, nil
}

// Describe renders the character at offset for error messages.
func Describe(b []byte, offset int) string {
	char, _, err := Decode(b, offset)
	if errors.Is(err, ErrInvalidRune) {
		return fmt.Sprintf("byte 0x%02x", b[offset])
	}
	if err != nil {
		return "end of input"
	}
	return strconv.QuoteRune(char)
}
