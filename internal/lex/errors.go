package lex

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCharacter      = errors.New("unknown character")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	ErrMalformedFloat        = errors.New("malformed float")

	// ErrCorruptState marks a scanner defect rather than bad input.
	ErrCorruptState = errors.New("corrupt scanner state")
)

type ScanError struct {
	Type    error
	Line    int
	Offset  int
	Char    rune
	Message string
}

func NewScanError(kind error, line, offset int, char rune, message string) *ScanError {
	return &ScanError{
		Type:    kind,
		Line:    line,
		Offset:  offset,
		Char:    char,
		Message: message,
	}
}

func NewScanErrorf(kind error, line, offset int, char rune, format string, a ...any) *ScanError {
	return NewScanError(kind, line, offset, char, fmt.Sprintf(format, a...))
}

func (s *ScanError) Error() string {
	return fmt.Sprintf("%s: %s at line %d, offset %d", s.Type, s.Message, s.Line, s.Offset)
}

func (s *ScanError) Unwrap() error {
	return s.Type
}
