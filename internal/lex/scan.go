package lex

import (
	"errors"
	"io"
	"iter"

	"github.com/ian-shakespeare/libscan/pkg/array"
	"github.com/ian-shakespeare/libscan/pkg/iterator"
	"github.com/ian-shakespeare/libscan/pkg/runes"
)

type mode int

const (
	normalMode mode = iota
	stringMode
	integerMode
	floatMode
	identifierMode
)

var blanks = []byte{' ', '\t'}

// Operators whose two-byte form is the same byte followed by '='.
var pairs = map[byte][2]TokenType{
	'=': {ASSIGN_TOKEN, EQUAL_TOKEN},
	'+': {PLUS_TOKEN, PLUS_ASSIGN_TOKEN},
	'-': {MINUS_TOKEN, MINUS_ASSIGN_TOKEN},
	'<': {LESS_TOKEN, LESS_EQUAL_TOKEN},
	'>': {GREATER_TOKEN, GREATER_EQUAL_TOKEN},
	'!': {BANG_TOKEN, NOT_EQUAL_TOKEN},
}

var singles = map[byte]TokenType{
	'*': ASTERISK_TOKEN,
	'/': SLASH_TOKEN,
	',': COMMA_TOKEN,
	';': SEMICOLON_TOKEN,
	':': COLON_TOKEN,
	'(': LEFT_PAREN_TOKEN,
	')': RIGHT_PAREN_TOKEN,
	'{': LEFT_BRACE_TOKEN,
	'}': RIGHT_BRACE_TOKEN,
	'[': LEFT_SQUARE_TOKEN,
	']': RIGHT_SQUARE_TOKEN,
	'&': AND_TOKEN,
	'|': OR_TOKEN,
}

type scanner struct {
	input  []byte
	cursor int
	line   int
	mode   mode
	start  int
	err    error
}

func NewScanner(input []byte) *scanner {
	return &scanner{
		input: input,
		line:  1,
	}
}

// Scan tokenizes all of input. On the first lexical error it returns the
// error and no tokens.
func Scan(input []byte) ([]Token, error) {
	tokens, errs := iterator.Collect2(NewScanner(input).Tokens())
	if i := array.Some(errs, func(err error) bool {
		return err != nil
	}); i > -1 {
		return nil, errs[i]
	}
	return tokens, nil
}

// NextToken runs the state machine until one token is complete. It returns
// io.EOF once the input is exhausted. After a scan error every call returns
// that same error.
func (s *scanner) NextToken() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	for {
		var (
			token   Token
			emitted bool
			err     error
		)

		if s.cursor >= len(s.input) {
			token, emitted, err = s.flush()
			if err == nil && !emitted {
				return Token{Type: EOF_TOKEN, Start: len(s.input), End: len(s.input), Line: s.line}, io.EOF
			}
		} else {
			token, emitted, err = s.step()
		}

		if err != nil {
			s.err = err
			return Token{}, err
		}
		if emitted {
			return token, nil
		}
	}
}

// Tokens yields every token in order. A scan error is yielded once and ends
// the sequence.
func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

func (s *scanner) step() (Token, bool, error) {
	switch s.mode {
	case normalMode:
		return s.scanNormal()
	case stringMode:
		return s.scanString()
	case integerMode, floatMode:
		return s.scanNumeric()
	case identifierMode:
		return s.scanIdentifier()
	default:
		return Token{}, false, s.corrupt()
	}
}

// flush finishes whatever literal is in progress at end of input.
func (s *scanner) flush() (Token, bool, error) {
	switch s.mode {
	case normalMode:
		return Token{}, false, nil
	case stringMode:
		return Token{}, false, NewScanError(ErrUnterminatedString, s.line, s.start-1, '"', "string literal is never closed")
	case integerMode, floatMode:
		return s.emitNumeric(), true, nil
	case identifierMode:
		return s.emitIdentifier(), true, nil
	default:
		return Token{}, false, s.corrupt()
	}
}

func (s *scanner) scanNormal() (Token, bool, error) {
	b := s.input[s.cursor]

	if b == '\n' {
		s.line++
		s.cursor++
		return Token{}, false, nil
	}
	if array.Contains(blanks, b) {
		s.cursor++
		return Token{}, false, nil
	}
	if forms, ok := pairs[b]; ok {
		return s.emitPair(forms[0], forms[1]), true, nil
	}
	if t, ok := singles[b]; ok {
		return s.emit(t, s.cursor, s.cursor, 1), true, nil
	}

	switch {
	case b == '"':
		s.mode = stringMode
		s.cursor++
		s.start = s.cursor
	case isDigit(b):
		s.mode = integerMode
		s.start = s.cursor
		s.cursor++
	case isLetter(b):
		s.mode = identifierMode
		s.start = s.cursor
		s.cursor++
	default:
		return Token{}, false, NewScanErrorf(ErrUnknownCharacter, s.line, s.cursor, s.charAt(s.cursor), "unexpected %s", runes.Describe(s.input, s.cursor))
	}

	return Token{}, false, nil
}

// scanString stops at a quote not preceded by a backslash. Only the one
// preceding byte is checked, so a literal ending in \\" stays open. String
// literals are single-line: a raw newline before the closing quote is
// ErrUnterminatedString.
func (s *scanner) scanString() (Token, bool, error) {
	b := s.input[s.cursor]

	switch {
	case b == '\n':
		return Token{}, false, NewScanError(ErrUnterminatedString, s.line, s.start-1, '"', "string literal is not closed before end of line")
	case b == '"' && s.input[s.cursor-1] != '\\':
		token := Token{Type: STRING_TOKEN, Start: s.start, End: s.cursor - 1, Line: s.line}
		s.mode = normalMode
		s.cursor++
		return token, true, nil
	}

	s.cursor++
	return Token{}, false, nil
}

func (s *scanner) scanNumeric() (Token, bool, error) {
	b := s.input[s.cursor]

	switch {
	case isDigit(b):
		s.cursor++
	case b == '.':
		if s.mode == floatMode {
			return Token{}, false, NewScanError(ErrMalformedFloat, s.line, s.cursor, '.', "second decimal point in number")
		}
		s.mode = floatMode
		s.cursor++
	case array.Contains(blanks, b):
		token := s.emitNumeric()
		s.cursor++
		return token, true, nil
	case b == '\n' || isOperator(b):
		return s.emitNumeric(), true, nil
	default:
		return Token{}, false, NewScanErrorf(ErrInvalidNumericLiteral, s.line, s.cursor, s.charAt(s.cursor), "unexpected %s in number", runes.Describe(s.input, s.cursor))
	}

	return Token{}, false, nil
}

func (s *scanner) scanIdentifier() (Token, bool, error) {
	b := s.input[s.cursor]
	if isLetter(b) || isDigit(b) {
		s.cursor++
		return Token{}, false, nil
	}
	return s.emitIdentifier(), true, nil
}

// emitNumeric closes the literal that ends just before the cursor. A
// trailing '.' is part of the Float, so "1." is a Float.
func (s *scanner) emitNumeric() Token {
	t := INTEGER_TOKEN
	if s.mode == floatMode {
		t = FLOAT_TOKEN
	}
	s.mode = normalMode
	return Token{Type: t, Start: s.start, End: s.cursor - 1, Line: s.line}
}

func (s *scanner) emitIdentifier() Token {
	t := IDENTIFIER_TOKEN
	if keyword, ok := keywords[string(s.input[s.start:s.cursor])]; ok {
		t = keyword
	}
	s.mode = normalMode
	return Token{Type: t, Start: s.start, End: s.cursor - 1, Line: s.line}
}

// emitPair emits the two-byte form when the next byte is '='. The lookahead
// never reads past the end of the input.
func (s *scanner) emitPair(single, double TokenType) Token {
	if s.cursor+1 < len(s.input) && s.input[s.cursor+1] == '=' {
		return s.emit(double, s.cursor, s.cursor+1, 2)
	}
	return s.emit(single, s.cursor, s.cursor, 1)
}

func (s *scanner) emit(t TokenType, start, end, width int) Token {
	s.cursor += width
	return Token{Type: t, Start: start, End: end, Line: s.line}
}

// charAt is the character at offset, or 0 when the bytes there are not
// valid UTF-8.
func (s *scanner) charAt(offset int) rune {
	char, _, err := runes.Decode(s.input, offset)
	if err != nil {
		return 0
	}
	return char
}

func (s *scanner) corrupt() error {
	return NewScanErrorf(ErrCorruptState, s.line, s.cursor, 0, "unknown mode %d", int(s.mode))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isOperator(b byte) bool {
	_, pair := pairs[b]
	_, single := singles[b]
	return pair || single
}
