package lex

import "fmt"

type TokenType int

const (
	EOF_TOKEN TokenType = iota

	IDENTIFIER_TOKEN
	INTEGER_TOKEN
	FLOAT_TOKEN
	STRING_TOKEN

	// Assignment
	ASSIGN_TOKEN       // =
	PLUS_ASSIGN_TOKEN  // +=
	MINUS_ASSIGN_TOKEN // -=

	// Comparison
	EQUAL_TOKEN         // ==
	NOT_EQUAL_TOKEN     // !=
	LESS_TOKEN          // <
	LESS_EQUAL_TOKEN    // <=
	GREATER_TOKEN       // >
	GREATER_EQUAL_TOKEN // >=

	// Arithmetic
	PLUS_TOKEN     // +
	MINUS_TOKEN    // -
	ASTERISK_TOKEN // *
	SLASH_TOKEN    // /

	// Logical. Whether & and | short-circuit is up to the parser.
	AND_TOKEN  // &
	OR_TOKEN   // |
	BANG_TOKEN // !

	// Delimiters
	COMMA_TOKEN        // ,
	SEMICOLON_TOKEN    // ;
	COLON_TOKEN        // :
	LEFT_PAREN_TOKEN   // (
	RIGHT_PAREN_TOKEN  // )
	LEFT_BRACE_TOKEN   // {
	RIGHT_BRACE_TOKEN  // }
	LEFT_SQUARE_TOKEN  // [
	RIGHT_SQUARE_TOKEN // ]

	// Keywords
	FUNCTION_TOKEN
	IF_TOKEN
	ELSE_TOKEN
	FOR_TOKEN
	WHILE_TOKEN
	RETURN_TOKEN
	TRUE_TOKEN
	FALSE_TOKEN
)

var tokenNames = [...]string{
	EOF_TOKEN:           "EOF",
	IDENTIFIER_TOKEN:    "Identifier",
	INTEGER_TOKEN:       "Integer",
	FLOAT_TOKEN:         "Float",
	STRING_TOKEN:        "StringLiteral",
	ASSIGN_TOKEN:        "Assign",
	PLUS_ASSIGN_TOKEN:   "PlusAssign",
	MINUS_ASSIGN_TOKEN:  "MinusAssign",
	EQUAL_TOKEN:         "Equal",
	NOT_EQUAL_TOKEN:     "NotEqual",
	LESS_TOKEN:          "Less",
	LESS_EQUAL_TOKEN:    "LessEqual",
	GREATER_TOKEN:       "Greater",
	GREATER_EQUAL_TOKEN: "GreaterEqual",
	PLUS_TOKEN:          "Plus",
	MINUS_TOKEN:         "Minus",
	ASTERISK_TOKEN:      "Asterisk",
	SLASH_TOKEN:         "Slash",
	AND_TOKEN:           "And",
	OR_TOKEN:            "Or",
	BANG_TOKEN:          "Bang",
	COMMA_TOKEN:         "Comma",
	SEMICOLON_TOKEN:     "Semicolon",
	COLON_TOKEN:         "Colon",
	LEFT_PAREN_TOKEN:    "LeftParen",
	RIGHT_PAREN_TOKEN:   "RightParen",
	LEFT_BRACE_TOKEN:    "LeftBrace",
	RIGHT_BRACE_TOKEN:   "RightBrace",
	LEFT_SQUARE_TOKEN:   "LeftSquare",
	RIGHT_SQUARE_TOKEN:  "RightSquare",
	FUNCTION_TOKEN:      "Function",
	IF_TOKEN:            "If",
	ELSE_TOKEN:          "Else",
	FOR_TOKEN:           "For",
	WHILE_TOKEN:         "While",
	RETURN_TOKEN:        "Return",
	TRUE_TOKEN:          "True",
	FALSE_TOKEN:         "False",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

var keywords = map[string]TokenType{
	"function": FUNCTION_TOKEN,
	"if":       IF_TOKEN,
	"else":     ELSE_TOKEN,
	"for":      FOR_TOKEN,
	"while":    WHILE_TOKEN,
	"return":   RETURN_TOKEN,
	"true":     TRUE_TOKEN,
	"false":    FALSE_TOKEN,
}

// IsKeyword reports whether t is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= FUNCTION_TOKEN && t <= FALSE_TOKEN
}

// Token is a span of the scanned buffer. End is the offset of the token's
// last byte, so Start <= End for every token except an empty string literal
// (""), which has End == Start-1 and a Len of 0.
//
// A StringLiteral spans the bytes between its quotes, undecoded. String
// literals cannot contain a raw newline.
type Token struct {
	Type  TokenType
	Start int
	End   int
	Line  int
}

// Len is the number of bytes in the span, 0 for an empty string literal.
func (t Token) Len() int {
	return t.End - t.Start + 1
}

// Text returns the bytes of t within src, which must be the buffer t was
// scanned from. It is empty, not a panic, for an empty string literal.
func (t Token) Text(src []byte) []byte {
	return src[t.Start : t.End+1]
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]@%d", t.Type, t.Start, t.End, t.Line)
}
