package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/ian-shakespeare/libscan/internal/lex"
)

var (
	lineColor    = lipgloss.Color("#6B7280")
	keywordColor = lipgloss.Color("#F59E0B")
	literalColor = lipgloss.Color("#10B981")
	tokenColor   = lipgloss.Color("#3B82F6")
)

type dumper struct {
	w       io.Writer
	plain   bool
	line    lipgloss.Style
	keyword lipgloss.Style
	literal lipgloss.Style
	token   lipgloss.Style
}

func newDumper(w io.Writer, plain bool) *dumper {
	r := lipgloss.NewRenderer(w)
	return &dumper{
		w:       w,
		plain:   plain,
		line:    r.NewStyle().Foreground(lineColor).Width(5),
		keyword: r.NewStyle().Foreground(keywordColor).Bold(true).Width(14),
		literal: r.NewStyle().Foreground(literalColor).Width(14),
		token:   r.NewStyle().Foreground(tokenColor).Width(14),
	}
}

// Dump writes one line per token: line number, kind, byte span, text.
func (d *dumper) Dump(input []byte, tokens []lex.Token) error {
	for _, token := range tokens {
		text := strconv.Quote(string(token.Text(input)))
		span := fmt.Sprintf("%d:%d", token.Start, token.End)

		var err error
		if d.plain {
			_, err = fmt.Fprintf(d.w, "%d\t%s\t%s\t%s\n", token.Line, token.Type, span, text)
		} else {
			_, err = fmt.Fprintf(d.w, "%s %s %-9s %s\n", d.line.Render(strconv.Itoa(token.Line)), d.styleFor(token.Type).Render(token.Type.String()), span, text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *dumper) styleFor(t lex.TokenType) lipgloss.Style {
	switch {
	case t.IsKeyword():
		return d.keyword
	case t == lex.IDENTIFIER_TOKEN, t == lex.INTEGER_TOKEN, t == lex.FLOAT_TOKEN, t == lex.STRING_TOKEN:
		return d.literal
	default:
		return d.token
	}
}
