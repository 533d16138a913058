package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ian-shakespeare/libscan/internal/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("stdinPlain", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		err := run([]string{"-plain"}, strings.NewReader("x = \"hi\";\nreturn 1.5"), &out)
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"1\tIdentifier\t0:0\t\"x\"",
			"1\tAssign\t2:2\t\"=\"",
			"1\tStringLiteral\t5:6\t\"hi\"",
			"1\tSemicolon\t8:8\t\";\"",
			"2\tReturn\t10:15\t\"return\"",
			"2\tFloat\t17:19\t\"1.5\"",
			"",
		}, "\n"), out.String())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "main.src")
		require.NoError(t, os.WriteFile(path, []byte("while (x >= 10) {}\n"), 0o644))

		var out bytes.Buffer
		require.NoError(t, run([]string{path}, strings.NewReader(""), &out))

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		assert.Len(t, lines, 8)
		assert.Contains(t, lines[0], "While")
		assert.Contains(t, lines[3], "GreaterEqual")
		assert.Contains(t, lines[3], "9:10")
	})

	t.Run("missingFile", func(t *testing.T) {
		t.Parallel()

		err := run([]string{filepath.Join(t.TempDir(), "nope")}, strings.NewReader(""), &bytes.Buffer{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("scanError", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		err := run([]string{"-"}, strings.NewReader("x = \"open"), &out)
		assert.ErrorIs(t, err, lex.ErrUnterminatedString)
		assert.Empty(t, out.String())
	})

	t.Run("badFlag", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, run([]string{"-colour"}, strings.NewReader(""), &bytes.Buffer{}))
	})
}
