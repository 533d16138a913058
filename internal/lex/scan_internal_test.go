package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorruptMode(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"abc", ""} {
		s := NewScanner([]byte(input))
		s.mode = mode(42)

		_, err := s.NextToken()
		assert.ErrorIs(t, err, ErrCorruptState)
	}
}
