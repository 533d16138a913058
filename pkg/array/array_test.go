package array_test

import (
	"testing"

	"github.com/ian-shakespeare/libscan/pkg/array"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	isNegative := func(n int) bool { return n < 0 }

	assert.Equal(t, 2, array.Some([]int{1, 2, -3, -4}, isNegative))
	assert.Equal(t, -1, array.Some([]int{1, 2}, isNegative))
	assert.Equal(t, -1, array.Some(nil, isNegative))
}

func TestContains(t *testing.T) {
	t.Parallel()

	blanks := []byte{' ', '\t'}

	assert.True(t, array.Contains(blanks, '\t'))
	assert.False(t, array.Contains(blanks, '\n'))
}
