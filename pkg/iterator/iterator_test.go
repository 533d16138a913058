package iterator_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/ian-shakespeare/libscan/pkg/iterator"
	"github.com/stretchr/testify/assert"
)

func TestCollect2(t *testing.T) {
	t.Parallel()

	indexes, values := iterator.Collect2(slices.All([]string{"a", "b"}))
	assert.Equal(t, []int{0, 1}, indexes)
	assert.Equal(t, []string{"a", "b"}, values)

	keys, _ := iterator.Collect2(maps.All(map[string]int{}))
	assert.Empty(t, keys)
}
