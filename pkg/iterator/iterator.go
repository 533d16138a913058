package iterator

import "iter"

// Collect2 drains it into two parallel slices, left and right values at the
// same index.
func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	lefts, rights := []K{}, []V{}
	for left, right := range it {
		lefts = append(lefts, left)
		rights = append(rights, right)
	}
	return lefts, rights
}
