package array

// Some returns the index of the first element satisfying cond, or -1.
func Some[T any](arr []T, cond func(T) bool) int {
	for i, elem := range arr {
		if cond(elem) {
			return i
		}
	}
	return -1
}

// Contains reports whether value is one of the elements of arr.
func Contains[T comparable](arr []T, value T) bool {
	return Some(arr, func(elem T) bool {
		return elem == value
	}) > -1
}
