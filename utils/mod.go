package utils

// FindIndex returns the index of the first element equal to item, or -1 if
// the slice does not contain it. Equality is exact, no normalization.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Contains reports whether the slice has an element equal to item.
func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}
