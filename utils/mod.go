package utils

// FindIndexFunc returns the index of the first element matching the
// predicate, or -1 if none matches.
func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}
