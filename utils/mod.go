package utils

// Tally counts occurrences of comparable values.
type Tally[T comparable] map[T]int

// Add counts item once more and returns the new count.
func (t Tally[T]) Add(item T) int {
	t[item]++
	return t[item]
}

func Map[T, U any](slice []T, f func(T) U) []U {
	result := make([]U, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}
	return result
}
