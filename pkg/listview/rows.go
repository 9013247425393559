package listview

// Remove returns a new slice without the rows matching match.
func Remove[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if !match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Prepend returns a new slice with row in front.
func Prepend[T any](rows []T, row T) []T {
	out := make([]T, 0, len(rows)+1)
	out = append(out, row)
	return append(out, rows...)
}

// Replace returns a new slice where rows matching match are swapped for row.
func Replace[T any](rows []T, match func(T) bool, row T) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		if match(r) {
			out[i] = row
			continue
		}
		out[i] = r
	}
	return out
}

func Find[T any](rows []T, match func(T) bool) (T, bool) {
	for _, r := range rows {
		if match(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}
