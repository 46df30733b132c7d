package trading

// Truncate returns at most limit leading items and how many were left out.
// A non-positive limit keeps everything.
func Truncate[T any](items []T, limit int) ([]T, int) {
	if limit <= 0 || len(items) <= limit {
		return items, 0
	}

	return items[:limit], len(items) - limit
}
