package ds

// ShallowCopy copies ts so appends to the copy leave ts alone. Pointer elements still alias.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
