package store

// Keyed is any record addressed by a string id within its list.
type Keyed interface {
	Key() string
}

// Upsert returns a new list with item inserted. If an existing entry has the
// same id it is replaced in place, preserving list order; otherwise the item
// is appended. The input list is never modified.
func Upsert[T Keyed](list []T, item T) []T {
	for i := range list {
		if list[i].Key() == item.Key() {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = item
			return out
		}
	}

	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// Remove returns a new list excluding any entry with the given id. Removing
// an absent id returns an equal list, so the operation is idempotent.
func Remove[T Keyed](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if item.Key() != id {
			out = append(out, item)
		}
	}
	return out
}
