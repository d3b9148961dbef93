package store

import "github.com/heartmarshall/restaurant-admin/internal/domain"

// The helpers below operate on a loaded slice and never touch storage.

func nextID[T domain.Entity[T]](records []T) domain.ID {
	return domain.MaxID(records) + 1
}

func indexOf[T domain.Entity[T]](records []T, id domain.ID) int {
	for i, r := range records {
		if r.EntityID() == id {
			return i
		}
	}
	return -1
}

// without returns records minus every record with the given id, preserving
// order. The input slice is not modified.
func without[T domain.Entity[T]](records []T, id domain.ID) ([]T, bool) {
	out := make([]T, 0, len(records))
	removed := false
	for _, r := range records {
		if r.EntityID() == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

func appendNew[T domain.Entity[T]](records []T, rec T) ([]T, T) {
	rec = rec.WithID(nextID(records))
	out := make([]T, 0, len(records)+1)
	out = append(out, records...)
	return append(out, rec), rec
}

// patched returns a copy of records with the record matching id replaced by
// patch applied over it. The id survives any patch.
func patched[T domain.Entity[T]](records []T, id domain.ID, patch domain.Patch[T]) ([]T, bool) {
	i := indexOf(records, id)
	if i < 0 {
		return records, false
	}
	out := make([]T, len(records))
	copy(out, records)
	out[i] = patch.Apply(out[i]).WithID(id)
	return out, true
}

func find[T domain.Entity[T]](records []T, id domain.ID) (T, bool) {
	if i := indexOf(records, id); i >= 0 {
		return records[i], true
	}
	var zero T
	return zero, false
}
