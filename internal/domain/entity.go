package domain

// Entity is implemented by every record kind kept in a collection.
// WithID returns a copy of the record carrying the given id.
type Entity[T any] interface {
	EntityID() ID
	WithID(id ID) T
}

// Patch is a partial update. Apply returns the record with the patch's fields
// laid over it; fields the patch does not carry are left as they were.
type Patch[T any] interface {
	Apply(current T) T
}

func setIfPresent[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
