package backstack

import "github.com/google/uuid"

// Record is the capability a back stack entry must provide: a stable key and
// the destination it wraps. Callers may push their own implementation; the
// stack never inspects the destination.
//
// Key must not change for the lifetime of the record. Two live records in
// the same stack must not share a key; the stack does not verify this (see
// BackStack.SetKeyCheck).
type Record[D any] interface {
	Key() string
	Destination() D
}

// Entry is the canonical Record implementation.
type Entry[D any] struct {
	key  string
	dest D
}

// NewRecord creates an Entry with a caller-supplied key. The caller is
// responsible for key uniqueness within the stack it is pushed onto.
func NewRecord[D any](key string, dest D) Entry[D] {
	return Entry[D]{key: key, dest: dest}
}

// Mint creates an Entry with a freshly synthesized key. Minted keys are
// random v4 UUIDs, unique with respect to every other minted key at any
// realistic usage scale.
func Mint[D any](dest D) Entry[D] {
	return Entry[D]{key: uuid.NewString(), dest: dest}
}

// Key returns the record's immutable identifier.
func (e Entry[D]) Key() string { return e.key }

// Destination returns the wrapped destination.
func (e Entry[D]) Destination() D { return e.dest }
