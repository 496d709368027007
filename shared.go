package staticptr

import (
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Shared is a reference-counted handle over a Slot. Multiple handles own
// the stored value simultaneously; the count lives in the slot itself so
// cloning never allocates.
//
// A bare Shared handle grants read-only access. Mutating the pointee
// concurrently goes through the cell package.
//
// Handles are values. A plain copy shares this handle's single
// reference: use Clone to add an owner, and drop each reference exactly
// once.
type Shared[T any] struct {
	slot *Slot[T]
}

// NewShared moves v into s and returns the first owning handle, with a
// reference count of one. It fails with ErrSlotOccupied if s already
// holds a value; s is not mutated on failure.
func NewShared[T any](s *Slot[T], v T) (Shared[T], error) {
	if err := s.Occupy(v); err != nil {
		return Shared[T]{}, err
	}
	s.count.Store(1)
	return Shared[T]{slot: s}, nil
}

// Clone creates another owning handle with a single atomic increment.
// Safe to call concurrently from independent handles over the same slot.
// The caller must guarantee at least one reference stays live for the
// duration of the call; cloning from the only reference while it is
// being dropped elsewhere is out of contract.
func (h *Shared[T]) Clone() Shared[T] {
	s := h.slot
	if s == nil {
		fatal.Violationf(Logger(), "Shared.Clone on a handle that was already dropped")
	}
	s.count.Add(1)
	return Shared[T]{slot: s}
}

// Get returns the address of the shared value. The pointee must be
// treated as read-only: other handles may be reading it concurrently
// and nothing synchronizes access.
func (h *Shared[T]) Get() *T {
	s := h.slot
	if s == nil {
		fatal.Violationf(Logger(), "Shared.Get on a handle that was already dropped")
	}
	return &s.value
}

// Refs returns the current reference count. Diagnostic only.
func (h *Shared[T]) Refs() int32 {
	if h.slot == nil {
		return 0
	}
	return h.slot.count.Load()
}

// Owns reports whether the handle still holds a reference.
func (h *Shared[T]) Owns() bool { return h.slot != nil }

// Drop gives up this handle's reference with a single atomic decrement.
// The one decrement that observes the count reach zero runs teardown
// exactly once and vacates the slot; every other decrement only lets go.
// Dropping twice through the same handle is a contract violation.
func (h *Shared[T]) Drop() {
	s := h.slot
	if s == nil {
		fatal.Violationf(Logger(), "Shared.Drop on a handle that was already dropped")
	}
	h.slot = nil
	switch n := s.count.Add(-1); {
	case n == 0:
		s.release()
	case n < 0:
		fatal.Violationf(Logger(), "shared reference count underflow")
	}
}
