package staticptr

import (
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Unique is an exclusive handle over a Slot. It is the only owner of the
// stored value, so it grants mutable access without synchronization.
//
// Ownership moves with Move and ends with Release. A handle that has
// moved or released its ownership is non-owning; any further slot access
// through it is a contract violation.
type Unique[T any] struct {
	slot *Slot[T]
}

// NewUnique moves v into s and returns the owning handle. It fails with
// ErrSlotOccupied if s already holds a value; s is not mutated on
// failure.
func NewUnique[T any](s *Slot[T], v T) (Unique[T], error) {
	if err := s.Occupy(v); err != nil {
		return Unique[T]{}, err
	}
	return Unique[T]{slot: s}, nil
}

// Get returns the address of the owned value. Exclusivity means no
// aliasing is possible, so mutation through the pointer needs no
// synchronization. The pointer is valid until the handle moves or
// releases.
func (u *Unique[T]) Get() *T {
	s := u.slot
	if s == nil {
		fatal.Violationf(Logger(), "Unique.Get on a handle that does not own its slot")
	}
	return &s.value
}

// Move transfers ownership to the returned handle and leaves the
// receiver non-owning.
func (u *Unique[T]) Move() Unique[T] {
	s := u.slot
	if s == nil {
		fatal.Violationf(Logger(), "Unique.Move on a handle that does not own its slot")
	}
	u.slot = nil
	return Unique[T]{slot: s}
}

// Owns reports whether the handle currently owns its slot.
func (u *Unique[T]) Owns() bool { return u.slot != nil }

// Release runs teardown exactly once and vacates the slot, leaving it
// ready for reuse. Releasing twice through the same ownership chain is a
// contract violation. Teardown itself never fails.
func (u *Unique[T]) Release() {
	s := u.slot
	if s == nil {
		fatal.Violationf(Logger(), "Unique.Release on a handle that does not own its slot")
	}
	u.slot = nil
	s.release()
}
