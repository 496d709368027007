package staticptr

import (
	"sync/atomic"

	"github.com/wippyai/static-ptr/errors"
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Slot occupancy states. The busy state covers the window in which a
// value is being moved in or out, so occupancy transitions are always
// observed atomically: no reader can see an occupied slot whose value is
// only half stored.
const (
	stateEmpty uint32 = iota
	stateBusy
	stateOccupied
)

// noCopy triggers go vet's copylocks check on types that must stay put.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Slot is a caller-owned storage cell holding at most one live value.
//
// The zero value is an empty slot. The caller supplies the storage by
// declaring the Slot — package-level, on the stack, or embedded in a
// larger struct — and must keep it alive and in place while any handle
// references it. The Slot itself never allocates.
//
// Exactly one handle family (Unique or Shared) may be active over a Slot
// at a time. Converting between families requires releasing through one
// and constructing through the other.
type Slot[T any] struct {
	_     noCopy
	state atomic.Uint32
	count atomic.Int32 // shared-handle family refcount
	value T
}

// Occupy moves v into the slot. If the slot already holds a value it
// fails with ErrSlotOccupied and the slot is not mutated.
func (s *Slot[T]) Occupy(v T) error {
	if !s.state.CompareAndSwap(stateEmpty, stateBusy) {
		return errors.SlotOccupied("Slot.Occupy")
	}
	s.value = v
	s.state.Store(stateOccupied)
	return nil
}

// Vacate moves the value out and returns it, leaving the slot empty.
// Only a handle that has confirmed exclusive or last-owner status may
// call this; vacating a slot that is not occupied is a contract
// violation and aborts.
func (s *Slot[T]) Vacate() T {
	if !s.state.CompareAndSwap(stateOccupied, stateBusy) {
		fatal.Violationf(Logger(), "Slot.Vacate on a slot that is not occupied")
	}
	v := s.value
	var zero T
	s.value = zero
	s.state.Store(stateEmpty)
	return v
}

// IsOccupied reports whether the slot currently holds a value.
// Diagnostic only: the answer may be stale by the time the caller acts
// on it.
func (s *Slot[T]) IsOccupied() bool {
	return s.state.Load() == stateOccupied
}

// release runs teardown on the stored value, then vacates the slot.
// Teardown never fails; values implementing Dropper are dropped in place
// so no extra boxing happens on the way out.
func (s *Slot[T]) release() {
	if !s.state.CompareAndSwap(stateOccupied, stateBusy) {
		fatal.Violationf(Logger(), "teardown on a slot that is not occupied")
	}
	if d, ok := any(&s.value).(Dropper); ok {
		d.Drop()
	}
	var zero T
	s.value = zero
	s.state.Store(stateEmpty)
}
