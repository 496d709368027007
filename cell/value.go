package cell

import (
	"sync/atomic"
)

// Value is a small mutable location safe for concurrent readers and
// writers: read, write, and compare-and-swap over any comparable T.
// A one-word latch guards a single copy of T, so every operation is
// bounded by one memcpy and nothing allocates. The zero value holds the
// zero value of T.
//
// Value is the mutation primitive for data reached through a Shared
// handle: the handle grants read-only access, a Value embedded in the
// pointee makes selected fields writable from any goroutine.
type Value[T comparable] struct {
	latch atomic.Uint32
	val   T
}

func (v *Value[T]) lock() {
	for spins := 0; !v.latch.CompareAndSwap(0, 1); spins++ {
		spinWait(&spins)
	}
}

func (v *Value[T]) unlock() {
	v.latch.Store(0)
}

// Read returns the current value.
func (v *Value[T]) Read() T {
	v.lock()
	x := v.val
	v.unlock()
	return x
}

// Write stores x unconditionally.
func (v *Value[T]) Write(x T) {
	v.lock()
	v.val = x
	v.unlock()
}

// CompareAndSwap stores next only if the current value equals old, and
// reports whether it did.
func (v *Value[T]) CompareAndSwap(old, next T) bool {
	v.lock()
	if v.val != old {
		v.unlock()
		return false
	}
	v.val = next
	v.unlock()
	return true
}
