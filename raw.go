package staticptr

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/static-ptr/errors"
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Raw is a storage cell over a caller-supplied byte region. It backs the
// owned-slice handle (Bytes). Capacity is the region length and is
// checked when a payload moves in; the typed Slot has no equivalent
// failure because its capacity is fixed by the type parameter.
//
// The zero value is an unbound, empty cell. Bind attaches the region
// before first use.
type Raw struct {
	_      noCopy
	state  atomic.Uint32
	region []byte
	n      int
}

// Bind attaches the caller-supplied region. The caller supplies and
// outlives the region; the cell never allocates or frees it. Rebinding a
// cell that holds a value is a contract violation.
func (r *Raw) Bind(region []byte) {
	if r.state.Load() != stateEmpty {
		fatal.Violationf(Logger(), "Raw.Bind on a cell that holds a value")
	}
	r.region = region
	r.n = 0
}

// BindAligned additionally checks that the region start satisfies align,
// which must be a power of two. Misaligned regions fail with
// ErrMisaligned and the cell stays unbound.
func (r *Raw) BindAligned(region []byte, align uintptr) error {
	if align == 0 || align&(align-1) != 0 {
		return errors.Misaligned("Raw.BindAligned", align, "alignment is not a power of two")
	}
	if len(region) > 0 && uintptr(unsafe.Pointer(&region[0]))&(align-1) != 0 {
		return errors.Misaligned("Raw.BindAligned", align, "")
	}
	r.Bind(region)
	return nil
}

// Occupy copies payload into the region. It fails with
// ErrCapacityExceeded or ErrSlotOccupied without mutating the cell.
func (r *Raw) Occupy(payload []byte) error {
	if len(payload) > len(r.region) {
		return errors.CapacityExceeded("Raw.Occupy", len(payload), len(r.region))
	}
	if !r.state.CompareAndSwap(stateEmpty, stateBusy) {
		return errors.SlotOccupied("Raw.Occupy")
	}
	r.n = copy(r.region, payload)
	r.state.Store(stateOccupied)
	return nil
}

// Vacate copies the payload into dst, zeroes the region, and empties the
// cell, returning the payload length. Only an owning handle may call
// this.
func (r *Raw) Vacate(dst []byte) int {
	if !r.state.CompareAndSwap(stateOccupied, stateBusy) {
		fatal.Violationf(Logger(), "Raw.Vacate on a cell that is not occupied")
	}
	n := copy(dst, r.region[:r.n])
	clear(r.region[:r.n])
	r.n = 0
	r.state.Store(stateEmpty)
	return n
}

// IsOccupied reports whether the cell currently holds a payload.
func (r *Raw) IsOccupied() bool {
	return r.state.Load() == stateOccupied
}

// Len returns the payload length while occupied, 0 otherwise.
func (r *Raw) Len() int {
	if !r.IsOccupied() {
		return 0
	}
	return r.n
}

// Cap returns the bound region capacity.
func (r *Raw) Cap() int { return len(r.region) }

// payload returns the live payload bytes. Owning handles only.
func (r *Raw) payload() []byte { return r.region[:r.n] }

// release zeroes the payload and vacates, without copying it anywhere.
func (r *Raw) release() {
	if !r.state.CompareAndSwap(stateOccupied, stateBusy) {
		fatal.Violationf(Logger(), "teardown on a raw cell that is not occupied")
	}
	clear(r.region[:r.n])
	r.n = 0
	r.state.Store(stateEmpty)
}
