package staticptr

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/static-ptr/errors"
	"github.com/wippyai/static-ptr/internal/fatal"
)

// occupancy lets a View probe its owning slot without knowing the
// concrete slot type.
type occupancy interface {
	IsOccupied() bool
}

// View is a type-erased view over a value owned by a handle: the value's
// address paired with the behavior table of its concrete type for
// interface I. Go interface values are exactly that pair, with tables
// generated at compile time, so the view binds one at construction and
// never allocates or synthesizes dispatch machinery at run time.
//
// A View is valid only while the slot it was built over stays occupied
// by the value it was built from. It must not outlive its owning handle.
type View[I any] struct {
	iface I
	slot  occupancy
}

// As builds a View over the value owned by u, dispatching through
// interface I. It fails with ErrInterface if the concrete type does not
// implement I. Construction from a non-owning handle is a contract
// violation.
func As[I any, T any](u *Unique[T]) (View[I], error) {
	return newView[I]("As", u.Get(), u.slot)
}

// SharedAs builds a read-only View over the value owned by h.
func SharedAs[I any, T any](h *Shared[T]) (View[I], error) {
	return newView[I]("SharedAs", h.Get(), h.slot)
}

func newView[I any, T any](op string, p *T, s occupancy) (View[I], error) {
	i, ok := any(p).(I)
	if !ok {
		return View[I]{}, errors.Unimplemented(op, fmt.Sprintf("%T", p))
	}
	return View[I]{iface: i, slot: s}, nil
}

// Get returns the bound interface value for dispatch. Using a view after
// its slot was vacated is a contract violation.
func (v *View[I]) Get() I {
	if v.slot == nil || !v.slot.IsOccupied() {
		fatal.Violationf(Logger(), "View.Get after the owning slot was vacated")
	}
	return v.iface
}

// ifaceHeader mirrors the runtime layout of an interface value: one word
// for the behavior table, one for the data address.
type ifaceHeader struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

// Data returns the erased value's address word.
func (v *View[I]) Data() unsafe.Pointer {
	return (*ifaceHeader)(unsafe.Pointer(&v.iface)).data
}

// Tab returns the behavior-table word: the itab for interface I, or the
// type descriptor when I is any.
func (v *View[I]) Tab() unsafe.Pointer {
	return (*ifaceHeader)(unsafe.Pointer(&v.iface)).tab
}

// Concrete downcasts the view to the concrete type it was built from.
// ok reports whether T matches; on a mismatch the view is unaffected.
func Concrete[T any, I any](v *View[I]) (*T, bool) {
	p, ok := any(v.Get()).(*T)
	return p, ok
}
