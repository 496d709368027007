// Package staticptr provides allocation-free smart pointers over
// caller-supplied storage.
//
// The handles in this package manage the lifetime of a value stored in a
// Slot the caller declares. Nothing on the ownership path requests memory
// from the Go allocator: the caller supplies exactly one storage cell per
// pointer family and keeps it alive for as long as any handle references
// it. This suits deterministic low-latency code and hot paths that must
// not touch the heap.
//
// # Handle Types
//
// There are two families of handles: Unique and Shared.
//
// Unique is an exclusive owner. It grants mutable access to the stored
// value, can be transferred with Move, and runs teardown exactly once when
// Release is called.
//
// Shared is a reference-counted owner. Clone adds an owner with a single
// atomic increment, Drop removes one, and the decrement that observes the
// count reach zero runs teardown and vacates the slot. A bare Shared
// handle grants read-only access; concurrent mutation is routed through
// the cell package.
//
// # Package Layout
//
//	static-ptr/          Root package: Slot, Raw, Unique, Shared, Bytes, View
//	├── errors/          Structured error types (slot_occupied, capacity_exceeded, ...)
//	├── cell/            Lock-free interior mutability primitives
//	├── internal/fatal/  Abort primitive for contract violations
//	└── cmd/ptrstress/   Scenario runner and interactive inspector
//
// # Quick Start
//
// Declare a slot, move a value in, and use the handle:
//
//	var slot staticptr.Slot[int]
//
//	u, err := staticptr.NewUnique(&slot, 42)
//	if err != nil {
//	    // slot was already occupied
//	}
//	*u.Get() += 1
//	u.Release() // teardown, slot is empty again
//
// # Dynamic Dispatch
//
// A View pairs the stored value's address with the behavior table of its
// concrete type, so code can dispatch through an interface without boxing
// the value on the heap:
//
//	v, err := staticptr.As[Shape](&u)
//	area := v.Get().Area()
//
// # Error Discipline
//
// Recoverable conditions (occupied slot, oversized payload) surface as
// typed errors from the errors subpackage. Contract violations such as
// double teardown or use after release terminate the process: continuing
// under a known-violated ownership invariant is never an option, and none
// of the code paths panic.
package staticptr
