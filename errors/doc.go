// Package errors provides structured error types for the static-ptr library.
//
// Errors are categorized by Kind and carry the operation that produced them.
// Only recoverable conditions are represented here: an occupied slot, an
// oversized payload, a misaligned region, an unimplemented interface. All
// of them leave the storage they were raised against untouched, so the
// caller can retry or fall back.
//
// Match with the standard errors package and the exported sentinels:
//
//	if errors.Is(err, ptrerrors.ErrSlotOccupied) {
//	    // pick another slot
//	}
//
// Contract violations (double teardown, use after release, refcount
// underflow) are deliberately absent: they indicate a bug, not a
// condition, and terminate the process instead of propagating.
package errors
