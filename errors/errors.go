package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes a recoverable error.
type Kind string

const (
	// KindSlotOccupied: handle construction over a slot that already
	// holds a value. The slot is not mutated.
	KindSlotOccupied Kind = "slot_occupied"

	// KindCapacityExceeded: a payload larger than the caller-supplied
	// region was offered to a raw cell. The region is not mutated.
	KindCapacityExceeded Kind = "capacity_exceeded"

	// KindMisaligned: the caller-supplied region does not satisfy the
	// alignment the payload requires.
	KindMisaligned Kind = "misaligned"

	// KindInterface: a type-erased view was requested through an
	// interface the concrete type does not implement.
	KindInterface Kind = "interface_unimplemented"
)

// Error is the structured error type used throughout the library.
// Contract violations are not errors; they terminate the process via the
// internal abort primitive.
type Error struct {
	Cause  error
	Op     string
	Detail string
	Kind   Kind
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteByte('[')
		b.WriteString(e.Op)
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when
// their Kinds are equal, so sentinel comparisons ignore Op and Detail.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is matching.
var (
	ErrSlotOccupied     = &Error{Kind: KindSlotOccupied}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrMisaligned       = &Error{Kind: KindMisaligned}
	ErrInterface        = &Error{Kind: KindInterface}
)

// SlotOccupied creates a slot-occupied error for op.
func SlotOccupied(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindSlotOccupied,
		Detail: "slot already holds a value",
	}
}

// CapacityExceeded creates a capacity error: the payload needs more bytes
// than the caller-supplied region provides.
func CapacityExceeded(op string, need, capacity int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindCapacityExceeded,
		Detail: fmt.Sprintf("payload of %d bytes exceeds region capacity %d", need, capacity),
	}
}

// Misaligned creates an alignment error for a caller-supplied region.
func Misaligned(op string, align uintptr, detail string) *Error {
	if detail == "" {
		detail = fmt.Sprintf("region start not aligned to %d bytes", align)
	}
	return &Error{
		Op:     op,
		Kind:   KindMisaligned,
		Detail: detail,
	}
}

// Unimplemented creates an interface-unimplemented error for a type-erased
// view request.
func Unimplemented(op, goType string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInterface,
		Detail: fmt.Sprintf("concrete type %s does not implement the requested interface", goType),
	}
}
