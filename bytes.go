package staticptr

import (
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Bytes is an exclusive handle over a Raw cell: an owned byte slice
// living entirely in caller-supplied storage. It follows the same
// ownership rules as Unique.
type Bytes struct {
	raw *Raw
}

// NewBytes copies payload into r and returns the owning handle. It fails
// with ErrCapacityExceeded or ErrSlotOccupied; r is not mutated on
// failure.
func NewBytes(r *Raw, payload []byte) (Bytes, error) {
	if err := r.Occupy(payload); err != nil {
		return Bytes{}, err
	}
	return Bytes{raw: r}, nil
}

// Get returns the owned payload as a view into the region. The slice is
// valid only while the handle owns the cell; it must not be retained
// past Move or Release.
func (b *Bytes) Get() []byte {
	r := b.raw
	if r == nil {
		fatal.Violationf(Logger(), "Bytes.Get on a handle that does not own its cell")
	}
	return r.payload()
}

// Move transfers ownership to the returned handle and leaves the
// receiver non-owning.
func (b *Bytes) Move() Bytes {
	r := b.raw
	if r == nil {
		fatal.Violationf(Logger(), "Bytes.Move on a handle that does not own its cell")
	}
	b.raw = nil
	return Bytes{raw: r}
}

// Owns reports whether the handle currently owns its cell.
func (b *Bytes) Owns() bool { return b.raw != nil }

// Release zeroes the payload and vacates the cell. Stale bytes never
// leak into the next occupant.
func (b *Bytes) Release() {
	r := b.raw
	if r == nil {
		fatal.Violationf(Logger(), "Bytes.Release on a handle that does not own its cell")
	}
	b.raw = nil
	r.release()
}
