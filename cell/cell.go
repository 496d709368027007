package cell

import (
	"runtime"
	"sync/atomic"

	staticptr "github.com/wippyai/static-ptr"
	"github.com/wippyai/static-ptr/internal/fatal"
)

// Flag word layout for DoubleBuffered.
//
// w1/w2 mark a buffer being written, r1/r2 mark a buffer being read, the
// counter bits hold the number of active readers, p1/p2 pick the side
// fresh reads should come from, and the backoff bit throttles new
// readers while a writer waits to publish a side readers are camping on.
const (
	wShift        = 0
	wMask  uint32 = 0x0003
	w1     uint32 = 0x0001
	w2     uint32 = 0x0002

	rShift        = 2
	rMask  uint32 = 0x000c
	r1     uint32 = 0x0004
	r2     uint32 = 0x0008

	pShift        = 4
	pMask  uint32 = 0x0030
	p1     uint32 = 0x0010
	p2     uint32 = 0x0020

	rcShift        = 6
	rcMask  uint32 = 0x7fc0
	maxRdrs        = rcMask >> rcShift

	boFlag uint32 = 0x8000
)

// DoubleBuffered is a lock-free cell for busing a value from a single
// writer to any number of concurrent readers. The two buffers double the
// storage so a write never touches the side readers are on; all
// coordination goes through one atomic flag word. No operation blocks or
// allocates.
//
// The zero value is ready to use and reads as the zero value of T until
// the first Write.
type DoubleBuffered[T any] struct {
	flags atomic.Uint32
	bufs  [2]T
}

// Read returns the most recent value published to the cell.
//
// Read may retry for short periods when a large number of concurrent
// readers hammer the cell; the backoff bit guarantees that a barrage of
// reads cannot pin the writer's unpublished side forever and pump out
// stale data.
func (c *DoubleBuffered[T]) Read() T {
	var idx int
	for spins := 0; ; spins++ {
		b := c.flags.Load()
		if b&pMask == 0 {
			// first use of a zero-value cell
			c.flags.CompareAndSwap(b, b|p2)
			continue
		}

		numRdrs := (b & rcMask) >> rcShift
		if numRdrs == maxRdrs {
			fatal.Violationf(staticptr.Logger(), "too many concurrent readers on DoubleBuffered cell")
		}

		bo := b&boFlag != 0
		comb := b & (wMask | rMask | pMask)

		// hold off while the writer is waiting to publish
		if bo && (numRdrs > 0 || comb == (w1|p1) || comb == (w2|p2)) {
			spinWait(&spins)
			continue
		}

		var rbit uint32
		switch comb {
		case p1, r1 | p1, r1 | p2, w2 | p1, w2 | p2, w2 | r1 | p1, w2 | r1 | p2:
			idx, rbit = 0, r1
		case p2, r2 | p1, r2 | p2, w1 | p1, w1 | p2, w1 | r2 | p1, w1 | r2 | p2:
			idx, rbit = 1, r2
		default:
			fatal.Violationf(staticptr.Logger(), "invalid DoubleBuffered state 0x%04x", b)
		}

		next := (b &^ rcMask) | rbit | (numRdrs+1)<<rcShift
		if bo {
			next &^= boFlag
		}
		if c.flags.CompareAndSwap(b, next) {
			break
		}
		spinWait(&spins)
	}

	val := c.bufs[idx]

	for {
		b := c.flags.Load()
		numRdrs := (b & rcMask) >> rcShift
		next := b
		if numRdrs == 1 {
			next &^= uint32(idx+1) << rShift
		}
		next = (next &^ rcMask) | (numRdrs-1)<<rcShift
		if c.flags.CompareAndSwap(b, next) {
			break
		}
	}

	return val
}

// Write publishes v to the cell without waiting for readers.
//
// There can be at most one writer at a time. Writing concurrently from
// multiple goroutines is a contract violation; it is always safe to
// write while others read.
func (c *DoubleBuffered[T]) Write(v T) {
	var idx int
	for spins := 0; ; spins++ {
		b := c.flags.Load()
		if b&pMask == 0 {
			c.flags.CompareAndSwap(b, b|p2)
			continue
		}
		if b&wMask != 0 {
			fatal.Violationf(staticptr.Logger(), "concurrent writers on DoubleBuffered cell")
		}

		var next uint32
		switch b & (rMask | pMask) {
		case p2, r2 | p2:
			idx, next = 0, b|w1
		case r2 | p1:
			idx, next = 0, b|w1|boFlag
		case p1, r1 | p1:
			idx, next = 1, b|w2
		case r1 | p2:
			idx, next = 1, b|w2|boFlag
		default:
			fatal.Violationf(staticptr.Logger(), "invalid DoubleBuffered state 0x%04x", b)
		}

		if c.flags.CompareAndSwap(b, next) {
			break
		}
		spinWait(&spins)
	}

	c.bufs[idx] = v

	for {
		b := c.flags.Load()
		next := b &^ (uint32(idx+1) << wShift)
		next &^= pMask
		next |= uint32(idx+1) << pShift
		if c.flags.CompareAndSwap(b, next) {
			return
		}
	}
}

func spinWait(spins *int) {
	if *spins > 64 {
		runtime.Gosched()
		*spins = 0
	}
}
