// Package cell provides interior mutability primitives for values reached
// through shared handles.
//
// A Shared handle grants read-only access to its pointee; these cells are
// the sanctioned way to mutate shared state without locks or allocation.
//
// # DoubleBuffered
//
// DoubleBuffered buses a value from one writer to many readers. The
// writer always has a free buffer to write into, readers always have a
// published buffer to read from, and a single atomic flag word
// coordinates which is which:
//
//	var cell cell.DoubleBuffered[State]
//
//	// producer goroutine (single writer)
//	cell.Write(next)
//
//	// consumers, any number, any goroutine
//	state := cell.Read()
//
// Writes never wait for readers. Readers briefly back off while a write
// is being published so they cannot starve the cell into serving stale
// data.
//
// # Value
//
// Value adds compare-and-swap over any comparable type, bounded by a
// single copy under a one-word latch:
//
//	for {
//	    cur := counters.Read()
//	    next := cur
//	    next.Drops++
//	    if counters.CompareAndSwap(cur, next) {
//	        break
//	    }
//	}
package cell
