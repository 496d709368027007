package staticptr

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	ptrerrors "github.com/wippyai/static-ptr/errors"
)

func TestShared_CloneDropSequence(t *testing.T) {
	var tearDowns atomic.Int32
	var s Slot[dropCounter]

	h, err := NewShared(&s, dropCounter{n: &tearDowns, payload: "x"})
	if err != nil {
		t.Fatalf("NewShared failed: %v", err)
	}
	if got := h.Refs(); got != 1 {
		t.Fatalf("fresh handle has %d refs, want 1", got)
	}

	c1 := h.Clone()
	c2 := h.Clone()
	c3 := h.Clone()
	if got := h.Refs(); got != 4 {
		t.Fatalf("after 3 clones Refs() = %d, want 4", got)
	}
	if got := c2.Get().payload; got != "x" {
		t.Fatalf("clone reads %q, want %q", got, "x")
	}

	c1.Drop()
	c2.Drop()
	c3.Drop()
	if !s.IsOccupied() {
		t.Fatal("slot should still be occupied with one reference left")
	}
	if got := tearDowns.Load(); got != 0 {
		t.Fatalf("teardown ran %d times before the last drop, want 0", got)
	}

	h.Drop()
	if s.IsOccupied() {
		t.Fatal("slot should be empty after the last drop")
	}
	if got := tearDowns.Load(); got != 1 {
		t.Fatalf("teardown ran %d times, want exactly 1", got)
	}
}

func TestShared_OccupiedSlot(t *testing.T) {
	var tearDowns atomic.Int32
	var s Slot[dropCounter]

	h, err := NewShared(&s, dropCounter{n: &tearDowns, payload: "live"})
	if err != nil {
		t.Fatalf("NewShared failed: %v", err)
	}

	_, err = NewShared(&s, dropCounter{n: &tearDowns, payload: "intruder"})
	if !errors.Is(err, ptrerrors.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	if got := h.Get().payload; got != "live" {
		t.Fatalf("original value is %q after failed construction, want %q", got, "live")
	}
	h.Drop()
}

func TestShared_ReuseAfterLastDrop(t *testing.T) {
	var tearDowns atomic.Int32
	var s Slot[dropCounter]

	h, err := NewShared(&s, dropCounter{n: &tearDowns})
	if err != nil {
		t.Fatalf("NewShared failed: %v", err)
	}
	h.Drop()

	h2, err := NewShared(&s, dropCounter{n: &tearDowns})
	if err != nil {
		t.Fatalf("NewShared over a released slot failed: %v", err)
	}
	if got := h2.Refs(); got != 1 {
		t.Fatalf("reused slot starts with %d refs, want 1", got)
	}
	h2.Drop()

	if got := tearDowns.Load(); got != 2 {
		t.Fatalf("teardown ran %d times across two lifecycles, want 2", got)
	}
}

func TestShared_ConcurrentCloneDrop(t *testing.T) {
	const (
		cloners   = 2
		perCloner = 1000
		droppers  = 4
	)

	var tearDowns atomic.Int32
	var s Slot[dropCounter]

	h, err := NewShared(&s, dropCounter{n: &tearDowns})
	if err != nil {
		t.Fatalf("NewShared failed: %v", err)
	}

	handles := make([]Shared[dropCounter], cloners*perCloner+1)

	var wg sync.WaitGroup
	for g := 0; g < cloners; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perCloner; i++ {
				handles[base+i] = h.Clone()
			}
		}(g * perCloner)
	}
	wg.Wait()

	if got := h.Refs(); got != cloners*perCloner+1 {
		t.Fatalf("Refs() = %d after concurrent clones, want %d", got, cloners*perCloner+1)
	}

	// drop all clones plus the original from several goroutines
	handles[cloners*perCloner] = h
	chunk := len(handles) / droppers
	for g := 0; g < droppers; g++ {
		lo, hi := g*chunk, (g+1)*chunk
		if g == droppers-1 {
			hi = len(handles)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				handles[i].Drop()
			}
		}(lo, hi)
	}
	wg.Wait()

	if got := tearDowns.Load(); got != 1 {
		t.Fatalf("teardown ran %d times under concurrent drops, want exactly 1", got)
	}
	if s.IsOccupied() {
		t.Fatal("slot should be empty after every handle dropped")
	}
	if got := s.count.Load(); got != 0 {
		t.Fatalf("refcount is %d after every handle dropped, want 0", got)
	}
}
