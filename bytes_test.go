package staticptr

import (
	"bytes"
	"errors"
	"testing"

	ptrerrors "github.com/wippyai/static-ptr/errors"
)

func TestBytes_Lifecycle(t *testing.T) {
	var region [16]byte
	var r Raw
	r.Bind(region[:])

	b, err := NewBytes(&r, []byte("hello"))
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}

	if got := b.Get(); !bytes.Equal(got, []byte("hello")) {
		t.Fatalf("Get() = %q, want %q", got, "hello")
	}

	b.Release()
	if r.IsOccupied() {
		t.Fatal("cell should be empty after Release")
	}
	if b.Owns() {
		t.Fatal("handle should be non-owning after Release")
	}
	if !bytes.Equal(region[:5], make([]byte, 5)) {
		t.Fatal("Release must zero the payload")
	}
}

func TestBytes_MoveTransfersOwnership(t *testing.T) {
	var region [16]byte
	var r Raw
	r.Bind(region[:])

	b, err := NewBytes(&r, []byte("moved"))
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}

	b2 := b.Move()
	if b.Owns() {
		t.Fatal("source handle should be non-owning after Move")
	}
	if got := b2.Get(); !bytes.Equal(got, []byte("moved")) {
		t.Fatalf("moved handle reads %q, want %q", got, "moved")
	}
	b2.Release()
}

func TestBytes_CapacityExceeded(t *testing.T) {
	var region [2]byte
	var r Raw
	r.Bind(region[:])

	_, err := NewBytes(&r, []byte("overflow"))
	if !errors.Is(err, ptrerrors.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if r.IsOccupied() {
		t.Fatal("failed construction must not mutate the cell")
	}
}

func TestBytes_OccupiedCell(t *testing.T) {
	var region [8]byte
	var r Raw
	r.Bind(region[:])

	b, err := NewBytes(&r, []byte("first"))
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}

	_, err = NewBytes(&r, []byte("second"))
	if !errors.Is(err, ptrerrors.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	if got := b.Get(); !bytes.Equal(got, []byte("first")) {
		t.Fatalf("original payload is %q after failed construction, want %q", got, "first")
	}
	b.Release()
}
