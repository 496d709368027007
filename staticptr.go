package staticptr

// Dropper is optionally implemented by stored values that need cleanup.
// Drop is invoked exactly once, by the last owning handle, just before the
// slot is vacated. Drop must not fail and must not panic.
type Dropper interface {
	Drop()
}

// DropFunc adapts a plain function to the Dropper interface.
type DropFunc func()

// Drop calls f.
func (f DropFunc) Drop() { f() }
