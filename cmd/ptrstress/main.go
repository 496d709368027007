// Command ptrstress exercises the static-ptr ownership core: it runs a
// concurrent clone/drop storm over one shared slot and reports teardown
// accounting, optionally through a live terminal inspector.
package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	staticptr "github.com/wippyai/static-ptr"
	"github.com/wippyai/static-ptr/cell"
)

func main() {
	var (
		goroutines   = pflag.Int("goroutines", 0, "Concurrent cloners (overrides scenario)")
		clones       = pflag.Int("clones", 0, "Clone/drop cycles per goroutine (overrides scenario)")
		payload      = pflag.String("payload", "", "Payload stored behind the shared handle (overrides scenario)")
		scenarioPath = pflag.String("scenario", "", "Path to a HuJSON scenario file")
		verbose      = pflag.BoolP("verbose", "v", false, "Enable development logging")
		interactive  = pflag.BoolP("interactive", "i", false, "Live terminal inspector")
	)
	pflag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		staticptr.SetLogger(log)
	}

	sc := defaultScenario()
	if *scenarioPath != "" {
		var err error
		if sc, err = loadScenario(*scenarioPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *goroutines > 0 {
		sc.Goroutines = *goroutines
	}
	if *clones > 0 {
		sc.Clones = *clones
	}
	if *payload != "" {
		sc.Payload = *payload
	}

	if *interactive {
		if err := runInteractive(sc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// counters is the live progress record published through a cell.Value,
// the same primitive library users reach for when mutating state behind
// a shared handle.
type counters struct {
	Clones int64
	Drops  int64
}

// stormPayload is the value the storm stores behind the shared handle.
type stormPayload struct {
	data      string
	tearDowns *atomic.Int32
}

func (p *stormPayload) Drop() {
	p.tearDowns.Add(1)
}

// storm owns the slot for one run and exposes read-only probes for the
// inspector.
type storm struct {
	scenario  Scenario
	slot      staticptr.Slot[stormPayload]
	tearDowns atomic.Int32
	progress  cell.Value[counters]
}

func newStorm(sc Scenario) *storm {
	return &storm{scenario: sc}
}

// run performs the full clone/drop storm and blocks until every handle
// has dropped.
func (st *storm) run() error {
	sc := st.scenario

	h, err := staticptr.NewShared(&st.slot, stormPayload{
		data:      sc.Payload,
		tearDowns: &st.tearDowns,
	})
	if err != nil {
		return fmt.Errorf("occupy slot: %w", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < sc.Goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < sc.Clones; i++ {
				c := h.Clone()
				st.bump(func(n *counters) { n.Clones++ })
				_ = c.Get().data
				c.Drop()
				st.bump(func(n *counters) { n.Drops++ })
			}
		}()
	}
	wg.Wait()

	h.Drop()
	return nil
}

func (st *storm) bump(apply func(*counters)) {
	for {
		cur := st.progress.Read()
		next := cur
		apply(&next)
		if st.progress.CompareAndSwap(cur, next) {
			return
		}
	}
}

func (st *storm) snapshot() (counters, int32, bool) {
	return st.progress.Read(), st.tearDowns.Load(), st.slot.IsOccupied()
}

func run(sc Scenario) error {
	st := newStorm(sc)
	if err := st.run(); err != nil {
		return err
	}

	progress, tearDowns, occupied := st.snapshot()
	fmt.Printf("goroutines:   %d\n", sc.Goroutines)
	fmt.Printf("clones:       %d\n", progress.Clones)
	fmt.Printf("drops:        %d\n", progress.Drops)
	fmt.Printf("teardowns:    %d\n", tearDowns)
	fmt.Printf("slot occupied: %v\n", occupied)

	if tearDowns != 1 {
		return fmt.Errorf("teardown ran %d times, want exactly 1", tearDowns)
	}
	if occupied {
		return fmt.Errorf("slot still occupied after the last drop")
	}
	return nil
}
