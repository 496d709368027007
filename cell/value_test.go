package cell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_ReadWrite(t *testing.T) {
	var v Value[string]
	require.Equal(t, "", v.Read())

	v.Write("hello")
	require.Equal(t, "hello", v.Read())
}

func TestValue_CompareAndSwap(t *testing.T) {
	var v Value[int]

	require.True(t, v.CompareAndSwap(0, 10))
	require.Equal(t, 10, v.Read())

	require.False(t, v.CompareAndSwap(0, 20), "CAS with a stale expectation must fail")
	require.Equal(t, 10, v.Read())

	require.True(t, v.CompareAndSwap(10, 20))
	require.Equal(t, 20, v.Read())
}

func TestValue_ConcurrentCAS(t *testing.T) {
	type counters struct {
		Clones, Drops int64
	}

	var v Value[counters]

	const (
		workers   = 8
		perWorker = 500
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for {
					cur := v.Read()
					next := cur
					next.Clones++
					next.Drops++
					if v.CompareAndSwap(cur, next) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	got := v.Read()
	require.Equal(t, int64(workers*perWorker), got.Clones)
	require.Equal(t, int64(workers*perWorker), got.Drops)
}
