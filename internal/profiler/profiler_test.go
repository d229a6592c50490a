package profiler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yandex/haversine-workbench/internal/profiler/ring"
)

func TestProfiler_NestedSections(t *testing.T) {
	p := New(64)
	p.Start()

	func() {
		g := p.Section("A")
		defer g.End()

		func() {
			inner := p.Section("B")
			defer inner.End()
		}()
	}()

	result := p.StopAndCollect("")
	require.NotNil(t, result)
	require.Len(t, result.Root.Children, 1)

	a := result.Root.Children[0]
	require.Equal(t, uint64(1), a.CallCount)
	require.Len(t, a.Children, 1)

	b := a.Children[0]
	require.Equal(t, uint64(1), b.CallCount)
	require.GreaterOrEqual(t, a.TotalCycles, b.TotalCycles)
}

func sectionOnce(p *Profiler) {
	g := p.Section("shared")
	defer g.End()
}

func TestProfiler_ConcurrentThreadsShareCallCount(t *testing.T) {
	p := New(ring.DefaultCapacity)
	p.Start()

	const perGoroutine = 1000
	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				sectionOnce(p)
			}
		}()
	}
	wg.Wait()

	result := p.StopAndCollect("")
	require.NotNil(t, result)
	require.Len(t, result.Root.Children, 1)

	shared := result.Root.Children[0]
	require.Equal(t, uint64(2*perGoroutine), shared.CallCount)
}

func TestProfiler_BeginEndNoOpWhileInactive(t *testing.T) {
	p := New(8)
	p.Begin("x")
	p.End("x")
	require.Equal(t, 0, len(p.ring.Snapshot()))
}

func TestProfiler_StartTwiceIsIdempotent(t *testing.T) {
	p := New(8)
	p.Start()
	p.Start()
	require.Len(t, p.ring.Snapshot(), 1)
	p.StopAndCollect("")
}

func TestProfiler_StopWithoutStartReturnsNil(t *testing.T) {
	p := New(8)
	require.Nil(t, p.StopAndCollect(""))
}
