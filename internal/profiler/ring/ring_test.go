package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeLocation string

func (f fakeLocation) ID() string { return string(f) }

func TestPush_SlotsAreUniqueAndInOrder(t *testing.T) {
	r := New(8)
	for i := 0; i < 5; i++ {
		slot := r.Push(SectionBegin, 1, fakeLocation("site"))
		require.Equal(t, i, slot)
	}

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 5)
	for _, rec := range snapshot {
		require.Equal(t, SectionBegin, rec.Type)
		require.Equal(t, "site", rec.Location.ID())
	}
}

func TestPush_ConcurrentWritersGetDisjointSlots(t *testing.T) {
	const goroutines = 8
	const pushesEach = 200

	r := New(goroutines * pushesEach)
	var wg sync.WaitGroup
	slots := make(chan int, goroutines*pushesEach)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(tid int32) {
			defer wg.Done()
			for i := 0; i < pushesEach; i++ {
				slots <- r.Push(SectionBegin, tid, fakeLocation("site"))
			}
		}(int32(g))
	}
	wg.Wait()
	close(slots)

	seen := make(map[int]bool)
	for slot := range slots {
		require.False(t, seen[slot], "slot %d pushed twice", slot)
		seen[slot] = true
	}
	require.Len(t, seen, goroutines*pushesEach)
	require.Len(t, r.Snapshot(), goroutines*pushesEach)
}

func TestPush_OverflowPanics(t *testing.T) {
	r := New(1)
	r.Push(ProfilerStart, 0, fakeLocation("a"))
	require.Panics(t, func() {
		r.Push(ProfilerEnd, 0, fakeLocation("a"))
	})
}

func TestNew_NonPositiveCapacityUsesDefault(t *testing.T) {
	r := New(0)
	require.Equal(t, DefaultCapacity, r.Capacity())
}

func TestSnapshot_ClampsToCapacity(t *testing.T) {
	r := New(2)
	require.Panics(t, func() {
		for i := 0; i < 3; i++ {
			r.Push(SectionBegin, 0, fakeLocation("x"))
		}
	})
	require.Len(t, r.Snapshot(), 2)
}
