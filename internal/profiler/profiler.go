// Package profiler is the Begin/End/Section facade over the profile
// record ring: it attaches a call-site identity to each record and
// owns the active/inactive state machine that guards start/stop.
package profiler

import (
	"sync/atomic"

	"github.com/yandex/haversine-workbench/internal/profiler/reconstruct"
	"github.com/yandex/haversine-workbench/internal/profiler/ring"
)

// Profiler owns one record ring and the active flag guarding it. The
// zero value is not usable; construct with New.
type Profiler struct {
	ring   *ring.Ring
	active atomic.Int32
}

func New(capacity int) *Profiler {
	return &Profiler{ring: ring.New(capacity)}
}

// Start transitions active 0->1 and, on that transition, pushes a
// ProfilerStart record. A second call while already active is a no-op.
func (p *Profiler) Start() {
	if p.active.CompareAndSwap(0, 1) {
		site := captureCallSite("", 1)
		p.ring.Push(ring.ProfilerStart, threadID(), site)
	}
}

// StopAndCollect transitions active 1->0 and, on that transition,
// pushes a ProfilerEnd record and reconstructs the call tree. Returns
// nil if the profiler was already inactive.
func (p *Profiler) StopAndCollect(pathTrim string) *reconstruct.Result {
	if !p.active.CompareAndSwap(1, 0) {
		return nil
	}
	site := captureCallSite("", 1)
	p.ring.Push(ring.ProfilerEnd, threadID(), site)

	cpuFreq := estimateFrequencyOnce()
	return reconstruct.Build(p.ring.Snapshot(), cpuFreq, pathTrim)
}

// Begin pushes a SectionBegin record; a no-op while inactive.
func (p *Profiler) Begin(sectionName string) {
	if p.active.Load() == 0 {
		return
	}
	site := captureCallSite(sectionName, 1)
	p.ring.Push(ring.SectionBegin, threadID(), site)
}

// End pushes a SectionEnd record; a no-op while inactive.
func (p *Profiler) End(sectionName string) {
	if p.active.Load() == 0 {
		return
	}
	site := captureCallSite(sectionName, 1)
	p.ring.Push(ring.SectionEnd, threadID(), site)
}

// Guard is the scoped handle returned by Section: its End method is
// guaranteed to be called on every exit path, including a deferred call
// after a panic, and always carries the same call-site identity as the
// Begin it paired with.
type Guard struct {
	p    *Profiler
	site *CallSite
}

// Section begins a section at the caller's line and returns a guard
// whose End releases it with the identical call-site identity. Safe to
// call while inactive: both Begin and End become no-ops.
func (p *Profiler) Section(sectionName string) *Guard {
	site := captureCallSite(sectionName, 1)
	if p.active.Load() != 0 {
		p.ring.Push(ring.SectionBegin, threadID(), site)
	}
	return &Guard{p: p, site: site}
}

func (g *Guard) End() {
	if g.p.active.Load() == 0 {
		return
	}
	g.p.ring.Push(ring.SectionEnd, threadID(), g.site)
}

func (p *Profiler) RingCapacity() int {
	return p.ring.Capacity()
}
