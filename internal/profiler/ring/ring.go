// Package ring implements the lock-free, bounded, non-blocking append
// of profile records: one atomic fetch-and-increment reserves a slot,
// one cycle read stamps it, one store publishes it. Growth is
// deliberately absent — allocation under a begin/end must be
// constant-time, so the ring is sized once by the caller.
package ring

import (
	"fmt"
	"sync/atomic"

	"github.com/yandex/haversine-workbench/internal/cycleclock"
)

// DefaultCapacity matches the reference workbench's preallocated ring:
// 4096 * 1024 records.
const DefaultCapacity = 4096 * 1024

type RecordType int

const (
	ProfilerStart RecordType = iota
	ProfilerEnd
	SectionBegin
	SectionEnd
)

func (t RecordType) String() string {
	switch t {
	case ProfilerStart:
		return "ProfilerStart"
	case ProfilerEnd:
		return "ProfilerEnd"
	case SectionBegin:
		return "SectionBegin"
	case SectionEnd:
		return "SectionEnd"
	default:
		return "Unknown"
	}
}

// Location is the minimal call-site view the ring cares about: a stable
// identity string. The profiler facade's CallSite satisfies this.
type Location interface {
	ID() string
}

// Record is an immutable, fixed-shape entry: one type tag, one cycle
// timestamp, the OS thread that wrote it, and the call-site identity
// that produced it.
type Record struct {
	Type     RecordType
	Cycles   uint64
	ThreadID int32
	Location Location
}

// Ring is a preallocated, fixed-capacity array of records appended to
// by possibly many goroutines/threads concurrently. recordIndex never
// exceeds capacity; a push beyond capacity is a fatal programming error,
// not a resize.
type Ring struct {
	records []Record
	index   atomic.Uint64
}

func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{records: make([]Record, capacity)}
}

// Push reserves the next slot, reads the cycle counter, and stores the
// record. It panics if the ring is full: callers must size the ring for
// the worst-case section count, per the no-growth invariant.
func (r *Ring) Push(recordType RecordType, threadID int32, loc Location) int {
	i := r.index.Add(1) - 1
	if i >= uint64(len(r.records)) {
		panic(fmt.Sprintf("profile record ring overflow: index %d >= capacity %d", i, len(r.records)))
	}
	r.records[i] = Record{
		Type:     recordType,
		Cycles:   cycleclock.Read(),
		ThreadID: threadID,
		Location: loc,
	}
	return int(i)
}

// Snapshot returns the records written so far, in slot order. It must
// only be called once the caller has ensured no Push is in flight from
// any goroutine — for example after joining worker threads.
func (r *Ring) Snapshot() []Record {
	n := r.index.Load()
	if n > uint64(len(r.records)) {
		n = uint64(len(r.records))
	}
	return r.records[:n]
}

func (r *Ring) Capacity() int {
	return len(r.records)
}
