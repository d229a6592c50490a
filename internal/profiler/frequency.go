package profiler

import (
	"sync"

	"github.com/yandex/haversine-workbench/internal/cycleclock"
)

var (
	freqOnce sync.Once
	freqHz   uint64
)

// estimateFrequencyOnce calibrates the cycle clock lazily on first use:
// the calibration busy-waits, so a binary that never stops a profiler
// never pays for it.
func estimateFrequencyOnce() uint64 {
	freqOnce.Do(func() {
		freqHz = cycleclock.EstimateFrequency(100)
	})
	return freqHz
}
