package cycleclock

import "time"

var processStart = time.Now()

// monotonicFallback returns nanoseconds since process start using Go's
// monotonic clock reading, the OS high-resolution counter of last resort.
func monotonicFallback() int64 {
	return int64(time.Since(processStart))
}
