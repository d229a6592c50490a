//go:build !linux

package profiler

import "os"

// threadID falls back to the process id on platforms without a cheap
// OS-thread id syscall; reconstruction only uses it for diagnostics, not
// identity, so the approximation is harmless.
func threadID() int32 {
	return int32(os.Getpid())
}
