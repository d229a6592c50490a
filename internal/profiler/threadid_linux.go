//go:build linux

package profiler

import "golang.org/x/sys/unix"

func threadID() int32 {
	return int32(unix.Gettid())
}
