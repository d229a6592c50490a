// Package buildinfo prints version/build metadata sourced from
// runtime/debug's embedded module info.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Version is overridable at link time: -ldflags "-X .../buildinfo.Version=v1.2.3".
var Version = "dev"

func Dump(w io.Writer) error {
	revision, dirty := vcsRevision()
	suffix := ""
	if dirty {
		suffix = "-dirty"
	}
	_, err := fmt.Fprintf(w, "version %s (revision %s%s)\n", Version, revision, suffix)
	return err
}

func vcsRevision() (revision string, dirty bool) {
	revision = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return revision, false
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return revision, dirty
}
