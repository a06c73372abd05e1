// Package version returns the version string of the running binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The value of these vars are set through linker options.
var gitCommit = "Local build"
var gitTag = "Unknown"

// GetVersion returns the version string of this build.
func GetVersion() string {
	return fmt.Sprintf("buildersig/%s/%s", gitTag, commit())
}

// Local builds fall back to the vcs revision stamped by the go tool.
func commit() string {
	if gitCommit != "Local build" {
		return gitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return gitCommit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return gitCommit
}
