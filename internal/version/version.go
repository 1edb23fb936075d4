package version

import (
	"fmt"
	"runtime/debug"
)

var (
	VersionPrefix = "dev"     // Set via -ldflags
	VersionDate   = "edge"    // Set via -ldflags - Value should be: YYYYMMDD
	CommitHash    = "unknown" // Set via -ldflags
)

// Print returns the version information. Without ldflags the commit falls
// back to the VCS revision stamped by the go tool, if any.
func Print() string {
	return fmt.Sprintf(`%s-%s-%s`, VersionPrefix, VersionDate, commit())
}

func commit() string {
	if CommitHash != "unknown" {
		return CommitHash
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return CommitHash
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return CommitHash
}
