// Package buildinfo carries version metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X cubeview/internal/buildinfo.Version=v0.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact identifier for the window title.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String returns the full identifier for the startup log line.
func String() string {
	return fmt.Sprintf("cubeview %s (commit %s, built %s)", Version, Commit, Date)
}
