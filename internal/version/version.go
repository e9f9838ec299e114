// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Set at build time with -ldflags "-X ...".
var (
	// Version is the semantic version (e.g., "0.1.0").
	Version = "dev"
	// Commit is the short git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

var (
	once     sync.Once
	resolved Build
)

// Get returns the build description. Values not set through ldflags are
// taken from the module build info when available, as for binaries built
// with "go install module@version".
func Get() Build {
	once.Do(func() {
		resolved = Build{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		fillFromBuildInfo(&resolved, info)
	})
	return resolved
}

func fillFromBuildInfo(b *Build, info *debug.BuildInfo) {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		}
	}
}

// Info returns formatted version information.
func Info() string {
	b := Get()
	return fmt.Sprintf("shapeshyft version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.GoVersion)
}

// Short returns just the version string.
func Short() string {
	return Get().Version
}
