package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/legends-backend/internal/app.Version=v1.2.0".
// Commit falls back to the VCS stamp Go embeds in module builds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// BuildVersion is the string logged on startup and served by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
