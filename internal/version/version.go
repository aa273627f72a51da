// Package version provides build information for lobster-view.
package version

import "runtime/debug"

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
	Date    = ""
)

// Info is the build information printed by the version command.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

// String returns the version, suffixed with the commit when it is known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Get returns the build information. A commit missing from ldflags is taken
// from the VCS stamp of the binary, when present.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	return info
}
