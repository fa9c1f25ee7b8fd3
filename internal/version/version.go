package version

import (
	"runtime/debug"
)

func Get() string {
	var revision string
	var modified bool

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		for _, s := range buildInfo.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				if s.Value == "true" {
					modified = true
				}
			}
		}
	}

	if revision == "" {
		return "unavailable"
	}

	if modified {
		return revision + "-dirty"
	}

	return revision
}
