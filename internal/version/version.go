package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "devel"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	// `go install` embeds the module version without -ldflags being
	// involved, so prefer it when Version was not overridden.
	mainVersion := info.Main.Version
	if mainVersion != "" && mainVersion != "(devel)" {
		Version = mainVersion
	}
}
