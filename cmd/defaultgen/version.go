package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version reports the build's version: the module version for tagged
// installs, otherwise the embedded development version with the VCS
// revision appended when the build recorded one.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	v := "devel-" + strings.TrimSpace(rawVersion)
	if ok {
		if rev := vcsRevision(info); rev != "" {
			v += "+" + rev
		}
	}
	return v
}

func vcsRevision(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
