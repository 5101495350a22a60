// SPDX-License-Identifier: MIT
//
// Package build carries metadata (name, version, commit, build time)
// embedded into the binary via -ldflags, for example:
//
//	go build -ldflags "-X specviz/pkg/build.buildVersion=0.2.0"
//
// Values fall back to development placeholders when the binary is built
// without flags, so plain go build / go test still work.
package build

type Info struct {
	Name    string // Application name
	Time    string // Build timestamp
	Commit  string // Git commit hash
	Version string // Semantic version
}

// Package-level variables populated by -ldflags during compilation.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
)

var info = Info{
	Name:    "specviz",
	Time:    "unknown",
	Commit:  "unknown",
	Version: "dev",
}

// Initialize copies any ldflags-provided values over the development
// defaults. Call once early in program startup.
func Initialize() {
	if buildName != "" {
		info.Name = buildName
	}
	if buildTime != "" {
		info.Time = buildTime
	}
	if buildCommit != "" {
		info.Commit = buildCommit
	}
	if buildVersion != "" {
		info.Version = buildVersion
	}
}

// GetInfo returns the current build information. Before Initialize it
// returns the development defaults.
func GetInfo() *Info {
	return &info
}
