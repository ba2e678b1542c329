// Package version exposes the build metadata stamped into the wirec binary.
//
// The exported variables are plain strings so release builds can override
// them, e.g. -ldflags "-X wirec/internal/version.GitCommit=...".
package version

import "github.com/fatih/color"

var (
	// Version is the semantic version reported by the CLI, each component
	// tinted so it stands out in terminal output.
	Version = tinted("0", "1", "0") + "-dev"

	// GitCommit is the hash of the commit the binary was built from.
	GitCommit = ""

	// BuildDate is the build timestamp in ISO-8601, when stamped.
	BuildDate = ""
)

func tinted(major, minor, patch string) string {
	return color.New(color.FgYellow, color.Bold).Sprint(major) + "." +
		color.New(color.FgGreen, color.Bold).Sprint(minor) + "." +
		color.New(color.FgBlue, color.Bold).Sprint(patch)
}
