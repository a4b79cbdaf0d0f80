// Package version carries the build fingerprints stamped into the hif CLI.
package version

import "github.com/fatih/color"

// Overridable at build time:
//
//	go build -ldflags "-X hif/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	// GitCommit is the commit hash of the build, empty for local builds.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)

// Version is the semantic version of the CLI, with each component tinted for
// terminal output.
var Version = colorize("0", "1", "0-dev")

func colorize(major, minor, patch string) string {
	return color.New(color.FgYellow, color.Bold).Sprint(major) + "." +
		color.New(color.FgGreen, color.Bold).Sprint(minor) + "." +
		color.New(color.FgBlue, color.Bold).Sprint(patch)
}
