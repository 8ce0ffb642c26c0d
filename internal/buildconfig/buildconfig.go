package buildconfig

import "fmt"

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// Short returns a one-line version string for CLI output.
func Short() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}
