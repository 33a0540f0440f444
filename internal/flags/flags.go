// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants avoids drift between Cobra flag wiring and code
// that needs to check whether a flag was set (defaults-file merging).
// IMPORTANT: These are flag *names* without leading dashes.
package flags

const (
	// Connection
	FlagHost         = "host"
	FlagPort         = "port"
	FlagUser         = "user"
	FlagPassword     = "password"
	FlagTimeout      = "timeout"
	FlagDefaultsFile = "defaults-file"

	// Check
	FlagExpectedClusterSize = "expected-cluster-size"

	// Snapshot
	FlagSnapshotFile = "snapshot-file"
)
