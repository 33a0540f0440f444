package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "galeracheck",
	Short: "Evaluate the replication health of a Galera cluster node",
	Long: `GaleraCheck samples the wsrep status variables of a single Galera/wsrep node,
compares them against static expectations and against the previous sample, and
reports one aggregated severity. It is built to run under an external
scheduler (cron, Nagios/Icinga, systemd timer): one invocation, one summary
line, one exit code.

Examples:
	# Show available commands and global flags
	galeracheck --help

	# Check the local node, expecting a 3 node cluster
	galeracheck check --user monitor --password secret --expected-cluster-size 3

	# List checks
	galeracheck rules list

	# Print build info
	galeracheck version

Output:
	Exactly one summary line on stdout; the exit code is the machine-readable
	signal (see "galeracheck check --help").`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Print per-check detail lines before the summary and snapshot diagnostics to stderr")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
}
