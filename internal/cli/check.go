package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"galeracheck/internal/config"
	"galeracheck/internal/engine"
	"galeracheck/internal/flags"
	"galeracheck/internal/galera"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var defaultsFile string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one health evaluation against a node",
	Long: `Run one health evaluation against a Galera node.

GaleraCheck queries the node's wsrep status variables, evaluates every
registered check against the current values and the previous sample, prints
one summary line to stdout, and persists a snapshot of the observed values
for the next run.

Credentials:
	Connection settings can come from flags or from a YAML defaults file
	(--defaults-file). Flags take precedence. Using the file keeps the
	password out of process listings.

	# galeracheck.yaml
	connection:
	  host: db1.example.com
	  username: monitor
	  password: secret

Exit codes:
	0 = OK       all checks passed
	1 = WARNING  at least one check warned, none critical
	2 = CRITICAL at least one check critical, or the node is unreachable
	3 = UNKNOWN  access denied, bad configuration, or incomplete status data

Examples:
  galeracheck check --user monitor --password secret

  # Gate the cluster membership checks on the expected size
  galeracheck check --defaults-file /etc/galeracheck.yaml --expected-cluster-size 3

  # Per-check detail for a human
  galeracheck check --defaults-file /etc/galeracheck.yaml --verbose
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := applyDefaultsFile(cmd, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		client, err := galera.NewClient(galera.Params{
			Host:     cfg.Connection.Host,
			Port:     cfg.Connection.Port,
			Username: cfg.Connection.Username,
			Password: cfg.Connection.Password,
			Timeout:  cfg.Connection.Timeout,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to set up database client: %v\n", err)
			os.Exit(3)
		}
		defer client.Close()

		eng := engine.New(client)
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

// applyDefaultsFile merges values from --defaults-file beneath the flags:
// a file value only applies when the matching flag was not set on the
// command line.
func applyDefaultsFile(cmd *cobra.Command, cfg *config.Config) error {
	if defaultsFile == "" {
		return nil
	}
	f, err := config.LoadFile(defaultsFile)
	if err != nil {
		return err
	}

	set := cmd.Flags().Changed
	if !set(flags.FlagHost) && f.Connection.Host != "" {
		cfg.Connection.Host = f.Connection.Host
	}
	if !set(flags.FlagPort) && f.Connection.Port != 0 {
		cfg.Connection.Port = f.Connection.Port
	}
	if !set(flags.FlagUser) && f.Connection.Username != "" {
		cfg.Connection.Username = f.Connection.Username
	}
	if !set(flags.FlagPassword) && f.Connection.Password != "" {
		cfg.Connection.Password = f.Connection.Password
	}
	if !set(flags.FlagTimeout) && f.Connection.TimeoutSeconds != 0 {
		cfg.Connection.Timeout = time.Duration(f.Connection.TimeoutSeconds) * time.Second
	}
	if !set(flags.FlagExpectedClusterSize) && f.Check.ExpectedClusterSize != 0 {
		cfg.Check.ExpectedClusterSize = f.Check.ExpectedClusterSize
	}
	if !set(flags.FlagSnapshotFile) && f.Snapshot.Path != "" {
		cfg.Snapshot.Path = f.Snapshot.Path
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVar(&cfg.Connection.Host, flags.FlagHost, cfg.Connection.Host, "Node to query")
	checkCmd.Flags().IntVar(&cfg.Connection.Port, flags.FlagPort, cfg.Connection.Port, "MySQL port on the node")
	checkCmd.Flags().StringVar(&cfg.Connection.Username, flags.FlagUser, "", "Username for the status query")
	checkCmd.Flags().StringVar(&cfg.Connection.Password, flags.FlagPassword, "", "Password for the status query (prefer --defaults-file)")
	checkCmd.Flags().DurationVar(&cfg.Connection.Timeout, flags.FlagTimeout, cfg.Connection.Timeout, "Connect and query timeout")
	checkCmd.Flags().StringVar(&defaultsFile, flags.FlagDefaultsFile, "", "YAML file with connection and check defaults (flags take precedence)")
	checkCmd.Flags().IntVar(&cfg.Check.ExpectedClusterSize, flags.FlagExpectedClusterSize, 0, "Expected number of cluster members; 0 skips the cluster-integrity checks")
	checkCmd.Flags().StringVar(&cfg.Snapshot.Path, flags.FlagSnapshotFile, cfg.Snapshot.Path, "Where to keep the previous run's values and maxima")
	rootCmd.AddCommand(checkCmd)
}
