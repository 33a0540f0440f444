package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Connection Connection
	Check      Check
	Snapshot   Snapshot
	Runtime    Runtime
}

type Connection struct {
	// Host is the node to query (see --host).
	Host string

	// Port is the MySQL port on the node (see --port).
	Port int

	// Username authenticates the status query (see --user).
	Username string

	// Password authenticates the status query (see --password).
	// Prefer the defaults file so it stays out of process listings.
	Password string

	// Timeout bounds the connect and the status query (see --timeout).
	Timeout time.Duration
}

type Check struct {
	// ExpectedClusterSize enables the cluster-integrity checks when > 0
	// (see --expected-cluster-size). 0 means "not supplied" and skips them.
	ExpectedClusterSize int
}

type Snapshot struct {
	// Path is where the previous run's values and all-time maxima are kept
	// between invocations (see --snapshot-file).
	Path string
}

type Runtime struct {
	// Verbose prints per-verdict detail lines before the summary, and
	// snapshot diagnostics (degraded load, failed save) to stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		Connection: Connection{
			Host:    "localhost",
			Port:    3306,
			Timeout: 10 * time.Second,
		},
		Snapshot: Snapshot{
			Path: filepath.Join(os.TempDir(), "galeracheck.snapshot.json"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Connection.Host == "" {
		return errors.New("--host must not be empty")
	}
	if c.Connection.Port < 1 || c.Connection.Port > 65535 {
		return fmt.Errorf("invalid --port: %d (must be 1-65535)", c.Connection.Port)
	}
	if c.Connection.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}
	if c.Check.ExpectedClusterSize < 0 {
		return fmt.Errorf("invalid --expected-cluster-size: %d (must be >= 0)", c.Check.ExpectedClusterSize)
	}
	if c.Snapshot.Path == "" {
		return errors.New("--snapshot-file must not be empty")
	}
	return nil
}
