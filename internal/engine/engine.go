// Package engine runs one evaluation pass: fetch status, load history,
// evaluate rules, report, persist.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"galeracheck/internal/config"
	"galeracheck/internal/galera"
	"galeracheck/internal/output"
	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"

	"golang.org/x/sync/errgroup"
)

// StatusFetcher is the single collaborator that talks to the database.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (map[string]string, error)
}

// Engine evaluates one node once and maps the outcome to an exit code:
// 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN.
type Engine struct {
	fetcher StatusFetcher
	stdout  io.Writer
	stderr  io.Writer
}

func New(fetcher StatusFetcher) *Engine {
	return &Engine{fetcher: fetcher, stdout: os.Stdout, stderr: os.Stderr}
}

// Run executes one check pass and returns the process exit code. Exactly one
// summary line is written to stdout; verbose detail lines, when enabled,
// precede it.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	console := output.NewConsole(e.stdout)

	var (
		raw     map[string]string
		loadRes *snapshot.LoadResult
	)

	// The fetch and the history load are the only two blocking calls in a
	// run; neither depends on the other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = e.fetcher.FetchStatus(gctx)
		return err
	})
	g.Go(func() error {
		loadRes = snapshot.Load(cfg.Snapshot.Path)
		return nil
	})
	if err := g.Wait(); err != nil {
		// An unreachable node is CRITICAL; a node that refused us is an
		// environment problem, not a cluster one.
		sev := rules.Critical
		var accessErr *galera.AccessError
		if errors.As(err, &accessErr) {
			sev = rules.Unknown
		}
		console.Line(sev, err.Error())
		return sev.ExitCode()
	}

	if cfg.Runtime.Verbose && loadRes.Err != nil {
		fmt.Fprintf(e.stderr, "snapshot: starting empty: %v\n", loadRes.Err)
	}

	st := status.FromRaw(raw)
	if err := st.Require(status.Required...); err != nil {
		console.Line(rules.Unknown, err.Error())
		return rules.Unknown.ExitCode()
	}

	// The current store starts from the loaded history so all-time maxima
	// survive across runs; the previous store stays read-only.
	prev := loadRes.Store
	cur := prev.Clone()
	for name, v := range st {
		cur.Set(name, v)
	}

	verdicts := rules.EvaluateAll(cur, prev, rules.Options{
		ExpectedClusterSize: cfg.Check.ExpectedClusterSize,
	})

	if cfg.Runtime.Verbose {
		console.Verbose(verdicts, prev)
	}
	console.Summary(verdicts, raw[status.VarClusterStateUUID], raw[status.VarClusterConfID])

	// A failed save costs the next run its history, not this run its verdict.
	if err := cur.Save(cfg.Snapshot.Path); err != nil {
		fmt.Fprintf(e.stderr, "snapshot: %v\n", err)
	}

	return output.WorstOf(verdicts).ExitCode()
}
