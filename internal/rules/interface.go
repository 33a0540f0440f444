package rules

import "galeracheck/internal/snapshot"

// Options carries caller-supplied evaluation inputs.
type Options struct {
	// ExpectedClusterSize gates the cluster-integrity group; 0 means the
	// caller did not supply a size and the group does not run.
	ExpectedClusterSize int
}

// Rule is one independent check group.
//
// Evaluate is pure: it reads the current and previous snapshots and returns
// one verdict per monitored variable. Rules assume the required status
// variables are present in the current store (the engine validates this
// before evaluation) and MUST NOT touch the database.
type Rule interface {
	Name() string
	Describe() string
	Evaluate(cur, prev *snapshot.Store, opts Options) []Verdict
}
