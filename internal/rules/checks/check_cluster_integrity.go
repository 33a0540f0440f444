package checks

import (
	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

// ClusterIntegrityRule verifies membership and the primary component. It only
// runs when the caller supplied an expected cluster size.
type ClusterIntegrityRule struct{}

func (r *ClusterIntegrityRule) Name() string { return "cluster-integrity" }

func (r *ClusterIntegrityRule) Describe() string {
	return "Checks wsrep_cluster_size against the expected member count and requires the node to be in the Primary component. " +
		"A cluster of one is total isolation and reported CRITICAL; merely undersized is WARNING. " +
		"Skipped unless --expected-cluster-size is given."
}

func (r *ClusterIntegrityRule) Evaluate(cur, prev *snapshot.Store, opts rules.Options) []rules.Verdict {
	if opts.ExpectedClusterSize <= 0 {
		return nil
	}

	var out []rules.Verdict

	size, _ := cur.Get(status.VarClusterSize)
	wantSize := status.Numeric(float64(opts.ExpectedClusterSize))
	switch {
	case size.Float() >= wantSize.Float():
		out = append(out, rules.OKVerdict(status.VarClusterSize, size, wantSize))
	case size.Float() == 1:
		// Alone in its own partition, not just undersized.
		out = append(out, rules.CriticalVerdict(status.VarClusterSize, size, wantSize))
	default:
		out = append(out, rules.WarningVerdict(status.VarClusterSize, size, wantSize))
	}

	// A non-Primary component cannot safely serve writes.
	st, _ := cur.Get(status.VarClusterStatus)
	wantStatus := status.Text("Primary")
	if st.Equal(wantStatus) {
		out = append(out, rules.OKVerdict(status.VarClusterStatus, st, wantStatus))
	} else {
		out = append(out, rules.CriticalVerdict(status.VarClusterStatus, st, wantStatus))
	}

	return out
}

func init() {
	rules.Register(&ClusterIntegrityRule{})
}
