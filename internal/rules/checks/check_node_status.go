package checks

import (
	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

// NodeStatusRule verifies the node itself is usable: provider ready,
// connected to the cluster, and fully synced.
type NodeStatusRule struct{}

func (r *NodeStatusRule) Name() string { return "node-status" }

func (r *NodeStatusRule) Describe() string {
	return "Checks wsrep_ready and wsrep_connected are ON and wsrep_local_state_comment is Synced. " +
		"Initialized means the node never joined the cluster (CRITICAL); any other transitional " +
		"state (Joining, Donor, Desynced) is WARNING."
}

func (r *NodeStatusRule) Evaluate(cur, prev *snapshot.Store, opts rules.Options) []rules.Verdict {
	var out []rules.Verdict

	on := status.Text("ON")
	for _, name := range []string{status.VarReady, status.VarConnected} {
		v, _ := cur.Get(name)
		if v.Equal(on) {
			out = append(out, rules.OKVerdict(name, v, on))
		} else {
			out = append(out, rules.CriticalVerdict(name, v, on))
		}
	}

	state, _ := cur.Get(status.VarLocalStateComment)
	synced := status.Text("Synced")
	switch {
	case state.Equal(synced):
		out = append(out, rules.OKVerdict(status.VarLocalStateComment, state, synced))
	case state.Equal(status.Text("Initialized")):
		out = append(out, rules.CriticalVerdict(status.VarLocalStateComment, state, synced))
	default:
		out = append(out, rules.WarningVerdict(status.VarLocalStateComment, state, synced))
	}

	return out
}

func init() {
	rules.Register(&NodeStatusRule{})
}
