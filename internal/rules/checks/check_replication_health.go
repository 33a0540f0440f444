package checks

import (
	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

// ReplicationHealthRule watches the receive queue and flow control pauses
// against the previous sample.
type ReplicationHealthRule struct{}

func (r *ReplicationHealthRule) Name() string { return "replication-health" }

func (r *ReplicationHealthRule) Describe() string {
	return "Warns when wsrep_local_recv_queue_avg is above 1 writeset and still growing, and when " +
		"wsrep_flow_control_paused increased since the last sample (replication back-pressure)."
}

func (r *ReplicationHealthRule) Evaluate(cur, prev *snapshot.Store, opts rules.Options) []rules.Verdict {
	var out []rules.Verdict

	// A queue average above 1 that is still growing means the node is
	// falling behind; above 1 but shrinking is a node recovering.
	recv, _ := cur.Get(status.VarLocalRecvQueueAvg)
	wantRecv := status.Text("< 1")
	if recv.Float() > 1 && recv.Float() > prevNumeric(prev, status.VarLocalRecvQueueAvg) {
		out = append(out, rules.WarningVerdict(status.VarLocalRecvQueueAvg, recv, wantRecv))
	} else {
		out = append(out, rules.OKVerdict(status.VarLocalRecvQueueAvg, recv, wantRecv))
	}

	// Cumulative counter. An absent previous value reads as 0, which is also
	// the right baseline right after an external counter reset: the reset
	// cycle may under-report, never over-report.
	paused, _ := cur.Get(status.VarFlowControlPaused)
	diff := status.Numeric(paused.Float() - prevNumeric(prev, status.VarFlowControlPaused))
	name := status.VarFlowControlPaused + " (since last query)"
	if diff.Float() > 0 {
		out = append(out, rules.WarningVerdict(name, diff, status.Numeric(0)))
	} else {
		out = append(out, rules.OKVerdict(name, diff, status.Numeric(0)))
	}

	return out
}

func init() {
	rules.Register(&ReplicationHealthRule{})
}
