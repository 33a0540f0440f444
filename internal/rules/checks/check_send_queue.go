package checks

import (
	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

// SendQueueRule watches the send queue for a slow or congested network path
// to the rest of the cluster.
type SendQueueRule struct{}

func (r *SendQueueRule) Name() string { return "send-queue" }

func (r *SendQueueRule) Describe() string {
	return "Warns when wsrep_local_send_queue_avg is above 1 writeset and grew since the last sample, " +
		"which usually points at a slow network between this node and its peers."
}

func (r *SendQueueRule) Evaluate(cur, prev *snapshot.Store, opts rules.Options) []rules.Verdict {
	send, _ := cur.Get(status.VarLocalSendQueueAvg)
	want := status.Text("< 1")

	// Same absent-previous-reads-as-zero baseline as the flow control check.
	diff := send.Float() - prevNumeric(prev, status.VarLocalSendQueueAvg)
	if send.Float() > 1 && diff > 0 {
		return []rules.Verdict{rules.WarningVerdict(status.VarLocalSendQueueAvg, send, want)}
	}
	return []rules.Verdict{rules.OKVerdict(status.VarLocalSendQueueAvg, send, want)}
}

func init() {
	rules.Register(&SendQueueRule{})
}
