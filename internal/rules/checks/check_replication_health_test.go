package checks

import (
	"testing"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

func TestReplicationHealthRule_RecvQueueAvg(t *testing.T) {
	rule := &ReplicationHealthRule{}

	tests := []struct {
		name     string
		current  string
		previous string // "" means never observed
		want     rules.Severity
	}{
		{"above one and growing", "1.5", "1.0", rules.Warning},
		{"above one but shrinking", "1.5", "2.0", rules.OK},
		{"below one, no history", "0.5", "", rules.OK},
		{"exactly one", "1", "0.5", rules.OK},
		{"above one, no history", "1.5", "", rules.Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := storeWith(map[string]string{
				status.VarLocalRecvQueueAvg: tt.current,
				status.VarFlowControlPaused: "0",
			})
			prev := snapshot.New()
			if tt.previous != "" {
				prev.Set(status.VarLocalRecvQueueAvg, status.Parse(tt.previous))
			}
			verdicts := rule.Evaluate(cur, prev, rules.Options{})

			v := findVerdict(t, verdicts, status.VarLocalRecvQueueAvg)
			if v.Severity != tt.want {
				t.Errorf("severity = %v, want %v", v.Severity, tt.want)
			}
		})
	}
}

func TestReplicationHealthRule_FlowControlPaused(t *testing.T) {
	rule := &ReplicationHealthRule{}
	qualified := status.VarFlowControlPaused + " (since last query)"

	tests := []struct {
		name     string
		current  string
		previous string
		want     rules.Severity
		wantDiff float64
	}{
		{"counter grew", "5", "3", rules.Warning, 2},
		{"counter flat", "3", "3", rules.OK, 0},
		{"no history counts from zero", "2", "", rules.Warning, 2},
		{"counter reset absorbed", "0", "", rules.OK, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := storeWith(map[string]string{
				status.VarLocalRecvQueueAvg: "0",
				status.VarFlowControlPaused: tt.current,
			})
			prev := snapshot.New()
			if tt.previous != "" {
				prev.Set(status.VarFlowControlPaused, status.Parse(tt.previous))
			}
			verdicts := rule.Evaluate(cur, prev, rules.Options{})

			v := findVerdict(t, verdicts, qualified)
			if v.Severity != tt.want {
				t.Errorf("severity = %v, want %v", v.Severity, tt.want)
			}
			if !v.Value.Equal(status.Numeric(tt.wantDiff)) {
				t.Errorf("diff = %v, want %v", v.Value, tt.wantDiff)
			}
			if v.BaseName() != status.VarFlowControlPaused {
				t.Errorf("BaseName() = %q", v.BaseName())
			}
		})
	}
}
