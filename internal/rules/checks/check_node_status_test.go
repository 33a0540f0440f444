package checks

import (
	"testing"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

func TestNodeStatusRule_ReadyAndConnected(t *testing.T) {
	rule := &NodeStatusRule{}

	tests := []struct {
		name      string
		ready     string
		connected string
		wantReady rules.Severity
		wantConn  rules.Severity
	}{
		{"both on", "ON", "ON", rules.OK, rules.OK},
		{"not ready", "OFF", "ON", rules.Critical, rules.OK},
		{"not connected", "ON", "OFF", rules.OK, rules.Critical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := storeWith(map[string]string{
				status.VarReady:             tt.ready,
				status.VarConnected:         tt.connected,
				status.VarLocalStateComment: "Synced",
			})
			verdicts := rule.Evaluate(cur, snapshot.New(), rules.Options{})

			if v := findVerdict(t, verdicts, status.VarReady); v.Severity != tt.wantReady {
				t.Errorf("ready severity = %v, want %v", v.Severity, tt.wantReady)
			}
			if v := findVerdict(t, verdicts, status.VarConnected); v.Severity != tt.wantConn {
				t.Errorf("connected severity = %v, want %v", v.Severity, tt.wantConn)
			}
		})
	}
}

func TestNodeStatusRule_LocalStateComment(t *testing.T) {
	rule := &NodeStatusRule{}

	tests := []struct {
		state string
		want  rules.Severity
	}{
		{"Synced", rules.OK},
		{"Initialized", rules.Critical},
		{"Donor/Desynced", rules.Warning},
		{"Joining", rules.Warning},
	}

	for _, tt := range tests {
		cur := storeWith(map[string]string{
			status.VarReady:             "ON",
			status.VarConnected:         "ON",
			status.VarLocalStateComment: tt.state,
		})
		verdicts := rule.Evaluate(cur, snapshot.New(), rules.Options{})

		v := findVerdict(t, verdicts, status.VarLocalStateComment)
		if v.Severity != tt.want {
			t.Errorf("%s: severity = %v, want %v", tt.state, v.Severity, tt.want)
		}
		if !v.Expected.Equal(status.Text("Synced")) {
			t.Errorf("%s: expected value = %v, want Synced", tt.state, v.Expected)
		}
	}
}
