package checks

import (
	"testing"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

func TestSendQueueRule(t *testing.T) {
	rule := &SendQueueRule{}

	tests := []struct {
		name     string
		current  string
		previous string // "" means never observed
		want     rules.Severity
	}{
		{"above one and grew", "1.5", "1.0", rules.Warning},
		{"above one but shrank", "1.5", "2.0", rules.OK},
		{"below one", "0.5", "0.2", rules.OK},
		{"above one, no history", "2", "", rules.Warning},
		{"flat", "1.5", "1.5", rules.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := storeWith(map[string]string{
				status.VarLocalSendQueueAvg: tt.current,
			})
			prev := snapshot.New()
			if tt.previous != "" {
				prev.Set(status.VarLocalSendQueueAvg, status.Parse(tt.previous))
			}
			verdicts := rule.Evaluate(cur, prev, rules.Options{})

			v := findVerdict(t, verdicts, status.VarLocalSendQueueAvg)
			if v.Severity != tt.want {
				t.Errorf("severity = %v, want %v", v.Severity, tt.want)
			}
		})
	}
}
