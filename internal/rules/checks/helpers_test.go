package checks

import (
	"testing"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
	"galeracheck/internal/status"
)

func storeWith(vals map[string]string) *snapshot.Store {
	s := snapshot.New()
	for name, raw := range vals {
		s.Set(name, status.Parse(raw))
	}
	return s
}

func findVerdict(t *testing.T, verdicts []rules.Verdict, name string) rules.Verdict {
	t.Helper()
	for _, v := range verdicts {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("no verdict named %q in %v", name, verdicts)
	return rules.Verdict{}
}
