package rules

import (
	"testing"

	"galeracheck/internal/snapshot"
)

type stubRule struct {
	name     string
	verdicts []Verdict
}

func (r *stubRule) Name() string     { return r.name }
func (r *stubRule) Describe() string { return "stub" }
func (r *stubRule) Evaluate(cur, prev *snapshot.Store, opts Options) []Verdict {
	return r.verdicts
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	Register(&stubRule{name: "zzz-first"})
	Register(&stubRule{name: "aaa-second"})

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d rules", len(list))
	}
	last := list[len(list)-1]
	secondToLast := list[len(list)-2]
	if secondToLast.Name() != "zzz-first" || last.Name() != "aaa-second" {
		t.Errorf("registration order not preserved: got %s, %s", secondToLast.Name(), last.Name())
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration did not panic")
		}
	}()
	Register(&stubRule{name: "dup"})
	Register(&stubRule{name: "dup"})
}

func TestEvaluateAll_ConcatenatesInOrder(t *testing.T) {
	Register(&stubRule{name: "eval-a", verdicts: []Verdict{{Name: "a", Severity: OK}}})
	Register(&stubRule{name: "eval-b", verdicts: []Verdict{{Name: "b", Severity: Warning}}})

	verdicts := EvaluateAll(snapshot.New(), snapshot.New(), Options{})
	var got []string
	for _, v := range verdicts {
		got = append(got, v.Name)
	}
	// a must come before b; other tests may have registered rules too.
	ai, bi := -1, -1
	for i, name := range got {
		if name == "a" {
			ai = i
		}
		if name == "b" {
			bi = i
		}
	}
	if ai == -1 || bi == -1 || ai > bi {
		t.Errorf("verdict order wrong: %v", got)
	}
}
