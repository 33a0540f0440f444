package rules

import (
	"fmt"
	"sync"

	"galeracheck/internal/snapshot"
)

var (
	mu       sync.RWMutex
	registry []Rule
)

// Register adds a rule. Rules self-register from init() in the checks
// package; registration order is preserved so report ordering stays stable.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	for _, existing := range registry {
		if existing.Name() == r.Name() {
			panic(fmt.Sprintf("rule %s already registered", r.Name()))
		}
	}
	registry = append(registry, r)
}

// List returns all registered rules in registration order.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

// EvaluateAll runs every registered rule and concatenates the verdicts.
func EvaluateAll(cur, prev *snapshot.Store, opts Options) []Verdict {
	var verdicts []Verdict
	for _, r := range List() {
		verdicts = append(verdicts, r.Evaluate(cur, prev, opts)...)
	}
	return verdicts
}
