package rules

import (
	"strings"

	"galeracheck/internal/status"
)

// Severity is the ordered verdict level. The integer value doubles as the
// process exit code contract: 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN.
// UNKNOWN is reserved for environment and connectivity failures; the rule
// evaluator itself never produces it.
type Severity int

const (
	OK Severity = iota
	Warning
	Critical
	Unknown
)

func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) ExitCode() int { return int(s) }

// Verdict is one check outcome for one status variable. Name may carry a
// human qualifier after the variable name, e.g.
// "wsrep_flow_control_paused (since last query)".
type Verdict struct {
	Name     string
	Value    status.Value
	Expected status.Value
	Severity Severity
}

// BaseName strips the qualifier suffix so the verdict can be cross-referenced
// against the snapshot by raw variable name.
func (v Verdict) BaseName() string {
	if i := strings.Index(v.Name, " ("); i >= 0 {
		return v.Name[:i]
	}
	return v.Name
}
