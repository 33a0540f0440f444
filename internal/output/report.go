// Package output reduces verdicts to an overall severity and renders the
// operator-facing report: one summary line on stdout, plus optional
// per-verdict detail lines in verbose mode.
package output

import (
	"fmt"
	"strings"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"
)

// WorstOf reduces verdicts to the overall severity. Pure worst-of: verdict
// order does not affect the result.
func WorstOf(verdicts []rules.Verdict) rules.Severity {
	worst := rules.OK
	for _, v := range verdicts {
		if v.Severity > worst {
			worst = v.Severity
		}
	}
	return worst
}

// Summary renders the single stdout line: the overall severity, every non-OK
// verdict as "name=value (should be expected)", and the cluster state uuid
// and configuration id passed through verbatim so operators can correlate
// output across nodes.
func Summary(verdicts []rules.Verdict, uuid, confID string) string {
	var b strings.Builder
	b.WriteString(WorstOf(verdicts).String())

	var bad []string
	for _, v := range verdicts {
		if v.Severity == rules.OK {
			continue
		}
		bad = append(bad, fmt.Sprintf("%s=%s (should be %s)", v.Name, v.Value, v.Expected))
	}
	if len(bad) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(bad, ", "))
	}

	fmt.Fprintf(&b, " uuid=%s conf_id=%s", uuid, confID)
	return b.String()
}

// VerboseLines renders one line per verdict. Numeric verdicts also show the
// previous value and the all-time maximum, looked up in the previous
// snapshot by the verdict's base variable name (qualifier stripped).
func VerboseLines(verdicts []rules.Verdict, prev *snapshot.Store) []string {
	var lines []string
	for _, v := range verdicts {
		var b strings.Builder
		fmt.Fprintf(&b, "[%s] %s=%s (should be %s)", v.Severity, v.Name, v.Value, v.Expected)
		if v.Value.IsNumeric() {
			base := v.BaseName()
			if p, ok := prev.Get(base); ok {
				fmt.Fprintf(&b, " previous=%s", p)
			} else {
				b.WriteString(" previous=none")
			}
			if m, ok := prev.Max(base); ok {
				fmt.Fprintf(&b, " max=%s", m)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
