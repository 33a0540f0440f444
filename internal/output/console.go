package output

import (
	"fmt"
	"io"
	"os"

	"galeracheck/internal/rules"
	"galeracheck/internal/snapshot"

	"github.com/fatih/color"
)

// Console writes the report, coloring the severity token when the
// destination is a terminal (fatih/color disables itself otherwise, so
// scheduler-captured output stays plain).
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func severityColor(s rules.Severity) *color.Color {
	switch s {
	case rules.OK:
		return color.New(color.FgGreen)
	case rules.Warning:
		return color.New(color.FgYellow)
	case rules.Critical:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// Summary writes the one-line report for a completed evaluation.
func (c *Console) Summary(verdicts []rules.Verdict, uuid, confID string) error {
	worst := WorstOf(verdicts)
	line := Summary(verdicts, uuid, confID)
	colored := severityColor(worst).Sprint(worst.String()) + line[len(worst.String()):]
	_, err := fmt.Fprintln(c.w, colored)
	return err
}

// Verbose writes the per-verdict detail lines that precede the summary.
func (c *Console) Verbose(verdicts []rules.Verdict, prev *snapshot.Store) error {
	for _, line := range VerboseLines(verdicts, prev) {
		if _, err := fmt.Fprintln(c.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Line writes a bare severity-prefixed message, used when the run failed
// before any verdicts existed (fetch errors, missing variables).
func (c *Console) Line(s rules.Severity, msg string) error {
	_, err := fmt.Fprintf(c.w, "%s: %s\n", severityColor(s).Sprint(s.String()), msg)
	return err
}
