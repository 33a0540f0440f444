package cli

import (
	"bytes"
	"strings"
	"testing"

	_ "galeracheck/internal/rules/checks"

	"github.com/spf13/cobra"
)

func TestRulesList_QuietPrintsNamesInRunOrder(t *testing.T) {
	rulesListQuiet = true
	defer func() { rulesListQuiet = false }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := rulesListCmd.RunE(cmd, nil); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"cluster-integrity", "node-status", "replication-health", "send-queue"}
	if len(lines) != len(want) {
		t.Fatalf("got %d checks, want %d: %v", len(lines), len(want), lines)
	}
	for i, name := range want {
		if lines[i] != name {
			t.Errorf("line %d = %q, want %q", i, lines[i], name)
		}
	}
}

func TestRulesList_VerbosePrintsDescriptions(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := rulesListCmd.RunE(cmd, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "CHECK: cluster-integrity") {
		t.Errorf("missing check heading in %q", out)
	}
	if !strings.Contains(out, "wsrep_cluster_size") {
		t.Errorf("missing description text in %q", out)
	}
}
