package cli

import (
	"fmt"
	"io"

	"galeracheck/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesListQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list checks",
	Long: `Manage GaleraCheck checks.

This command group helps you discover which checks exist and what each one
evaluates. Checks run during "galeracheck check".

Examples:
  # List all available checks
  galeracheck rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available checks",
	Long: `List all checks registered in this build, in the order they run.

Examples:
  galeracheck rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range rules.List() {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.Name())
			} else {
				printRule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	heading := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	heading.Fprintf(w, "CHECK: %s\n", r.Name())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, r.Describe())
	fmt.Fprintln(w)
}

func init() {
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print check names")
	rulesCmd.AddCommand(rulesListCmd)
	rootCmd.AddCommand(rulesCmd)
}
