package cmd

import (
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the available fix rules",
		Long:  "List every built-in fix rule in the order it is applied by default.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ListRules()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
