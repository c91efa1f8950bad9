package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fractalqb/scriptlint"
)

func init() {
	rulesCmd.Run = listRules
	rootCmd.AddCommand(&rulesCmd)
}

var rulesCmd = cobra.Command{
	Use:   "rules",
	Short: "List the rules in the order they are applied",
	Args:  cobra.NoArgs,
}

func listRules(cmd *cobra.Command, _ []string) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range scriptlint.DefaultRules() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Summary)
	}
	tw.Flush()
}
