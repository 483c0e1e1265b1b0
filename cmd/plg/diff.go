package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/plg/service/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Compare two processes",
	Long:  `Prints a unified diff of the canonical documents of A and B followed by line statistics.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newService(cmd)
		if err != nil {
			return err
		}
		from, err := importProcess(cmd.Context(), srv, args[0])
		if err != nil {
			return err
		}
		to, err := importProcess(cmd.Context(), srv, args[1])
		if err != nil {
			return err
		}
		contextLines, _ := cmd.Flags().GetInt("context")
		result, err := diff.Compare(from.Process, to.Process,
			diff.WithLabels(args[0], args[1]),
			diff.WithContext(contextLines))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if result.Equal() {
			fmt.Fprintln(out, "processes are identical")
			return nil
		}
		fmt.Fprint(out, result.Patch)
		fmt.Fprintf(out, "%d added, %d changed, %d deleted in %d hunk(s)\n",
			result.Stats.Added, result.Stats.Changed, result.Stats.Deleted, result.Stats.Hunks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Int("context", 3, "Number of context lines")
}
