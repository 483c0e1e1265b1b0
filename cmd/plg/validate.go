package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a process for consistency",
	Long:  `Imports the document, reports skipped elements and structural issues such as unreachable nodes or redundant gateways.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newService(cmd)
		if err != nil {
			return err
		}
		result, err := importProcess(cmd.Context(), srv, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "warning: %v\n", warning)
		}
		issues := result.Process.Validate()
		for _, issue := range issues {
			fmt.Fprintf(out, "issue: %v\n", issue)
		}
		if count := len(issues) + len(result.Warnings); count > 0 {
			return fmt.Errorf("validation failed: %d problem(s)", count)
		}
		fmt.Fprintf(out, "%s is valid\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
