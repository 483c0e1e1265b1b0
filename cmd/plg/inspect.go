package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarise a process",
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
		p := result.Process
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "name\t%s\n", p.Name())
		fmt.Fprintf(w, "id\t%s\n", p.ID())
		fmt.Fprintf(w, "start events\t%d\n", len(p.StartEvents()))
		fmt.Fprintf(w, "end events\t%d\n", len(p.EndEvents()))
		fmt.Fprintf(w, "tasks\t%d\n", len(p.Tasks()))
		fmt.Fprintf(w, "gateways\t%d\n", len(p.Gateways()))
		fmt.Fprintf(w, "sequences\t%d\n", len(p.Sequences()))
		fmt.Fprintf(w, "data objects\t%d\n", len(p.DataObjects()))
		fmt.Fprintf(w, "warnings\t%d\n", len(result.Warnings))
		if err := w.Flush(); err != nil {
			return err
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", warning)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
