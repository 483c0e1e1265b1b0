package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/plg/service/render"
)

var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the process graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the process. Nodes with validation issues can be highlighted.`,
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
		withData, _ := cmd.Flags().GetBool("data")
		highlight, _ := cmd.Flags().GetIntSlice("highlight")
		fmt.Fprint(cmd.OutOrStdout(), render.Mermaid(result.Process,
			render.WithDataObjects(withData),
			render.WithHighlight(highlight...)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("data", false, "Include data objects")
	graphCmd.Flags().IntSlice("highlight", nil, "Component ids to highlight")
}
