package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Rewrite a document in canonical form",
	Long:  `Imports IN and writes it to OUT with components ordered by id. Skipped elements are reported and dropped.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newService(cmd)
		if err != nil {
			return err
		}
		result, err := importProcess(cmd.Context(), srv, args[0])
		if err != nil {
			return err
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "dropped: %v\n", warning)
		}
		return srv.Export(cmd.Context(), result.Process, resolve(args[1]))
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
