package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/viant/plg/model"
	"github.com/viant/plg/model/script"
)

var sampleCmd = &cobra.Command{
	Use:   "sample FILE",
	Short: "Generate values from the process scripts",
	Long:  `Invokes every scripted data object and task activity script once per case and prints the produced values.`,
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
		cases, _ := cmd.Flags().GetInt("cases")
		seed, _ := cmd.Flags().GetUint64("seed")
		return sample(cmd.OutOrStdout(), result.Process, cases, seed)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntP("cases", "n", 3, "Number of cases")
	sampleCmd.Flags().Uint64("seed", 1, "Random seed")
}

func sample(w io.Writer, p *model.Process, cases int, seed uint64) error {
	random := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < cases; i++ {
		ctx := &script.Context{CaseID: fmt.Sprintf("case_%d", i), Rand: random}
		fmt.Fprintf(w, "%s\n", ctx.CaseID)
		for _, d := range p.DataObjects() {
			var value interface{}
			var err error
			switch {
			case d.StringExecutor() != nil:
				value, err = d.StringExecutor().Execute(ctx)
			case d.IntegerExecutor() != nil:
				value, err = d.IntegerExecutor().Execute(ctx)
			default:
				value = d.Value()
			}
			if err != nil {
				return fmt.Errorf("data object %d: %w", d.ComponentID(), err)
			}
			fmt.Fprintf(w, "  %s %d = %v\n", label(d.Name(), d), d.ComponentID(), value)
		}
		for _, task := range p.Tasks() {
			value, err := task.ActivityScript().Execute(ctx)
			if err != nil {
				return fmt.Errorf("task %d: %w", task.ComponentID(), err)
			}
			fmt.Fprintf(w, "  %s %d = %d\n", label(task.Name(), task), task.ComponentID(), value)
		}
	}
	return nil
}

func label(name string, c model.Component) string {
	if name == "" {
		return c.Kind().String()
	}
	return name
}
