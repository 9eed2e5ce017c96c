package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SimulateOptions collects all options for the simulate command.
type SimulateOptions struct {
	Trials int
	Seed   int64
}

func (opts *SimulateOptions) AddFlags(f *pflag.FlagSet) {
	f.IntVarP(&opts.Trials, "trials", "n", 1000, "number of rolls")
	f.Int64Var(&opts.Seed, "seed", 0, "seed for the random rolls, 0 picks one from the clock")
}

func newSimulateCommand(gopts *GlobalOptions) *cobra.Command {
	var opts SimulateOptions

	cmd := &cobra.Command{
		Use:   "simulate NdS TARGET",
		Short: "Roll the dice many times and compare with the exact odds",
		Long: `
The "simulate" command rolls the dice --trials times, counts how often they
total TARGET and prints that frequency next to the exact probability.
`,
		Example:           "  odds simulate 2d6 7 --trials 10000",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), opts, *gopts, args, cmd.OutOrStdout())
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func runSimulate(ctx context.Context, opts SimulateOptions, gopts GlobalOptions, args []string, out io.Writer) error {
	diceCount, sides, target, err := parseDice(args)
	if err != nil {
		return err
	}

	svc, err := newService(gopts, opts.Seed)
	if err != nil {
		return err
	}

	output, err := svc.SimulateRolls(ctx, &odds.SimulateRollsInput{
		DiceCount: diceCount,
		Sides:     sides,
		Target:    target,
		Trials:    opts.Trials,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s = %d in %d of %d trials\n", output.Notation, target, output.Hits, output.Trials)
	fmt.Fprintf(out, "observed    %s\n", format(output.Observed))
	fmt.Fprintf(out, "exact       %s\n", format(output.Expected))
	fmt.Fprintf(out, "difference  %s\n", format(output.Difference))
	return nil
}
