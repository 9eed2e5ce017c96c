package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/spf13/cobra"
)

func newDistributionCommand(gopts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "distribution NdS",
		Aliases: []string{"dist"},
		Short:   "Chance of every total",
		Long: `
The "distribution" command prints every reachable total with the number of
ways to roll it and its probability.
`,
		Example:           "  odds dist 2d6",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistribution(cmd.Context(), *gopts, args, cmd.OutOrStdout())
		},
	}
}

func runDistribution(ctx context.Context, gopts GlobalOptions, args []string, out io.Writer) error {
	diceCount, sides, _, err := parseDice(args)
	if err != nil {
		return err
	}

	svc, err := newService(gopts, 0)
	if err != nil {
		return err
	}

	output, err := svc.GetDistribution(ctx, &odds.GetDistributionInput{
		DiceCount: diceCount,
		Sides:     sides,
	})
	if err != nil {
		return err
	}

	dist := output.Distribution
	fmt.Fprintf(out, "%s: %d to %d, mean %g, %s outcomes\n", output.Notation, dist.Min, dist.Max, dist.Mean, dist.Total)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "total\tways\tprobability")
	for _, outcome := range dist.Outcomes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", outcome.Sum, outcome.Ways, format(outcome.Probability))
	}
	return tw.Flush()
}
