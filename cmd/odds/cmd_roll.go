package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/probably-dice/internal/probability"
	"github.com/KirkDiggler/probably-dice/internal/services/odds"
	"github.com/spf13/cobra"
)

func newRollCommand(gopts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roll NdS TARGET",
		Short: "Chance of rolling an exact total",
		Long: `
The "roll" command prints the chance that the dice total exactly TARGET, along
with the chance of rolling at least and at most TARGET. Probabilities are
rounded to four decimal places.
`,
		Example:           "  odds roll 3d6 10",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd.Context(), *gopts, args, cmd.OutOrStdout())
		},
	}
}

func runRoll(ctx context.Context, gopts GlobalOptions, args []string, out io.Writer) error {
	diceCount, sides, target, err := parseDice(args)
	if err != nil {
		return err
	}

	svc, err := newService(gopts, 0)
	if err != nil {
		return err
	}

	output, err := svc.CalculateOdds(ctx, &odds.CalculateOddsInput{
		DiceCount: diceCount,
		Sides:     sides,
		Target:    target,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s = %d\n", output.Notation, output.Target)
	fmt.Fprintf(out, "exactly   %s\n", format(output.Probability))
	fmt.Fprintf(out, "at least  %s\n", format(output.AtLeast))
	fmt.Fprintf(out, "at most   %s\n", format(output.AtMost))
	fmt.Fprintf(out, "ways      %s of %s\n", output.Ways, output.Outcomes)
	return nil
}

func format(p float64) string {
	return strconv.FormatFloat(p, 'f', probability.Precision, 64)
}
