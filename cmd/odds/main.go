// Command odds answers dice probability questions from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "odds: %v\n", err)
		os.Exit(1)
	}
}

// GlobalOptions hold the limits shared by every subcommand
type GlobalOptions struct {
	MaxDice   int
	MaxSides  int
	MaxTrials int
}

func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&opts.MaxDice, "max-dice", 100, "refuse to roll more than this many dice")
	f.IntVar(&opts.MaxSides, "max-sides", 100, "refuse dice with more than this many sides")
	f.IntVar(&opts.MaxTrials, "max-trials", 1000000, "refuse to simulate more than this many rolls")
}

func newRootCommand() *cobra.Command {
	var globalOptions GlobalOptions

	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Exact probabilities for sums of dice",
		Long: `
odds computes the exact chance that a handful of equal dice add up to a total.

Dice are written as NdS, so 3d6 is three six-sided dice.
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	globalOptions.AddFlags(cmd.PersistentFlags())
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newRollCommand(&globalOptions),
		newDistributionCommand(&globalOptions),
		newSimulateCommand(&globalOptions),
	)

	return cmd
}
