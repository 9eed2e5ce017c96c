package main

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/probably-dice/internal/common/clock"
	"github.com/KirkDiggler/probably-dice/internal/common/uuid"
	"github.com/KirkDiggler/probably-dice/internal/dice"
	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/KirkDiggler/probably-dice/internal/services/odds"
)

// newService builds an odds service without history
func newService(gopts GlobalOptions, seed int64) (odds.Service, error) {
	return odds.New(&odds.Config{
		MaxDice:       gopts.MaxDice,
		MaxSides:      gopts.MaxSides,
		MaxTrials:     gopts.MaxTrials,
		DiceRoller:    dice.New(&dice.Config{Seed: seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
}

// parseDice parses NdS and an optional target
func parseDice(args []string) (diceCount, sides, target int, err error) {
	diceCount, sides, err = models.ParseNotation(args[0])
	if err != nil {
		return 0, 0, 0, err
	}

	if len(args) > 1 {
		target, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid target %q: %w", args[1], err)
		}
	}

	return diceCount, sides, target, nil
}
