package messaging

import (
	"context"
	"errors"
	"math"

	"github.com/KirkDiggler/probably-dice/internal/dice"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// GetOddsMessage returns a remark about the chance of rolling a total
func (s *service) GetOddsMessage(ctx context.Context, input *GetOddsMessageInput) (*GetOddsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Impossible:
		tone = ToneSarcastic
		messages = []string{
			"No amount of blowing on the dice will help here.",
			"The dice would need more pips than they have.",
			"Impossible. Not unlikely, impossible.",
		}
	case input.Probability >= likelyThreshold:
		tone = ToneEncouraging
		messages = []string{
			"Bread and butter. You'll see this one plenty.",
			"Roll a few times and it'll turn up.",
			"About as safe as a bet on dice gets.",
		}
	case input.Probability >= fairThreshold:
		tone = ToneNeutral
		messages = []string{
			"Not the favourite, but it shows up.",
			"Worth a hopeful glance at the table.",
			"It'll happen a few times a session.",
		}
	case input.Probability >= longShotThreshold:
		tone = ToneFunny
		messages = []string{
			"A long shot. Bring snacks.",
			"Possible, in the way winning the raffle is possible.",
			"The dice gods will want a tribute for this one.",
		}
	default:
		tone = ToneFunny
		messages = []string{
			"If this happens, screenshot it.",
			"You are more likely to lose the dice under the couch.",
			"Miracles happen. Rarely.",
		}
	}

	return &GetOddsMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetSimulationMessage returns a remark about how close simulated rolls came to the exact odds
func (s *service) GetSimulationMessage(ctx context.Context, input *GetSimulationMessageInput) (*GetSimulationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	difference := input.Observed - input.Expected
	switch {
	case math.Abs(difference) <= closeEnough:
		tone = ToneNeutral
		messages = []string{
			"Right on the money. Maths works.",
			"The dice behaved themselves.",
			"Close enough to keep the statisticians happy.",
		}
	case difference > 0:
		tone = ToneEncouraging
		messages = []string{
			"The dice were feeling generous.",
			"Hot dice! Don't expect it to last.",
			"Luckier than the odds say you should be.",
		}
	default:
		tone = ToneSarcastic
		messages = []string{
			"The dice had other plans.",
			"Cold dice. Maybe try a different cup.",
			"Unluckier than the odds say you should be.",
		}
	}

	return &GetSimulationMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// pick selects a message with the dice roller
func (s *service) pick(messages []string) string {
	return messages[s.diceRoller.Roll(len(messages))-1]
}
