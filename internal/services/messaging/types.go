package messaging

import "github.com/KirkDiggler/probably-dice/internal/dice"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"
)

// Odds tiers, by exact probability
const (
	// likelyThreshold and above is a roll you should expect to see often
	likelyThreshold = 0.25

	// fairThreshold and above turns up a few times an evening
	fairThreshold = 0.05

	// longShotThreshold and above is rare, anything below is a miracle
	longShotThreshold = 0.01

	// closeEnough is how far simulated odds may drift before we comment on luck
	closeEnough = 0.01
)

// Config contains configuration for the messaging service
type Config struct {
	// DiceRoller picks which message to use
	DiceRoller dice.Roller
}

// GetOddsMessageInput contains parameters for getting an odds message
type GetOddsMessageInput struct {
	// Probability is the exact chance of the total
	Probability float64

	// Impossible is set when the dice cannot reach the total at all
	Impossible bool
}

// GetOddsMessageOutput contains the result of getting an odds message
type GetOddsMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetSimulationMessageInput contains parameters for getting a simulation message
type GetSimulationMessageInput struct {
	// Observed is the simulated frequency
	Observed float64

	// Expected is the exact probability
	Expected float64
}

// GetSimulationMessageOutput contains the result of getting a simulation message
type GetSimulationMessageOutput struct {
	Message string
	Tone    MessageTone
}
