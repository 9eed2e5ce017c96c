package odds

import (
	"math/big"

	"github.com/KirkDiggler/probably-dice/internal/common/clock"
	"github.com/KirkDiggler/probably-dice/internal/common/uuid"
	"github.com/KirkDiggler/probably-dice/internal/dice"
	"github.com/KirkDiggler/probably-dice/internal/metrics"
	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/KirkDiggler/probably-dice/internal/probability"
	queryRepo "github.com/KirkDiggler/probably-dice/internal/repositories/query"
)

const (
	defaultMaxDice      = 50
	defaultMaxSides     = 100
	defaultMaxTrials    = 100000
	defaultTrials       = 1000
	defaultHistoryLimit = 10
)

// Config holds configuration for the odds service
type Config struct {
	// Maximum number of dice per calculation
	MaxDice int

	// Maximum number of sides per die
	MaxSides int

	// Maximum number of simulated rolls per simulation
	MaxTrials int

	// Repository dependencies, QueryRepo is optional and disables history when nil
	QueryRepo queryRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Metrics       metrics.Recorder
}

// Asker identifies where a query came from, empty for anonymous queries
type Asker struct {
	// ChannelID is the Discord channel ID, history is recorded only when set
	ChannelID string

	// UserID is the Discord user ID of the asker
	UserID string

	// UserName is the display name of the asker
	UserName string
}

// CalculateOddsInput contains parameters for calculating exact odds
type CalculateOddsInput struct {
	Asker

	DiceCount int
	Sides     int
	Target    int
}

// CalculateOddsOutput contains the result of calculating exact odds
type CalculateOddsOutput struct {
	// QueryID is the ID of the recorded query, empty when nothing was recorded
	QueryID string

	// Notation is the dice in NdS form
	Notation string

	DiceCount int
	Sides     int
	Target    int

	// Probability is the chance of rolling exactly Target, rounded to 4 places
	Probability float64

	// AtLeast is the chance of rolling Target or more
	AtLeast float64

	// AtMost is the chance of rolling Target or less
	AtMost float64

	// Ways is the number of ordered rolls that total Target
	Ways *big.Int

	// Outcomes is the number of possible rolls, sides^diceCount
	Outcomes *big.Int

	// Impossible indicates Target cannot be rolled at all
	Impossible bool
}

// GetDistributionInput contains parameters for computing a distribution
type GetDistributionInput struct {
	Asker

	DiceCount int
	Sides     int
}

// GetDistributionOutput contains the distribution of totals
type GetDistributionOutput struct {
	QueryID      string
	Notation     string
	Distribution *probability.Distribution
}

// SimulateRollsInput contains parameters for simulating rolls
type SimulateRollsInput struct {
	Asker

	DiceCount int
	Sides     int
	Target    int

	// Trials is the number of rolls to make, defaults to 1000
	Trials int
}

// SimulateRollsOutput contains the result of a simulation
type SimulateRollsOutput struct {
	QueryID  string
	Notation string

	Trials int

	// Hits is the number of rolls that totalled Target
	Hits int

	// Observed is Hits over Trials, rounded to 4 places
	Observed float64

	// Expected is the exact probability of Target
	Expected float64

	// Difference is Observed minus Expected
	Difference float64
}

// GetHistoryInput contains parameters for retrieving query history
type GetHistoryInput struct {
	ChannelID string

	// Limit caps the number of queries returned, defaults to 10
	Limit int
}

// GetHistoryOutput contains the recent queries of a channel, newest first
type GetHistoryOutput struct {
	Queries []*models.OddsQuery
}

// ClearHistoryInput contains parameters for clearing query history
type ClearHistoryInput struct {
	ChannelID string
}

// ClearHistoryOutput contains the result of clearing query history
type ClearHistoryOutput struct {
	// Deleted is the number of queries removed
	Deleted int
}
