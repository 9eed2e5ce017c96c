package odds

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/probably-dice/internal/common/clock"
	"github.com/KirkDiggler/probably-dice/internal/common/uuid"
	"github.com/KirkDiggler/probably-dice/internal/dice"
	"github.com/KirkDiggler/probably-dice/internal/metrics"
	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/KirkDiggler/probably-dice/internal/probability"
	queryRepo "github.com/KirkDiggler/probably-dice/internal/repositories/query"
)

// Calculation kinds reported to metrics
const (
	kindExact        = "exact"
	kindDistribution = "distribution"
	kindSimulation   = "simulation"
)

// service implements the Service interface
type service struct {
	maxDice       int
	maxSides      int
	maxTrials     int
	queryRepo     queryRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       metrics.Recorder
}

// New creates a new odds service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		maxDice:       cfg.MaxDice,
		maxSides:      cfg.MaxSides,
		maxTrials:     cfg.MaxTrials,
		queryRepo:     cfg.QueryRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       cfg.Metrics,
	}

	// Set default values if not provided
	if svc.maxDice <= 0 {
		svc.maxDice = defaultMaxDice
	}
	if svc.maxSides <= 0 {
		svc.maxSides = defaultMaxSides
	}
	if svc.maxTrials <= 0 {
		svc.maxTrials = defaultMaxTrials
	}
	if svc.metrics == nil {
		svc.metrics = metrics.Nop{}
	}

	return svc, nil
}

// CalculateOdds computes the chance of rolling an exact total
func (s *service) CalculateOdds(ctx context.Context, input *CalculateOddsInput) (*CalculateOddsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.checkLimits(input.DiceCount, input.Sides); err != nil {
		return nil, err
	}

	start := s.clock.Now()
	odds, err := probability.Evaluate(input.DiceCount, input.Sides, input.Target)
	if err != nil {
		s.metrics.ObserveCalculation(kindExact, metrics.ResultError, s.clock.Now().Sub(start))
		return nil, translateError(err)
	}

	impossible := odds.Ways.Sign() == 0
	s.metrics.ObserveCalculation(kindExact, resultLabel(impossible), s.clock.Now().Sub(start))

	queryID := s.recordQuery(ctx, input.Asker, &models.OddsQuery{
		Kind:        models.QueryKindExact,
		DiceCount:   input.DiceCount,
		Sides:       input.Sides,
		Target:      input.Target,
		Probability: odds.Exact,
	})

	return &CalculateOddsOutput{
		QueryID:     queryID,
		Notation:    models.Notation(input.DiceCount, input.Sides),
		DiceCount:   input.DiceCount,
		Sides:       input.Sides,
		Target:      input.Target,
		Probability: odds.Exact,
		AtLeast:     odds.AtLeast,
		AtMost:      odds.AtMost,
		Ways:        odds.Ways,
		Outcomes:    odds.Total,
		Impossible:  impossible,
	}, nil
}

// GetDistribution computes the chance of every reachable total
func (s *service) GetDistribution(ctx context.Context, input *GetDistributionInput) (*GetDistributionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.checkLimits(input.DiceCount, input.Sides); err != nil {
		return nil, err
	}

	start := s.clock.Now()
	dist, err := probability.NewDistribution(input.DiceCount, input.Sides)
	if err != nil {
		s.metrics.ObserveCalculation(kindDistribution, metrics.ResultError, s.clock.Now().Sub(start))
		return nil, translateError(err)
	}
	s.metrics.ObserveCalculation(kindDistribution, metrics.ResultPossible, s.clock.Now().Sub(start))

	queryID := s.recordQuery(ctx, input.Asker, &models.OddsQuery{
		Kind:      models.QueryKindDistribution,
		DiceCount: input.DiceCount,
		Sides:     input.Sides,
	})

	return &GetDistributionOutput{
		QueryID:      queryID,
		Notation:     models.Notation(input.DiceCount, input.Sides),
		Distribution: dist,
	}, nil
}

// SimulateRolls rolls the dice repeatedly and compares the result to the exact odds
func (s *service) SimulateRolls(ctx context.Context, input *SimulateRollsInput) (*SimulateRollsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.checkLimits(input.DiceCount, input.Sides); err != nil {
		return nil, err
	}

	trials := input.Trials
	if trials == 0 {
		trials = defaultTrials
	}
	if trials < 0 {
		return nil, ErrInvalidTrials
	}
	if trials > s.maxTrials {
		return nil, fmt.Errorf("%w: %d is more than the limit of %d", ErrTooManyTrials, trials, s.maxTrials)
	}

	start := s.clock.Now()
	expected, err := probability.Roll(input.DiceCount, input.Sides, input.Target)
	if err != nil {
		s.metrics.ObserveCalculation(kindSimulation, metrics.ResultError, s.clock.Now().Sub(start))
		return nil, translateError(err)
	}

	hits := 0
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.diceRoller.RollSum(input.DiceCount, input.Sides) == input.Target {
			hits++
		}
	}

	impossible := input.Target < input.DiceCount || input.Target > input.DiceCount*input.Sides
	observed := probability.Round(float64(hits)/float64(trials), probability.Precision)
	s.metrics.ObserveCalculation(kindSimulation, resultLabel(impossible), s.clock.Now().Sub(start))

	queryID := s.recordQuery(ctx, input.Asker, &models.OddsQuery{
		Kind:        models.QueryKindSimulation,
		DiceCount:   input.DiceCount,
		Sides:       input.Sides,
		Target:      input.Target,
		Probability: expected,
		Observed:    observed,
	})

	return &SimulateRollsOutput{
		QueryID:    queryID,
		Notation:   models.Notation(input.DiceCount, input.Sides),
		Trials:     trials,
		Hits:       hits,
		Observed:   observed,
		Expected:   expected,
		Difference: probability.Round(observed-expected, probability.Precision),
	}, nil
}

// GetHistory returns the most recent queries asked in a channel
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.queryRepo == nil {
		return nil, ErrHistoryDisabled
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	queries, err := s.queryRepo.ListQueriesByChannel(ctx, &queryRepo.ListQueriesByChannelInput{
		ChannelID: input.ChannelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	return &GetHistoryOutput{
		Queries: queries,
	}, nil
}

// ClearHistory removes every query recorded for a channel
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.queryRepo == nil {
		return nil, ErrHistoryDisabled
	}

	output, err := s.queryRepo.DeleteChannelQueries(ctx, &queryRepo.DeleteChannelQueriesInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear queries: %w", err)
	}

	return &ClearHistoryOutput{
		Deleted: output.Deleted,
	}, nil
}

// checkLimits keeps a single request from tying up the bot
func (s *service) checkLimits(diceCount, sides int) error {
	if diceCount > s.maxDice {
		return fmt.Errorf("%w: %d is more than the limit of %d", ErrTooManyDice, diceCount, s.maxDice)
	}
	if sides > s.maxSides {
		return fmt.Errorf("%w: %d is more than the limit of %d", ErrTooManySides, sides, s.maxSides)
	}
	return nil
}

// recordQuery saves the query to the channel history and returns its ID.
// History is best effort: a failed save is logged and the answer is still returned.
func (s *service) recordQuery(ctx context.Context, asker Asker, query *models.OddsQuery) string {
	if s.queryRepo == nil || asker.ChannelID == "" {
		return ""
	}

	query.ID = s.uuidGenerator.NewUUID()
	query.ChannelID = asker.ChannelID
	query.UserID = asker.UserID
	query.UserName = asker.UserName
	query.CreatedAt = s.clock.Now()

	if err := s.queryRepo.SaveQuery(ctx, &queryRepo.SaveQueryInput{Query: query}); err != nil {
		log.Printf("Error saving %s query %s for channel %s: %v", query.Kind, query.ID, query.ChannelID, err)
		return ""
	}

	return query.ID
}

func translateError(err error) error {
	if errors.Is(err, probability.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrInvalidDice, err)
	}
	return err
}

func resultLabel(impossible bool) string {
	if impossible {
		return metrics.ResultImpossible
	}
	return metrics.ResultPossible
}

// Ensure service implements Service
var _ Service = (*service)(nil)
