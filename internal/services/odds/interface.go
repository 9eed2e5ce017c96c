package odds

import "context"

// Service defines the interface for dice odds operations
type Service interface {
	// CalculateOdds computes the chance of rolling an exact total
	CalculateOdds(ctx context.Context, input *CalculateOddsInput) (*CalculateOddsOutput, error)

	// GetDistribution computes the chance of every reachable total
	GetDistribution(ctx context.Context, input *GetDistributionInput) (*GetDistributionOutput, error)

	// SimulateRolls rolls the dice repeatedly and compares the observed frequency to the exact odds
	SimulateRolls(ctx context.Context, input *SimulateRollsInput) (*SimulateRollsOutput, error)

	// GetHistory returns the most recent queries asked in a channel
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory removes every query recorded for a channel
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}
