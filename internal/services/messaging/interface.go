package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/probably-dice/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetOddsMessage returns a remark about the chance of rolling a total
	GetOddsMessage(ctx context.Context, input *GetOddsMessageInput) (*GetOddsMessageOutput, error)

	// GetSimulationMessage returns a remark about how close simulated rolls came to the exact odds
	GetSimulationMessage(ctx context.Context, input *GetSimulationMessageInput) (*GetSimulationMessageOutput, error)
}
