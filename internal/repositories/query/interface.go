package query

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/probably-dice/internal/repositories/query Repository

import (
	"context"

	"github.com/KirkDiggler/probably-dice/internal/models"
)

// Repository defines the interface for odds query history persistence
type Repository interface {
	// SaveQuery persists a query and indexes it under its channel
	SaveQuery(ctx context.Context, input *SaveQueryInput) error

	// GetQuery retrieves a query by ID
	GetQuery(ctx context.Context, input *GetQueryInput) (*models.OddsQuery, error)

	// ListQueriesByChannel retrieves the most recent queries for a channel, newest first
	ListQueriesByChannel(ctx context.Context, input *ListQueriesByChannelInput) ([]*models.OddsQuery, error)

	// DeleteChannelQueries removes every query recorded for a channel
	DeleteChannelQueries(ctx context.Context, input *DeleteChannelQueriesInput) (*DeleteChannelQueriesOutput, error)
}
