package query

import "github.com/KirkDiggler/probably-dice/internal/models"

type SaveQueryInput struct {
	Query *models.OddsQuery
}

type GetQueryInput struct {
	QueryID string
}

type ListQueriesByChannelInput struct {
	ChannelID string

	// Limit caps the number of queries returned, 0 means all
	Limit int
}

type DeleteChannelQueriesInput struct {
	ChannelID string
}

type DeleteChannelQueriesOutput struct {
	// Deleted is the number of queries removed
	Deleted int
}
