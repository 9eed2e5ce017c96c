package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/probably-dice/internal/common/uuid"
	"github.com/KirkDiggler/probably-dice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	queryKeyPrefix        = "query:"
	channelQueriesPrefix  = "channel:queries:" // Sorted set of query IDs scored by creation time
	defaultMaxHistory     = 100
	defaultHistoryTimeout = 30 * 24 * time.Hour
)

// ErrQueryNotFound is returned when a query is not found
var ErrQueryNotFound = errors.New("query not found")

// Config holds configuration for the Redis query repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxHistory is how many queries are indexed per channel, defaults to 100
	MaxHistory int

	// TTL is how long a stored query lives, defaults to 30 days
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxHistory int
	ttl        time.Duration
}

// NewRedis creates a new Redis-backed query repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultHistoryTimeout
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxHistory: maxHistory,
		ttl:        ttl,
	}, nil
}

// SaveQuery persists a query to Redis
func (r *redisRepository) SaveQuery(ctx context.Context, input *SaveQueryInput) error {
	if input == nil || input.Query == nil {
		return errors.New("input and query cannot be nil")
	}

	if input.Query.ID == "" {
		return errors.New("query ID cannot be empty")
	}

	if input.Query.ChannelID == "" {
		return errors.New("channel ID cannot be empty")
	}

	queryJSON, err := json.Marshal(input.Query)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, queryKey(input.Query.ID), queryJSON, r.ttl)

	channelKey := channelQueriesKey(input.Query.ChannelID)
	pipe.ZAdd(ctx, channelKey, redis.Z{
		Score:  float64(input.Query.CreatedAt.UnixNano()),
		Member: input.Query.ID,
	})

	pipe.Expire(ctx, channelKey, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}

	return r.trimChannel(ctx, channelKey)
}

// trimChannel drops everything but the newest maxHistory queries of a channel,
// removing both the index entries and the stored queries
func (r *redisRepository) trimChannel(ctx context.Context, channelKey string) error {
	staleIDs, err := r.client.ZRange(ctx, channelKey, 0, int64(-r.maxHistory-1)).Result()
	if err != nil {
		return fmt.Errorf("failed to get stale query IDs: %w", err)
	}

	if len(staleIDs) == 0 {
		return nil
	}

	members := make([]any, 0, len(staleIDs))
	keys := make([]string, 0, len(staleIDs))
	for _, queryID := range staleIDs {
		members = append(members, queryID)
		keys = append(keys, queryKey(queryID))
	}

	pipe := r.client.TxPipeline()
	pipe.ZRem(ctx, channelKey, members...)
	pipe.Del(ctx, keys...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to trim channel history: %w", err)
	}

	return nil
}

// GetQuery retrieves a query by ID from Redis
func (r *redisRepository) GetQuery(ctx context.Context, input *GetQueryInput) (*models.OddsQuery, error) {
	if input == nil || input.QueryID == "" {
		return nil, errors.New("input and query ID cannot be empty")
	}

	if err := uuid.Validate(input.QueryID); err != nil {
		return nil, err
	}

	queryJSON, err := r.client.Get(ctx, queryKey(input.QueryID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueryNotFound
		}
		return nil, fmt.Errorf("failed to get query: %w", err)
	}

	var query models.OddsQuery
	if err := json.Unmarshal([]byte(queryJSON), &query); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query: %w", err)
	}

	return &query, nil
}

// ListQueriesByChannel retrieves recent queries for a channel from Redis
func (r *redisRepository) ListQueriesByChannel(ctx context.Context, input *ListQueriesByChannelInput) ([]*models.OddsQuery, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	queryIDs, err := r.client.ZRevRange(ctx, channelQueriesKey(input.ChannelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get query IDs for channel: %w", err)
	}

	// If there are no queries, return an empty slice
	if len(queryIDs) == 0 {
		return []*models.OddsQuery{}, nil
	}

	keys := make([]string, 0, len(queryIDs))
	for _, queryID := range queryIDs {
		keys = append(keys, queryKey(queryID))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get queries: %w", err)
	}

	queries := make([]*models.OddsQuery, 0, len(values))
	for i, value := range values {
		queryJSON, ok := value.(string)
		if !ok {
			// Query expired while still indexed
			continue
		}

		var query models.OddsQuery
		if err := json.Unmarshal([]byte(queryJSON), &query); err != nil {
			return nil, fmt.Errorf("failed to unmarshal query %s: %w", queryIDs[i], err)
		}

		queries = append(queries, &query)
	}

	return queries, nil
}

// DeleteChannelQueries removes a channel's query history from Redis
func (r *redisRepository) DeleteChannelQueries(ctx context.Context, input *DeleteChannelQueriesInput) (*DeleteChannelQueriesOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := channelQueriesKey(input.ChannelID)
	queryIDs, err := r.client.ZRange(ctx, channelKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get query IDs for channel: %w", err)
	}

	keys := make([]string, 0, len(queryIDs)+1)
	for _, queryID := range queryIDs {
		keys = append(keys, queryKey(queryID))
	}
	keys = append(keys, channelKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, fmt.Errorf("failed to delete channel queries: %w", err)
	}

	return &DeleteChannelQueriesOutput{
		Deleted: len(queryIDs),
	}, nil
}

func queryKey(queryID string) string {
	return fmt.Sprintf("%s%s", queryKeyPrefix, queryID)
}

func channelQueriesKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelQueriesPrefix, channelID)
}
