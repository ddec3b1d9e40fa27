package rain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftcase/rainpot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis keys for the singleton session and its history log
	sessionKey = "rain:session"
	historyKey = "rain:history"

	// historyLimit bounds the retained distribution records
	historyLimit = 50

	// maxUpdateRetries bounds optimistic transaction retries under
	// contention
	maxUpdateRetries = 5
)

var (
	// ErrSessionNotFound is returned when no session document exists
	ErrSessionNotFound = errors.New("rain session not found")

	// ErrSessionExists is returned when creating over an existing session
	ErrSessionExists = errors.New("rain session already exists")

	// ErrStatusConflict is returned when the session is not in an
	// expected status for the requested update
	ErrStatusConflict = errors.New("rain session status conflict")

	// ErrUpdateContention is returned when optimistic retries are
	// exhausted
	ErrUpdateContention = errors.New("rain session update contention")
)

// Config holds configuration for the Redis rain repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed rain repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetSession retrieves the singleton rain session
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.RainSession, error) {
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get rain session: %w", err)
	}

	var session models.RainSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rain session: %w", err)
	}

	return &session, nil
}

// CreateSession persists a new session if none exists yet
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.RainSession, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rain session: %w", err)
	}

	created, err := r.client.SetNX(ctx, sessionKey, sessionJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create rain session: %w", err)
	}

	if !created {
		return nil, ErrSessionExists
	}

	return input.Session, nil
}

// UpdateSession applies a conditional mutation inside a WATCH-guarded
// optimistic transaction. Concurrent writers retry; a status mismatch
// aborts with ErrStatusConflict without writing.
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.RainSession, error) {
	if input == nil || input.Update == nil {
		return nil, errors.New("input and update func cannot be nil")
	}

	var updated *models.RainSession

	txf := func(tx *redis.Tx) error {
		sessionJSON, err := tx.Get(ctx, sessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get rain session: %w", err)
		}

		var session models.RainSession
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return fmt.Errorf("failed to unmarshal rain session: %w", err)
		}

		if len(input.ExpectedStatus) > 0 && !statusIn(session.Status, input.ExpectedStatus) {
			return ErrStatusConflict
		}

		if err := input.Update(&session); err != nil {
			return err
		}

		payload, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("failed to marshal rain session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &session
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, sessionKey)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Another writer touched the session; retry
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateContention
}

// AppendHistory prepends a record and trims the log to the retained bound
func (r *redisRepository) AppendHistory(ctx context.Context, input *AppendHistoryInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal distribution record: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, historyKey, recordJSON)
	pipe.LTrim(ctx, historyKey, 0, historyLimit-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append distribution record: %w", err)
	}

	return nil
}

// GetHistory retrieves the most recent distribution records, newest first
func (r *redisRepository) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	limit := historyLimit
	if input != nil && input.Limit > 0 && input.Limit < historyLimit {
		limit = input.Limit
	}

	entries, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution history: %w", err)
	}

	records := make([]*models.DistributionRecord, 0, len(entries))
	for _, entry := range entries {
		var record models.DistributionRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal distribution record: %w", err)
		}
		records = append(records, &record)
	}

	return &GetHistoryOutput{
		Records: records,
	}, nil
}

func statusIn(status models.RainStatus, set []models.RainStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
