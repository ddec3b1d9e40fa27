package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftcase/rainpot/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix  = "user:"
	wagerKeyPrefix = "user_wagers:"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// wagerEntry is the stored member of the rolling wager log
type wagerEntry struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// NewRedis creates a new Redis-backed user repository
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

// SaveUser persists a user profile to Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	if input.User.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	userJSON, err := json.Marshal(input.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.User.ID)
	if err := r.client.Set(ctx, userKey, userJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)
	userJSON, err := r.client.Get(ctx, userKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// RecordWager appends a wager entry to the user's rolling log, scored by
// timestamp so old entries can be trimmed by score
func (r *redisRepository) RecordWager(ctx context.Context, input *RecordWagerInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return errors.New("wager amount must be positive")
	}

	entry := wagerEntry{
		ID:     uuid.New().String(),
		Amount: input.Amount,
	}

	member, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal wager entry: %w", err)
	}

	wagerKey := fmt.Sprintf("%s%s", wagerKeyPrefix, input.UserID)
	err = r.client.ZAdd(ctx, wagerKey, redis.Z{
		Score:  float64(input.At.UnixNano()),
		Member: member,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record wager: %w", err)
	}

	return nil
}

// GetWagerTotal sums the user's wagers since the given time and trims
// entries that have aged out of the window
func (r *redisRepository) GetWagerTotal(ctx context.Context, input *GetWagerTotalInput) (*GetWagerTotalOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	wagerKey := fmt.Sprintf("%s%s", wagerKeyPrefix, input.UserID)
	cutoff := float64(input.Since.UnixNano())

	// Drop aged-out entries first so the log stays bounded
	err := r.client.ZRemRangeByScore(ctx, wagerKey, "-inf", fmt.Sprintf("(%f", cutoff)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to trim wager log: %w", err)
	}

	members, err := r.client.ZRangeByScore(ctx, wagerKey, &redis.ZRangeBy{
		Min: fmt.Sprintf("%f", cutoff),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read wager log: %w", err)
	}

	total := 0.0
	for _, member := range members {
		var entry wagerEntry
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wager entry: %w", err)
		}
		total += entry.Amount
	}

	return &GetWagerTotalOutput{
		Total: total,
	}, nil
}
