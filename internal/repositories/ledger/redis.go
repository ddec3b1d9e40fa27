package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	balanceKeyPrefix = "balance:"

	// maxRetries bounds optimistic transaction retries under contention
	maxRetries = 5
)

var (
	// ErrUnknownUser is returned when no balance exists for the user
	ErrUnknownUser = errors.New("unknown user")

	// ErrInsufficientFunds is returned when a debit exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrContention is returned when optimistic retries are exhausted
	ErrContention = errors.New("balance update contention")
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// GetBalance retrieves a user's spendable balance
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	balance, err := r.readBalance(ctx, r.client, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

// SetBalance overwrites a user's balance
func (r *redisRepository) SetBalance(ctx context.Context, input *SetBalanceInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Balance < 0 {
		return errors.New("balance cannot be negative")
	}

	key := fmt.Sprintf("%s%s", balanceKeyPrefix, input.UserID)
	value := strconv.FormatFloat(input.Balance, 'f', -1, 64)

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}

	return nil
}

// Debit atomically subtracts from a balance inside a WATCH-guarded
// transaction so concurrent spends cannot overdraw
func (r *redisRepository) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, errors.New("debit amount must be positive")
	}

	balance, err := r.applyDelta(ctx, input.UserID, -input.Amount)
	if err != nil {
		return nil, err
	}

	return &DebitOutput{Balance: balance}, nil
}

// Credit atomically adds to a balance
func (r *redisRepository) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, errors.New("credit amount must be positive")
	}

	balance, err := r.applyDelta(ctx, input.UserID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &CreditOutput{Balance: balance}, nil
}

// applyDelta adjusts a balance under WATCH, rejecting overdrafts
func (r *redisRepository) applyDelta(ctx context.Context, userID string, delta float64) (float64, error) {
	key := fmt.Sprintf("%s%s", balanceKeyPrefix, userID)

	var result float64

	txf := func(tx *redis.Tx) error {
		balance, err := r.readBalance(ctx, tx, userID)
		if err != nil {
			return err
		}

		next := balance + delta
		if next < 0 {
			return ErrInsufficientFunds
		}

		value := strconv.FormatFloat(next, 'f', -1, 64)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for i := 0; i < maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return 0, err
	}

	return 0, ErrContention
}

// redisGetter covers both the plain client and a transaction handle
type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) readBalance(ctx context.Context, c redisGetter, userID string) (float64, error) {
	key := fmt.Sprintf("%s%s", balanceKeyPrefix, userID)

	value, err := c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrUnknownUser
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	balance, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}

	return balance, nil
}
