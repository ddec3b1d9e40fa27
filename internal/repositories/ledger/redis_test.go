package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSetAndGetBalance() {
	err := s.repo.SetBalance(context.Background(), &SetBalanceInput{
		UserID:  "test-user-id",
		Balance: 150.25,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Equal(150.25, out.Balance)
}

func (s *RedisRepositoryTestSuite) TestGetBalanceUnknownUser() {
	_, err := s.repo.GetBalance(context.Background(), &GetBalanceInput{
		UserID: "missing-user",
	})
	s.Require().ErrorIs(err, ErrUnknownUser)
}

func (s *RedisRepositoryTestSuite) TestDebitReducesBalance() {
	ctx := context.Background()

	err := s.repo.SetBalance(ctx, &SetBalanceInput{UserID: "test-user-id", Balance: 100})
	s.Require().NoError(err)

	out, err := s.repo.Debit(ctx, &DebitInput{UserID: "test-user-id", Amount: 40.5})
	s.Require().NoError(err)
	s.InDelta(59.5, out.Balance, 1e-9)

	bal, err := s.repo.GetBalance(ctx, &GetBalanceInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.InDelta(59.5, bal.Balance, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestDebitInsufficientFunds() {
	ctx := context.Background()

	err := s.repo.SetBalance(ctx, &SetBalanceInput{UserID: "test-user-id", Balance: 10})
	s.Require().NoError(err)

	_, err = s.repo.Debit(ctx, &DebitInput{UserID: "test-user-id", Amount: 10.01})
	s.Require().ErrorIs(err, ErrInsufficientFunds)

	// Balance is untouched after a rejected debit
	bal, err := s.repo.GetBalance(ctx, &GetBalanceInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.Equal(10.0, bal.Balance)
}

func (s *RedisRepositoryTestSuite) TestDebitUnknownUser() {
	_, err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "missing-user",
		Amount: 5,
	})
	s.Require().ErrorIs(err, ErrUnknownUser)
}

func (s *RedisRepositoryTestSuite) TestCreditIncreasesBalance() {
	ctx := context.Background()

	err := s.repo.SetBalance(ctx, &SetBalanceInput{UserID: "test-user-id", Balance: 5})
	s.Require().NoError(err)

	out, err := s.repo.Credit(ctx, &CreditInput{UserID: "test-user-id", Amount: 31.65})
	s.Require().NoError(err)
	s.InDelta(36.65, out.Balance, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestCreditUnknownUser() {
	_, err := s.repo.Credit(context.Background(), &CreditInput{
		UserID: "missing-user",
		Amount: 5,
	})
	s.Require().ErrorIs(err, ErrUnknownUser)
}

func (s *RedisRepositoryTestSuite) TestDebitRejectsNonPositiveAmount() {
	_, err := s.repo.Debit(context.Background(), &DebitInput{
		UserID: "test-user-id",
		Amount: -1,
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestConcurrentDebitsNeverOverdraw() {
	ctx := context.Background()

	err := s.repo.SetBalance(ctx, &SetBalanceInput{UserID: "test-user-id", Balance: 50})
	s.Require().NoError(err)

	const workers = 10

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.repo.Debit(ctx, &DebitInput{UserID: "test-user-id", Amount: 10}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	bal, err := s.repo.GetBalance(ctx, &GetBalanceInput{UserID: "test-user-id"})
	s.Require().NoError(err)
	s.GreaterOrEqual(bal.Balance, 0.0)
	s.InDelta(50-float64(succeeded)*10, bal.Balance, 1e-9)
	s.LessOrEqual(succeeded, 5)
}
