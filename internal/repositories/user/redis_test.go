package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/driftcase/rainpot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	// Set up test time
	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetUser() {
	user := &models.User{
		ID:       "test-user-id",
		Username: "TestUser",
		Avatar:   "https://cdn.example.com/a.png",
		Level:    12,
		Role:     models.RoleUser,
	}

	err := s.repo.SaveUser(context.Background(), &SaveUserInput{
		User: user,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetUser(context.Background(), &GetUserInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-user-id", retrieved.ID)
	s.Equal("TestUser", retrieved.Username)
	s.Equal(12, retrieved.Level)
	s.Equal(models.RoleUser, retrieved.Role)
}

func (s *RedisRepositoryTestSuite) TestGetUserNotFound() {
	_, err := s.repo.GetUser(context.Background(), &GetUserInput{
		UserID: "missing-user",
	})
	s.Require().ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestWagerTotalSumsWindow() {
	ctx := context.Background()

	err := s.repo.RecordWager(ctx, &RecordWagerInput{
		UserID: "test-user-id",
		Amount: 30,
		At:     s.testNow.Add(-48 * time.Hour),
	})
	s.Require().NoError(err)

	err = s.repo.RecordWager(ctx, &RecordWagerInput{
		UserID: "test-user-id",
		Amount: 20.5,
		At:     s.testNow.Add(-time.Hour),
	})
	s.Require().NoError(err)

	out, err := s.repo.GetWagerTotal(ctx, &GetWagerTotalInput{
		UserID: "test-user-id",
		Since:  s.testNow.Add(-7 * 24 * time.Hour),
	})
	s.Require().NoError(err)
	s.InDelta(50.5, out.Total, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestWagerTotalDropsAgedEntries() {
	ctx := context.Background()

	err := s.repo.RecordWager(ctx, &RecordWagerInput{
		UserID: "test-user-id",
		Amount: 100,
		At:     s.testNow.Add(-8 * 24 * time.Hour),
	})
	s.Require().NoError(err)

	err = s.repo.RecordWager(ctx, &RecordWagerInput{
		UserID: "test-user-id",
		Amount: 40,
		At:     s.testNow.Add(-time.Hour),
	})
	s.Require().NoError(err)

	out, err := s.repo.GetWagerTotal(ctx, &GetWagerTotalInput{
		UserID: "test-user-id",
		Since:  s.testNow.Add(-7 * 24 * time.Hour),
	})
	s.Require().NoError(err)
	s.InDelta(40, out.Total, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestWagerTotalEmptyLog() {
	out, err := s.repo.GetWagerTotal(context.Background(), &GetWagerTotalInput{
		UserID: "test-user-id",
		Since:  s.testNow.Add(-7 * 24 * time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(0.0, out.Total)
}

func (s *RedisRepositoryTestSuite) TestRecordWagerRejectsNonPositiveAmount() {
	err := s.repo.RecordWager(context.Background(), &RecordWagerInput{
		UserID: "test-user-id",
		Amount: 0,
		At:     s.testNow,
	})
	s.Require().Error(err)
}
