package rain

import (
	"testing"

	"github.com/driftcase/rainpot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSingleParticipantGetsFullPot(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 3, Wager7d: 10},
	}, 100, 0)

	require.Len(t, payouts, 1)
	assert.Equal(t, "user-1", payouts[0].Participant.UserID)
	assert.Equal(t, 100.0, payouts[0].Amount)
}

func TestAllocateBlendsLevelAndWager(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 2, Wager7d: 30},
		{UserID: "user-2", Level: 4, Wager7d: 70},
	}, 100, 0)

	require.Len(t, payouts, 2)
	assert.InDelta(t, 31.66, payouts[0].Amount, 1e-9)
	assert.InDelta(t, 68.33, payouts[1].Amount, 1e-9)
}

func TestAllocateZeroWagerFallsBackToLevelOnly(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 1, Wager7d: 0},
		{UserID: "user-2", Level: 3, Wager7d: 0},
	}, 100, 0)

	require.Len(t, payouts, 2)
	assert.Equal(t, 25.0, payouts[0].Amount)
	assert.Equal(t, 75.0, payouts[1].Amount)
}

func TestAllocateFiltersBelowMinWager(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 2, Wager7d: 5},
		{UserID: "user-2", Level: 4, Wager7d: 500},
	}, 100, 50)

	require.Len(t, payouts, 1)
	assert.Equal(t, "user-2", payouts[0].Participant.UserID)
	assert.Equal(t, 100.0, payouts[0].Amount)
}

func TestAllocateNoEligibleParticipants(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 2, Wager7d: 5},
	}, 100, 50)

	assert.Empty(t, payouts)
}

func TestAllocateEmptyRoster(t *testing.T) {
	payouts := Allocate(nil, 100, 0)

	assert.Empty(t, payouts)
}

func TestAllocateZeroLevelsAndWagersPayNothing(t *testing.T) {
	payouts := Allocate([]*models.Participant{
		{UserID: "user-1", Level: 0, Wager7d: 0},
		{UserID: "user-2", Level: 0, Wager7d: 0},
	}, 100, 0)

	require.Len(t, payouts, 2)
	assert.Equal(t, 0.0, payouts[0].Amount)
	assert.Equal(t, 0.0, payouts[1].Amount)
}

func TestAllocateSumNeverExceedsPot(t *testing.T) {
	participants := []*models.Participant{
		{UserID: "user-1", Level: 1, Wager7d: 13.37},
		{UserID: "user-2", Level: 7, Wager7d: 0.01},
		{UserID: "user-3", Level: 3, Wager7d: 99.99},
		{UserID: "user-4", Level: 11, Wager7d: 42.42},
	}

	for _, pot := range []float64{0.01, 1, 33.33, 100, 12345.67} {
		payouts := Allocate(participants, pot, 0)
		require.Len(t, payouts, 4)

		var sum float64
		for _, p := range payouts {
			assert.GreaterOrEqual(t, p.Amount, 0.0)
			sum += p.Amount
		}
		assert.LessOrEqual(t, sum, pot)
	}
}

func TestTruncateCents(t *testing.T) {
	assert.Equal(t, 31.66, truncateCents(31.669999))
	assert.Equal(t, 100.0, truncateCents(100))
	assert.Equal(t, 0.0, truncateCents(0.0099))
}
