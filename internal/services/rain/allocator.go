package rain

import (
	"math"

	"github.com/driftcase/rainpot/internal/models"
)

// Payout is one participant's computed share of the pot
type Payout struct {
	Participant *models.Participant
	Amount      float64
}

// Allocate computes each eligible participant's payout from the pot.
// Eligibility requires a trailing wager of at least minWager. Shares
// blend normalized level and normalized wager equally; when no eligible
// participant has any wager, the wager term is dropped and shares are
// level-only. Amounts are truncated to two decimal places, so the sum of
// payouts can fall short of the pot; the remainder is retained by the
// house. A single eligible participant receives the pot in full.
func Allocate(participants []*models.Participant, pot float64, minWager float64) []Payout {
	eligible := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Wager7d >= minWager {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return []Payout{}
	}

	if len(eligible) == 1 {
		return []Payout{{Participant: eligible[0], Amount: pot}}
	}

	var levelSum, wagerSum float64
	for _, p := range eligible {
		levelSum += float64(p.Level)
		wagerSum += p.Wager7d
	}

	payouts := make([]Payout, 0, len(eligible))
	for _, p := range eligible {
		var levelScore float64
		if levelSum > 0 {
			levelScore = float64(p.Level) / levelSum
		}

		var share float64
		if wagerSum == 0 {
			share = levelScore
		} else {
			wagerScore := p.Wager7d / wagerSum
			share = 0.5*levelScore + 0.5*wagerScore
		}

		payouts = append(payouts, Payout{
			Participant: p,
			Amount:      truncateCents(pot * share),
		})
	}

	return payouts
}

// truncateCents floors to two decimal places
func truncateCents(amount float64) float64 {
	return math.Floor(amount*100) / 100
}
