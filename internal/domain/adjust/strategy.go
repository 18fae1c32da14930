// Package adjust computes post-match rating adjustments for doubles
// matches. Two interchangeable strategies exist side by side: the legacy
// favored/underdog heuristic and an Elo-style probability model. Neither
// has been declared authoritative, so both stay selectable behind the
// same interface.
package adjust

import (
	"math"

	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/internal/domain/rating"
)

// Strategy names as used in configuration and API requests.
const (
	StrategyLegacy      = "legacy"
	StrategyProbability = "probability"
)

// Strategy computes a full adjustment result from a match and its parsed
// sets. Implementations are pure: no retained state, no I/O, safe for
// any number of concurrent callers.
type Strategy interface {
	// Name identifies the strategy for configuration and metrics.
	Name() string

	// Calculate produces before/after snapshots for all four players.
	// sets is never empty; the engine short-circuits that case.
	Calculate(match model.MatchInput, sets []model.SetResult) model.AdjustmentResult
}

// round2 rounds to exactly two decimal places, the system-boundary
// precision for every numeric field.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func roundSnapshot(s model.PlayerSnapshot) model.PlayerSnapshot {
	return model.PlayerSnapshot{
		PTI:   round2(s.PTI),
		Mu:    round2(s.Mu),
		Sigma: round2(s.Sigma),
	}
}

func roundResult(r model.AdjustmentResult) model.AdjustmentResult {
	r.Spread = round2(r.Spread)
	r.Adjustment = round2(r.Adjustment)
	for i := range r.Before {
		r.Before[i] = roundSnapshot(r.Before[i])
		r.After[i] = roundSnapshot(r.After[i])
	}
	return r
}

// snapshot derives a player's full performance state from their input:
// mu via the conversion layer, sigma seeded from the tier.
func snapshot(p model.PlayerRating) model.PlayerSnapshot {
	return model.PlayerSnapshot{
		PTI:   p.PTI,
		Mu:    rating.PTIToMu(p.PTI),
		Sigma: p.Tier.VolatilitySeed(),
	}
}

// teamOf maps a player slot to its team index.
func teamOf(slot int) int {
	if slot < 2 {
		return model.Team1
	}
	return model.Team2
}
