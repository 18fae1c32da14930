package adjust

import (
	"math"

	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/internal/domain/rating"
	"github.com/courtside/deuce/internal/domain/scorestring"
)

// Heuristic swing factors. An underdog winning (or a favorite losing the
// same match) swings harder than a favorite doing the expected thing.
const (
	expectedOutcomeFactor = 0.4
	upsetOutcomeFactor    = 0.8

	// defaultVolatilityAging is added to every player's sigma after each
	// match, win or lose.
	defaultVolatilityAging = 0.03
)

// LegacyOption applies a configuration option to the LegacyStrategy.
type LegacyOption func(*LegacyStrategy)

// WithVolatilityAging overrides the per-match sigma increment.
func WithVolatilityAging(aging float64) LegacyOption {
	return func(s *LegacyStrategy) {
		if aging > 0 {
			s.volatilityAging = aging
		}
	}
}

// LegacyStrategy is the original favored/underdog heuristic. Each player
// moves by their own K-factor scaled by whether their team was favored
// and whether it won; volatility ages by a fixed increment every match.
type LegacyStrategy struct {
	volatilityAging float64
}

// NewLegacyStrategy creates the heuristic strategy with default tuning.
func NewLegacyStrategy(opts ...LegacyOption) *LegacyStrategy {
	s := &LegacyStrategy{
		volatilityAging: defaultVolatilityAging,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy.
func (s *LegacyStrategy) Name() string { return StrategyLegacy }

// Calculate applies the heuristic to all four players.
func (s *LegacyStrategy) Calculate(match model.MatchInput, sets []model.SetResult) model.AdjustmentResult {
	team1Avg, team2Avg := match.TeamAverages()
	spread := math.Abs(team1Avg - team2Avg)

	// Lower display rating is better, so the favored team is the one
	// with the lower average.
	favored := model.Team1
	if team2Avg < team1Avg {
		favored = model.Team2
	}
	winner := scorestring.MatchWinner(sets)

	var result model.AdjustmentResult
	result.Spread = spread

	for slot, p := range match.Players {
		before := snapshot(p)
		result.Before[slot] = before

		// K comes from the player's own volatility bucket.
		k := rating.KFactorForVolatility(before.Sigma)

		team := teamOf(slot)
		won := team == winner
		onFavored := team == favored

		var change float64
		switch {
		case won && onFavored:
			change = -k * expectedOutcomeFactor
		case won && !onFavored:
			change = -k * upsetOutcomeFactor
		case !won && onFavored:
			change = k * upsetOutcomeFactor
		default:
			change = k * expectedOutcomeFactor
		}

		// Re-derive mu from the new display rating rather than adjusting
		// the old mu; round-trip fidelity of the conversion layer makes
		// the two agree on calibrated values.
		newPTI := p.PTI + change
		result.After[slot] = model.PlayerSnapshot{
			PTI:   newPTI,
			Mu:    rating.PTIToMu(newPTI),
			Sigma: before.Sigma + s.volatilityAging,
		}
	}

	// The self player's own magnitude is reported as representative of
	// the match.
	result.Adjustment = math.Abs(result.Before[model.SlotPlayer].PTI - result.After[model.SlotPlayer].PTI)

	return roundResult(result)
}
