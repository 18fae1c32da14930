package adjust

import (
	"math"

	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/internal/domain/rating"
	"github.com/courtside/deuce/internal/domain/scorestring"
)

// Elo model constants.
const (
	// defaultBaseK keeps adjustment magnitudes on the same scale as the
	// heuristic strategy's K-factors.
	defaultBaseK = 4.0

	eloDivisor = 400.0
)

// ProbabilityOption applies a configuration option to the
// ProbabilityStrategy.
type ProbabilityOption func(*ProbabilityStrategy)

// WithBaseK overrides the tuned base K constant.
func WithBaseK(k float64) ProbabilityOption {
	return func(s *ProbabilityStrategy) {
		if k > 0 {
			s.baseK = k
		}
	}
}

// WithTierMultipliers overrides experience multipliers per canonical tier
// label. Tiers absent from the map keep their defaults.
func WithTierMultipliers(multipliers map[string]float64) ProbabilityOption {
	return func(s *ProbabilityStrategy) {
		for label, m := range multipliers {
			if m > 0 {
				s.multipliers[rating.ParseTier(label)] = m
			}
		}
	}
}

// ProbabilityStrategy is the Elo-style model: a logistic expectation from
// the team spread, one shared K scaled by the perspective team's average
// experience multiplier, and symmetric application to both sides.
// Volatility is left unchanged.
type ProbabilityStrategy struct {
	baseK       float64
	multipliers map[rating.Tier]float64
}

// NewProbabilityStrategy creates the Elo-style strategy with default
// tuning.
func NewProbabilityStrategy(opts ...ProbabilityOption) *ProbabilityStrategy {
	s := &ProbabilityStrategy{
		baseK: defaultBaseK,
		multipliers: map[rating.Tier]float64{
			rating.TierNew:  rating.TierNew.EloMultiplier(),
			rating.TierLow:  rating.TierLow.EloMultiplier(),
			rating.TierMid:  rating.TierMid.EloMultiplier(),
			rating.TierHigh: rating.TierHigh.EloMultiplier(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy.
func (s *ProbabilityStrategy) Name() string { return StrategyProbability }

// Calculate applies the Elo model to all four players.
func (s *ProbabilityStrategy) Calculate(match model.MatchInput, sets []model.SetResult) model.AdjustmentResult {
	team1Avg, team2Avg := match.TeamAverages()
	spread := math.Abs(team1Avg - team2Avg)

	// Lower display rating is better, so team 1's expectation rises as
	// its average falls below team 2's. This flips the subtraction order
	// of the textbook Elo formula.
	expected := 1 / (1 + math.Pow(10, (team1Avg-team2Avg)/eloDivisor))

	actual := 0.0
	if scorestring.MatchWinner(sets) == model.Team1 {
		actual = 1.0
	}

	k := s.baseK * (s.multiplier(match.Players[model.SlotPlayer].Tier) +
		s.multiplier(match.Players[model.SlotPartner].Tier)) / 2
	adjustment := math.Abs(k * (actual - expected))

	winner := scorestring.MatchWinner(sets)

	var result model.AdjustmentResult
	result.Spread = spread
	result.Adjustment = adjustment

	for slot, p := range match.Players {
		before := snapshot(p)
		result.Before[slot] = before

		// Winners improve (decrease), losers worsen, both sides by the
		// same magnitude. Sigma does not move under this model.
		newPTI := p.PTI + adjustment
		if teamOf(slot) == winner {
			newPTI = p.PTI - adjustment
		}
		result.After[slot] = model.PlayerSnapshot{
			PTI:   newPTI,
			Mu:    rating.PTIToMu(newPTI),
			Sigma: before.Sigma,
		}
	}

	return roundResult(result)
}

func (s *ProbabilityStrategy) multiplier(t rating.Tier) float64 {
	if m, ok := s.multipliers[t]; ok {
		return m
	}
	return t.EloMultiplier()
}
