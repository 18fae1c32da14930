package adjust

import (
	"math"

	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/internal/domain/scorestring"
)

// defaultMaxSets leaves parsing uncapped: every segment of the score
// string counts. Operators can bound hostile inputs with WithMaxSets.
const defaultMaxSets = 0

// EngineOption applies a configuration option to the Engine.
type EngineOption func(*Engine)

// WithMaxSets caps the number of sets parsed from a score string.
// Zero or negative removes the cap.
func WithMaxSets(n int) EngineOption {
	return func(e *Engine) {
		e.maxSets = n
	}
}

// Engine orchestrates a single adjustment computation: parse the score,
// delegate to the strategy, and fall back to a neutral result when the
// score yields no usable sets. It holds only read-only configuration and
// is safe for concurrent use.
type Engine struct {
	strategy Strategy
	maxSets  int
}

// NewEngine creates an engine bound to one strategy.
func NewEngine(strategy Strategy, opts ...EngineOption) *Engine {
	e := &Engine{
		strategy: strategy,
		maxSets:  defaultMaxSets,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategy returns the engine's bound strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Adjust computes the rating adjustment for a completed match. It never
// fails: malformed score segments are skipped during parsing, and a score
// with no valid sets produces the zero-adjustment fallback rather than an
// error. The second return value reports whether the fallback was taken;
// callers must not infer it from the result, since a wide enough rating
// gap can legitimately round a strategy's adjustment down to zero.
func (e *Engine) Adjust(match model.MatchInput, score string) (model.AdjustmentResult, bool) {
	sets := scorestring.Parse(score, e.maxSets)
	if len(sets) == 0 {
		return e.fallback(match), true
	}
	return e.strategy.Calculate(match, sets), false
}

// fallback echoes the inputs untouched: zero adjustment, spread still
// computed from the raw ratings, before and after identical.
func (e *Engine) fallback(match model.MatchInput) model.AdjustmentResult {
	team1Avg, team2Avg := match.TeamAverages()

	var result model.AdjustmentResult
	result.Spread = math.Abs(team1Avg - team2Avg)
	for slot, p := range match.Players {
		s := snapshot(p)
		result.Before[slot] = s
		result.After[slot] = s
	}
	return roundResult(result)
}
