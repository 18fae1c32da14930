// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/courtside/deuce/internal/domain/adjust"
	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/pkg/logger"
	"github.com/courtside/deuce/pkg/metrics"
)

// ErrUnknownStrategy is returned for a strategy name the service does
// not recognize.
var ErrUnknownStrategy = errors.New("unknown strategy")

const nanosecondsPerMillisecond = 1e6

// Service implements the API dependencies for the rating adjustment
// engine. After Start it holds only read-only configuration: one engine
// per strategy, shared safely by any number of concurrent requests.
type Service struct {
	mu sync.RWMutex

	// Configuration
	defaultStrategy string
	eloBaseK        float64
	tierMultipliers map[string]float64
	volatilityAging float64
	maxScoreSets    int

	// Engines, one per strategy, built at Start
	engines map[string]*adjust.Engine

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStrategy sets the default adjustment strategy.
func WithStrategy(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultStrategy = strings.ToLower(name)
		}
	}
}

// WithEloBaseK sets the probability strategy's base K constant.
func WithEloBaseK(k float64) Option {
	return func(s *Service) {
		if k > 0 {
			s.eloBaseK = k
		}
	}
}

// WithTierMultipliers sets the probability strategy's experience
// multipliers per tier label.
func WithTierMultipliers(multipliers map[string]float64) Option {
	return func(s *Service) {
		s.tierMultipliers = multipliers
	}
}

// WithVolatilityAging sets the legacy strategy's per-match sigma
// increment.
func WithVolatilityAging(aging float64) Option {
	return func(s *Service) {
		if aging > 0 {
			s.volatilityAging = aging
		}
	}
}

// WithMaxScoreSets caps the number of sets parsed from a score string.
func WithMaxScoreSets(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxScoreSets = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultStrategy: adjust.StrategyLegacy,
		eloBaseK:        0, // strategy default applies unless configured
		volatilityAging: 0, // strategy default applies unless configured
		maxScoreSets:    0, // uncapped; every parsed set counts
		logger:          nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the strategy engines. Idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	var legacyOpts []adjust.LegacyOption
	if s.volatilityAging > 0 {
		legacyOpts = append(legacyOpts, adjust.WithVolatilityAging(s.volatilityAging))
	}
	var probOpts []adjust.ProbabilityOption
	if s.eloBaseK > 0 {
		probOpts = append(probOpts, adjust.WithBaseK(s.eloBaseK))
	}
	if len(s.tierMultipliers) > 0 {
		probOpts = append(probOpts, adjust.WithTierMultipliers(s.tierMultipliers))
	}

	engineOpts := []adjust.EngineOption{adjust.WithMaxSets(s.maxScoreSets)}
	s.engines = map[string]*adjust.Engine{
		adjust.StrategyLegacy:      adjust.NewEngine(adjust.NewLegacyStrategy(legacyOpts...), engineOpts...),
		adjust.StrategyProbability: adjust.NewEngine(adjust.NewProbabilityStrategy(probOpts...), engineOpts...),
	}
	if _, ok := s.engines[s.defaultStrategy]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, s.defaultStrategy)
	}

	s.started = true
	s.logger.Info(ctx, "adjustment service started",
		logger.String("strategy", s.defaultStrategy),
		logger.Int("maxScoreSets", s.maxScoreSets),
	)

	return nil
}

// Stop releases the engines. Present for symmetry with Start; the
// engines hold no resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.engines = nil
	s.started = false
	s.logger.Info(context.Background(), "adjustment service stopped")
}

// Adjust computes rating adjustments for one completed match. strategy
// selects a specific strategy for this call; empty means the configured
// default. Only an unknown strategy name produces an error; malformed
// scores degrade to the neutral fallback result.
func (s *Service) Adjust(ctx context.Context, match model.MatchInput, score, strategy string) (model.AdjustmentResult, error) {
	s.mu.RLock()
	engines := s.engines
	defaultStrategy := s.defaultStrategy
	s.mu.RUnlock()

	name := defaultStrategy
	if strategy != "" {
		name = strings.ToLower(strategy)
	}
	engine, ok := engines[name]
	if !ok {
		return model.AdjustmentResult{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	start := time.Now()
	result, fellBack := engine.Adjust(match, score)
	metrics.RecordAdjustmentLatency(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	metrics.RecordAdjustment(name, result.Adjustment)
	if fellBack {
		metrics.RecordFallbackResult()
		s.logger.Debug(ctx, "score yielded no usable sets; returned neutral result",
			logger.String("score", score),
		)
	}

	s.logger.Debug(ctx, "adjustment computed",
		logger.String("strategy", name),
		logger.Float64("spread", result.Spread),
		logger.Float64("adjustment", result.Adjustment),
	)

	return result, nil
}

// Strategies lists the recognized strategy names.
func (s *Service) Strategies() []string {
	return []string{adjust.StrategyLegacy, adjust.StrategyProbability}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"strategy":     s.defaultStrategy,
		"strategies":   s.Strategies(),
		"maxScoreSets": s.maxScoreSets,
	}
}
