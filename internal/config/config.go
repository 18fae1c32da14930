// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Strategy selects the active adjustment strategy: legacy or
	// probability. Callers may still override per request.
	Strategy string `koanf:"strategy"`

	// EloBaseK is the base K constant for the probability strategy.
	EloBaseK float64 `koanf:"elo_base_k"`

	// TierMultipliers maps canonical tier labels to experience
	// multipliers for the probability strategy.
	TierMultipliers map[string]float64 `koanf:"tier_multipliers"`

	// VolatilityAging is the per-match sigma increment under the legacy
	// strategy.
	VolatilityAging float64 `koanf:"volatility_aging"`

	// MaxScoreSets caps the number of sets parsed from a score string.
	// Zero means no cap.
	MaxScoreSets int `koanf:"max_score_sets"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		Strategy: "legacy",
		EloBaseK: 4.0,
		TierMultipliers: map[string]float64{
			"New":   1.5,
			"1-10":  1.25,
			"10-30": 1.1,
			"30+":   1.0,
		},
		VolatilityAging: 0.03,
		MaxScoreSets:    0,
	}
}
