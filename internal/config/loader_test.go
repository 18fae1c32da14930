package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/courtside/deuce/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.Strategy, convey.ShouldEqual, "legacy")
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 4.0)
				convey.So(cfg.VolatilityAging, convey.ShouldEqual, 0.03)
				convey.So(cfg.MaxScoreSets, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DEUCE_ADDR", ":8080")
			_ = os.Setenv("DEUCE_STRATEGY", "probability")
			_ = os.Setenv("DEUCE_ELO_BASE_K", "6.5")
			_ = os.Setenv("DEUCE_VOLATILITY_AGING", "0.05")
			_ = os.Setenv("DEUCE_MAX_SCORE_SETS", "5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Strategy, convey.ShouldEqual, "probability")
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 6.5)
				convey.So(cfg.VolatilityAging, convey.ShouldEqual, 0.05)
				convey.So(cfg.MaxScoreSets, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
strategy: "probability"
elo_base_k: 5.0
max_score_sets: 3
tier_multipliers:
  New: 2.0
  1-10: 1.5
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Strategy, convey.ShouldEqual, "probability")
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 5.0)
				convey.So(cfg.MaxScoreSets, convey.ShouldEqual, 3)
				convey.So(cfg.TierMultipliers["New"], convey.ShouldEqual, 2.0)
				convey.So(cfg.TierMultipliers["1-10"], convey.ShouldEqual, 1.5)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
strategy: "probability"
elo_base_k: 5.0
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			_ = os.Setenv("DEUCE_ADDR", ":8080") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")             // Overridden by env
				convey.So(cfg.Strategy, convey.ShouldEqual, "probability")   // From file
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 5.0)             // From file
				convey.So(cfg.VolatilityAging, convey.ShouldEqual, 0.03)     // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("DEUCE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("DEUCE_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown strategy", func() {
			_ = os.Setenv("DEUCE_STRATEGY", "glicko")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "unknown strategy")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the strategy arrives upper-cased", func() {
			_ = os.Setenv("DEUCE_STRATEGY", "LEGACY")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should be normalized to lower case", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Strategy, convey.ShouldEqual, "legacy")
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
addr: ":9090"
max_score_sets: 7
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")         // From file
				convey.So(cfg.MaxScoreSets, convey.ShouldEqual, 7)       // From file
				convey.So(cfg.Strategy, convey.ShouldEqual, "legacy")    // From defaults
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 4.0)         // From defaults
				convey.So(cfg.VolatilityAging, convey.ShouldEqual, 0.03) // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("DEUCE_ELO_BASE_K", "invalid")
			_ = os.Setenv("DEUCE_MAX_SCORE_SETS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with special characters in addr", func() {
			_ = os.Setenv("DEUCE_ADDR", "localhost:8080")
			_ = os.Setenv("DEUCE_ADDR", "0.0.0.0:9090")
			_ = os.Setenv("DEUCE_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080") // Last one wins
			})
		})

		convey.Convey("When loading config with YAML file containing comments", func() {
			yamlContent := `
# This is a comment
addr: ":9090"  # Inline comment
strategy: "probability"
# Another comment
elo_base_k: 5.0
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Strategy, convey.ShouldEqual, "probability")
				convey.So(cfg.EloBaseK, convey.ShouldEqual, 5.0)
			})
		})

		convey.Convey("When loading config with YAML file containing empty values", func() {
			yamlContent := `
addr: ""
strategy: "legacy"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DEUCE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return validation error for empty addr", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"DEUCE_CONFIG",
		"DEUCE_ADDR",
		"DEUCE_STRATEGY",
		"DEUCE_ELO_BASE_K",
		"DEUCE_VOLATILITY_AGING",
		"DEUCE_MAX_SCORE_SETS",
		"DEUCE_LOG_LEVEL",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "deuce-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
