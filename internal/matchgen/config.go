// Package matchgen generates randomized match submissions and drives
// them against a running Deuce service, verifying response invariants.
package matchgen

import "time"

// Config holds configuration for the match generation run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumMatches int           // Number of matches to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Match is one generated match submission, mirroring POST /adjustments.
type Match struct {
	RequestID  string  `json:"-"`
	PlayerPTI  float64 `json:"player_pti"`
	PartnerPTI float64 `json:"partner_pti"`
	Opp1PTI    float64 `json:"opp1_pti"`
	Opp2PTI    float64 `json:"opp2_pti"`
	PlayerExp  string  `json:"player_exp"`
	PartnerExp string  `json:"partner_exp"`
	Opp1Exp    string  `json:"opp1_exp"`
	Opp2Exp    string  `json:"opp2_exp"`
	MatchScore string  `json:"match_score"`
	Strategy   string  `json:"strategy,omitempty"`

	// AllSegmentsInvalid marks matches whose score should trigger the
	// engine's neutral fallback.
	AllSegmentsInvalid bool `json:"-"`
}

// Snapshot mirrors one player's rating state in the response.
type Snapshot struct {
	PTI   float64 `json:"pti"`
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// Snapshots mirrors the role-keyed before/after blocks.
type Snapshots struct {
	Player  Snapshot `json:"player"`
	Partner Snapshot `json:"partner"`
	Opp1    Snapshot `json:"opp1"`
	Opp2    Snapshot `json:"opp2"`
}

// AdjustmentResponse mirrors the service's response record.
type AdjustmentResponse struct {
	Spread     float64   `json:"spread"`
	Adjustment float64   `json:"adjustment"`
	Before     Snapshots `json:"before"`
	After      Snapshots `json:"after"`
}

// Stats holds run statistics.
type Stats struct {
	MatchesGenerated   int
	MatchesSubmitted   int
	MatchesSuccessful  int
	MatchesFailed      int
	VerificationErrors int
	FallbacksObserved  int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
