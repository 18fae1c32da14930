package rating

import "strings"

// Tier is a coarse experience bucket describing how many matches a player
// has played. It seeds volatility and selects K-factor scaling.
type Tier int

// Experience tiers, least to most established.
const (
	TierNew Tier = iota
	TierLow      // 1-10 matches
	TierMid      // 10-30 matches
	TierHigh     // 30+ matches
)

// Default volatility seeds per tier.
const (
	volatilityNew  = 7.0
	volatilityLow  = 5.0
	volatilityMid  = 4.0
	volatilityHigh = 3.2
)

// K-factor buckets keyed by volatility.
const (
	kFactorNew  = 6.0
	kFactorLow  = 5.0
	kFactorMid  = 4.78
	kFactorHigh = 4.6
)

// Elo experience multipliers per tier: newer players swing harder.
const (
	multiplierNew  = 1.5
	multiplierLow  = 1.25
	multiplierMid  = 1.1
	multiplierHigh = 1.0
)

// ParseTier normalizes an experience label to a Tier. Labels are matched
// case-insensitively and a trailing "matches" qualifier is ignored, so
// "30+" and "30+ Matches" are the same tier. Unknown labels default to
// TierHigh rather than failing; the caller always gets a usable tier.
func ParseTier(label string) Tier {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimSuffix(s, "matches")
	s = strings.TrimSpace(s)
	switch s {
	case "new":
		return TierNew
	case "1-10":
		return TierLow
	case "10-30":
		return TierMid
	case "30+":
		return TierHigh
	default:
		return TierHigh
	}
}

// KnownLabel reports whether a label normalizes to a recognized tier
// rather than falling through to the TierHigh default. Used at the API
// edge to count unknown labels without making ParseTier fail.
func KnownLabel(label string) bool {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimSuffix(s, "matches")
	s = strings.TrimSpace(s)
	switch s {
	case "new", "1-10", "10-30", "30+":
		return true
	}
	return false
}

// String returns the canonical label for the tier.
func (t Tier) String() string {
	switch t {
	case TierNew:
		return "New"
	case TierLow:
		return "1-10"
	case TierMid:
		return "10-30"
	default:
		return "30+"
	}
}

// VolatilitySeed returns the default sigma for a player of this tier.
func (t Tier) VolatilitySeed() float64 {
	switch t {
	case TierNew:
		return volatilityNew
	case TierLow:
		return volatilityLow
	case TierMid:
		return volatilityMid
	default:
		return volatilityHigh
	}
}

// EloMultiplier returns the tier's K scaling for the probability strategy.
func (t Tier) EloMultiplier() float64 {
	switch t {
	case TierNew:
		return multiplierNew
	case TierLow:
		return multiplierLow
	case TierMid:
		return multiplierMid
	default:
		return multiplierHigh
	}
}

// KFactorForVolatility picks the heuristic K-factor from a player's
// current volatility bucket.
func KFactorForVolatility(vol float64) float64 {
	switch {
	case vol >= volatilityNew:
		return kFactorNew
	case vol >= volatilityLow:
		return kFactorLow
	case vol >= volatilityMid:
		return kFactorMid
	default:
		return kFactorHigh
	}
}
