// Package model contains domain models passed between layers.
package model

import "github.com/courtside/deuce/internal/domain/rating"

// Team indexes used throughout the engine. Slots 0-1 form team 1
// (the perspective team), slots 2-3 form team 2.
const (
	Team1 = 0
	Team2 = 1
)

// Slot names for the fixed four-player layout.
const (
	SlotPlayer = iota
	SlotPartner
	SlotOpp1
	SlotOpp2
)

// NumPlayers is the fixed number of players in a doubles match.
const NumPlayers = 4

// PlayerRating is one player's input: display rating plus experience tier.
type PlayerRating struct {
	PTI  float64
	Tier rating.Tier
}

// MatchInput is the fixed 4-slot input to an adjustment strategy.
// Players[0] is the self player, Players[1] their partner,
// Players[2] and Players[3] the opponents.
type MatchInput struct {
	Players [NumPlayers]PlayerRating
}

// TeamAverages returns the simple average display rating per side.
func (m MatchInput) TeamAverages() (team1, team2 float64) {
	team1 = (m.Players[SlotPlayer].PTI + m.Players[SlotPartner].PTI) / 2
	team2 = (m.Players[SlotOpp1].PTI + m.Players[SlotOpp2].PTI) / 2
	return team1, team2
}

// SetResult is one parsed set: which team won it and the winning side's
// share of the games played in it.
type SetResult struct {
	Winner       int     // Team1 or Team2
	GameFraction float64 // in [0,1]
}

// PlayerSnapshot captures one player's full rating state at a point in time.
// PTI is always derived from Mu via the conversion layer, never stored
// independently of it.
type PlayerSnapshot struct {
	PTI   float64 `json:"pti"`
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// AdjustmentResult is the engine's output: the team spread, the
// representative adjustment magnitude, and per-player before/after
// snapshots in slot order.
type AdjustmentResult struct {
	Spread     float64
	Adjustment float64
	Before     [NumPlayers]PlayerSnapshot
	After      [NumPlayers]PlayerSnapshot
}
