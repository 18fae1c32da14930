// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/courtside/deuce/internal/domain/model"
	"github.com/courtside/deuce/internal/domain/rating"
	"github.com/courtside/deuce/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Adjust computes rating adjustments for one completed match.
	// strategy selects a strategy for this call; empty means the
	// configured default.
	Adjust(ctx context.Context, match model.MatchInput, score, strategy string) (model.AdjustmentResult, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	adjustmentsHandler *AdjustmentsHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		adjustmentsHandler: NewAdjustmentsHandler(deps),
		dashboardHandler:   newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/adjustments", MetricsMiddleware(s.adjustmentsHandler.HandlePostAdjustment, "adjustments"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
}

// adjustmentRequest mirrors the call contract for POST /adjustments.
type adjustmentRequest struct {
	PlayerPTI  float64 `json:"player_pti"`
	PartnerPTI float64 `json:"partner_pti"`
	Opp1PTI    float64 `json:"opp1_pti"`
	Opp2PTI    float64 `json:"opp2_pti"`
	PlayerExp  string  `json:"player_exp"`
	PartnerExp string  `json:"partner_exp"`
	Opp1Exp    string  `json:"opp1_exp"`
	Opp2Exp    string  `json:"opp2_exp"`
	MatchScore string  `json:"match_score"`

	// Strategy optionally overrides the configured strategy for this
	// call: "legacy" or "probability".
	Strategy string `json:"strategy,omitempty"`
}

func (a adjustmentRequest) validate() error {
	switch {
	case strings.TrimSpace(a.PlayerExp) == "":
		return errors.New("missing player_exp")
	case strings.TrimSpace(a.PartnerExp) == "":
		return errors.New("missing partner_exp")
	case strings.TrimSpace(a.Opp1Exp) == "":
		return errors.New("missing opp1_exp")
	case strings.TrimSpace(a.Opp2Exp) == "":
		return errors.New("missing opp2_exp")
	case strings.TrimSpace(a.MatchScore) == "":
		return errors.New("missing match_score")
	}
	return nil
}

// matchInput converts the request to the engine's fixed-slot input.
// Unrecognized experience labels default to the most established tier
// rather than failing; they are only counted.
func (a adjustmentRequest) matchInput() model.MatchInput {
	ptis := [model.NumPlayers]float64{a.PlayerPTI, a.PartnerPTI, a.Opp1PTI, a.Opp2PTI}
	exps := [model.NumPlayers]string{a.PlayerExp, a.PartnerExp, a.Opp1Exp, a.Opp2Exp}

	var match model.MatchInput
	for i := range match.Players {
		if !rating.KnownLabel(exps[i]) {
			metrics.RecordUnknownTierLabel()
		}
		match.Players[i] = model.PlayerRating{
			PTI:  ptis[i],
			Tier: rating.ParseTier(exps[i]),
		}
	}
	return match
}

// snapshots keys the four slots by role for serialization.
type snapshots struct {
	Player  model.PlayerSnapshot `json:"player"`
	Partner model.PlayerSnapshot `json:"partner"`
	Opp1    model.PlayerSnapshot `json:"opp1"`
	Opp2    model.PlayerSnapshot `json:"opp2"`
}

func newSnapshots(s [model.NumPlayers]model.PlayerSnapshot) snapshots {
	return snapshots{
		Player:  s[model.SlotPlayer],
		Partner: s[model.SlotPartner],
		Opp1:    s[model.SlotOpp1],
		Opp2:    s[model.SlotOpp2],
	}
}

// adjustmentResponse mirrors the output record of the engine.
type adjustmentResponse struct {
	Spread     float64   `json:"spread"`
	Adjustment float64   `json:"adjustment"`
	Before     snapshots `json:"before"`
	After      snapshots `json:"after"`
}

func newAdjustmentResponse(r model.AdjustmentResult) adjustmentResponse {
	return adjustmentResponse{
		Spread:     r.Spread,
		Adjustment: r.Adjustment,
		Before:     newSnapshots(r.Before),
		After:      newSnapshots(r.After),
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
