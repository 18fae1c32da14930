// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// AdjustmentsHandler handles adjustment computation requests.
type AdjustmentsHandler struct {
	deps Dependencies
}

// NewAdjustmentsHandler creates a new adjustments handler.
func NewAdjustmentsHandler(deps Dependencies) *AdjustmentsHandler {
	return &AdjustmentsHandler{deps: deps}
}

// HandlePostAdjustment handles POST /adjustments requests.
func (h *AdjustmentsHandler) HandlePostAdjustment(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_adjustment"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req adjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.Adjust(r.Context(), req.matchInput(), req.MatchScore, req.Strategy)
	if err != nil {
		// The engine itself never fails; the only rejection is an
		// unrecognized strategy name in the request.
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	writeJSON(w, http.StatusOK, newAdjustmentResponse(result))
}
