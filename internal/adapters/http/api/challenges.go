package api

import (
	"net/http"
	"strings"
)

// ChallengesHandler handles weekly challenge requests.
type ChallengesHandler struct {
	deps Dependencies
}

// NewChallengesHandler creates a new challenges handler.
func NewChallengesHandler(deps Dependencies) *ChallengesHandler {
	return &ChallengesHandler{deps: deps}
}

// HandleList handles GET /challenges requests.
func (h *ChallengesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.WeeklyChallenges(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// claimRequest is the body of POST /challenges/claim.
type claimRequest struct {
	ChallengeID string `json:"challenge_id"`
}

// HandleClaim handles POST /challenges/claim requests.
func (h *ChallengesHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req claimRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.ChallengeID) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.ClaimChallengeReward(r.Context(), req.ChallengeID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
