package api

import (
	"net/http"
)

// CareerHandler handles profile and career-progression requests.
type CareerHandler struct {
	deps Dependencies
}

// NewCareerHandler creates a new career handler.
func NewCareerHandler(deps Dependencies) *CareerHandler {
	return &CareerHandler{deps: deps}
}

// HandleProfile handles GET /profile requests.
func (h *CareerHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	profile, err := h.deps.Profile(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleAdvance handles POST /career/advance requests, running the
// end-of-week settlement.
func (h *CareerHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.AdvanceWeek(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandlePlay handles POST /career/play requests.
func (h *CareerHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	result, err := h.deps.PlayGame(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type entitlementsResponse struct {
	RemoveAds bool `json:"remove_ads"`
}

// HandleEntitlements handles GET /entitlements requests.
func (h *CareerHandler) HandleEntitlements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, entitlementsResponse{RemoveAds: h.deps.HasRemoveAds(r.Context())})
}
