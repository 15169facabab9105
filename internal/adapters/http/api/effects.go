package api

import (
	"net/http"
	"strings"
)

// EffectsHandler handles effect-ledger requests.
type EffectsHandler struct {
	deps Dependencies
}

// NewEffectsHandler creates a new effects handler.
func NewEffectsHandler(deps Dependencies) *EffectsHandler {
	return &EffectsHandler{deps: deps}
}

// HandleList handles GET /effects requests.
func (h *EffectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.ActiveEffects(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleEventEffects handles GET /effects/events requests, returning only
// event-granted buffs and penalties.
func (h *EffectsHandler) HandleEventEffects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.ActiveEventEffects(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleActions handles GET /recovery-actions requests.
func (h *EffectsHandler) HandleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.RecoveryActions(r.Context()))
}

// recoverRequest is the body of POST /effects/recover.
type recoverRequest struct {
	ActionID string `json:"action_id"`
	EffectID string `json:"effect_id"`
}

func (req recoverRequest) validate() error {
	if strings.TrimSpace(req.ActionID) == "" || strings.TrimSpace(req.EffectID) == "" {
		return ErrBadRequest
	}
	return nil
}

// HandleRecover handles POST /effects/recover requests.
func (h *EffectsHandler) HandleRecover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req recoverRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.deps.ApplyRecoveryAction(r.Context(), req.ActionID, req.EffectID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
