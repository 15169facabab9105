package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lanebreak/tenpin/internal/engine"
)

// SavesHandler handles save-slot requests.
type SavesHandler struct {
	deps Dependencies
}

// NewSavesHandler creates a new saves handler.
func NewSavesHandler(deps Dependencies) *SavesHandler {
	return &SavesHandler{deps: deps}
}

// HandleSlots handles GET /slots requests.
func (h *SavesHandler) HandleSlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Slots(r.Context()))
}

// HandleSlot routes /slots/{id}[/new|/load] by method and suffix:
//
//	POST   /slots/{id}/new   start a new career in the slot
//	POST   /slots/{id}/load  make the slot the active career
//	DELETE /slots/{id}       vacate the slot
func (h *SavesHandler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/slots/")
	idPart, action, _ := strings.Cut(rest, "/")
	slotID, err := strconv.Atoi(idPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodPost && action == "new":
		var params engine.NewGameParams
		if err := decodeBody(r, &params); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		profile, err := h.deps.StartNewGame(r.Context(), slotID, params)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, profile)

	case r.Method == http.MethodPost && action == "load":
		profile, err := h.deps.LoadGame(r.Context(), slotID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case r.Method == http.MethodDelete && action == "":
		if err := h.deps.DeleteGame(r.Context(), slotID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}
