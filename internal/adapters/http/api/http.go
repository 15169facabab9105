// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/domain/career"
	"github.com/lanebreak/tenpin/internal/domain/challenge"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/ranking"
	"github.com/lanebreak/tenpin/internal/engine"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the engine implementation.
type Dependencies interface {
	// Save registry surface.
	Slots(ctx context.Context) []repository.SlotSummary
	StartNewGame(ctx context.Context, slotID int, params engine.NewGameParams) (model.Profile, error)
	LoadGame(ctx context.Context, slotID int) (model.Profile, error)
	DeleteGame(ctx context.Context, slotID int) error

	// Query surface.
	Profile(ctx context.Context) (model.Profile, error)
	ActiveEffects(ctx context.Context) ([]model.ActiveEffect, error)
	ActiveEventEffects(ctx context.Context) ([]model.ActiveEffect, error)
	WeeklyChallenges(ctx context.Context) ([]model.WeeklyChallenge, error)
	PendingEvent(ctx context.Context) (*model.WeeklyEvent, error)
	RankingsSnapshot(ctx context.Context) (model.RankingsSnapshot, error)
	RecoveryActions(ctx context.Context) []model.RecoveryAction
	HasRemoveAds(ctx context.Context) bool

	// Command surface.
	ApplyRecoveryAction(ctx context.Context, actionID, effectID string) error
	ClaimChallengeReward(ctx context.Context, challengeID string) error
	ResolveEvent(ctx context.Context, choiceID string) error
	DismissEvent(ctx context.Context) error
	AdvanceWeek(ctx context.Context) (career.WeekReport, error)
	PlayGame(ctx context.Context) (engine.PlayResult, error)
}

// Server wires HTTP routes for the career API.
type Server struct {
	healthHandler    *HealthHandler
	savesHandler     *SavesHandler
	careerHandler    *CareerHandler
	effectsHandler   *EffectsHandler
	challengeHandler *ChallengesHandler
	eventHandler     *EventsHandler
	rankingsHandler  *RankingsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		savesHandler:     NewSavesHandler(deps),
		careerHandler:    NewCareerHandler(deps),
		effectsHandler:   NewEffectsHandler(deps),
		challengeHandler: NewChallengesHandler(deps),
		eventHandler:     NewEventsHandler(deps),
		rankingsHandler:  NewRankingsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/slots", MetricsMiddleware(s.savesHandler.HandleSlots, "slots"))
	mux.HandleFunc("/slots/", MetricsMiddleware(s.savesHandler.HandleSlot, "slot"))
	mux.HandleFunc("/profile", MetricsMiddleware(s.careerHandler.HandleProfile, "profile"))
	mux.HandleFunc("/career/advance", MetricsMiddleware(s.careerHandler.HandleAdvance, "advance"))
	mux.HandleFunc("/career/play", MetricsMiddleware(s.careerHandler.HandlePlay, "play"))
	mux.HandleFunc("/entitlements", MetricsMiddleware(s.careerHandler.HandleEntitlements, "entitlements"))
	mux.HandleFunc("/effects", MetricsMiddleware(s.effectsHandler.HandleList, "effects"))
	mux.HandleFunc("/effects/events", MetricsMiddleware(s.effectsHandler.HandleEventEffects, "event_effects"))
	mux.HandleFunc("/effects/recover", MetricsMiddleware(s.effectsHandler.HandleRecover, "recover"))
	mux.HandleFunc("/recovery-actions", MetricsMiddleware(s.effectsHandler.HandleActions, "recovery_actions"))
	mux.HandleFunc("/challenges", MetricsMiddleware(s.challengeHandler.HandleList, "challenges"))
	mux.HandleFunc("/challenges/claim", MetricsMiddleware(s.challengeHandler.HandleClaim, "claim"))
	mux.HandleFunc("/event", MetricsMiddleware(s.eventHandler.HandleGet, "event"))
	mux.HandleFunc("/event/resolve", MetricsMiddleware(s.eventHandler.HandleResolve, "resolve"))
	mux.HandleFunc("/event/dismiss", MetricsMiddleware(s.eventHandler.HandleDismiss, "dismiss"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleGet, "rankings"))
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

// writeDomainError translates engine sentinel errors into HTTP statuses so
// the UI can render disabled actions or inline messages.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, economy.ErrInsufficientResources):
		writeError(w, http.StatusConflict, "insufficient_resources", err)
	case errors.Is(err, effects.ErrUnknownAction),
		errors.Is(err, effects.ErrUnknownEffect),
		errors.Is(err, event.ErrUnknownChoice),
		errors.Is(err, challenge.ErrUnknownChallenge),
		errors.Is(err, ranking.ErrUnknownRival),
		errors.Is(err, repository.ErrEmptySlot):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, effects.ErrNotApplicable):
		writeError(w, http.StatusConflict, "not_applicable", err)
	case errors.Is(err, challenge.ErrNotComplete):
		writeError(w, http.StatusConflict, "not_complete", err)
	case errors.Is(err, challenge.ErrAlreadyClaimed):
		writeError(w, http.StatusConflict, "already_claimed", err)
	case errors.Is(err, event.ErrNoPendingEvent):
		writeError(w, http.StatusConflict, "no_pending_event", err)
	case errors.Is(err, engine.ErrNoActiveGame):
		writeError(w, http.StatusConflict, "no_active_game", err)
	case errors.Is(err, engine.ErrInvalidParams),
		errors.Is(err, repository.ErrInvalidSlot):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrCorruptSave):
		writeError(w, http.StatusInternalServerError, "corrupt_save", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrBadRequest
	}
	return nil
}
