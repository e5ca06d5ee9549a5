package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/itemkit/internal/action"
	"github.com/osse101/itemkit/internal/logger"
)

// ActionRegistry is the registry surface the admin routes read and prune
type ActionRegistry interface {
	Len() int
	IDs() []string
	Lookup(id string) (action.RegisteredAction, bool)
	Unregister(id string) bool
}

// ActionSummary describes one registered click action
type ActionSummary struct {
	ID     string `json:"id"`
	Scoped bool   `json:"scoped"`
}

// ActionListResponse lists the registered click actions
type ActionListResponse struct {
	Count   int             `json:"count"`
	Actions []ActionSummary `json:"actions"`
}

// ActionHandlers serves the click action admin routes
type ActionHandlers struct {
	registry ActionRegistry
}

// NewActionHandlers creates the handlers
func NewActionHandlers(registry ActionRegistry) *ActionHandlers {
	return &ActionHandlers{registry: registry}
}

// HandleList returns every registered action, sorted by identifier
// @Summary List click actions
// @Tags actions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ActionListResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/actions [get]
func (h *ActionHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.IDs()
	sort.Strings(ids)

	actions := make([]ActionSummary, 0, len(ids))
	for _, id := range ids {
		registered, ok := h.registry.Lookup(id)
		if !ok {
			continue
		}
		actions = append(actions, ActionSummary{ID: id, Scoped: registered.Scoped()})
	}

	respondJSON(w, http.StatusOK, ActionListResponse{Count: len(actions), Actions: actions})
}

// @Summary Get a click action
// @Tags actions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Action identifier"
// @Success 200 {object} ActionSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/actions/{id} [get]
func (h *ActionHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	registered, ok := h.registry.Lookup(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgActionNotFound)
		return
	}
	respondJSON(w, http.StatusOK, ActionSummary{ID: id, Scoped: registered.Scoped()})
}

// HandleDelete unregisters an action; clicks on items carrying it become no-ops
// @Summary Unregister a click action
// @Tags actions
// @Security ApiKeyAuth
// @Param id path string true "Action identifier"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/actions/{id} [delete]
func (h *ActionHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.registry.Unregister(id) {
		respondError(w, http.StatusNotFound, ErrMsgActionNotFound)
		return
	}

	logger.FromContext(r.Context()).Info("Click action unregistered via admin API", "action_id", id)
	w.WriteHeader(http.StatusNoContent)
}
