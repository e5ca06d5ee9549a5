package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/itemkit/internal/item"
)

// TemplateSource provides the currently loaded item templates
type TemplateSource interface {
	Templates() *item.Config
}

// TemplateListResponse lists the loaded template keys
type TemplateListResponse struct {
	Version string   `json:"version"`
	Keys    []string `json:"keys"`
}

// @Summary List item templates
// @Description Returns the keys of the loaded item templates
// @Tags templates
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TemplateListResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/templates [get]
func HandleListTemplates(source TemplateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := source.Templates()
		if cfg == nil {
			respondError(w, http.StatusNotFound, ErrMsgNoTemplates)
			return
		}
		respondJSON(w, http.StatusOK, TemplateListResponse{Version: cfg.Version, Keys: cfg.Keys()})
	}
}

// @Summary Get an item template
// @Tags templates
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Template key"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/templates/{key} [get]
func HandleGetTemplate(source TemplateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := source.Templates()
		if cfg == nil {
			respondError(w, http.StatusNotFound, ErrMsgNoTemplates)
			return
		}

		def, err := cfg.Find(chi.URLParam(r, "key"))
		if errors.Is(err, item.ErrTemplateNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgTemplateNotFound)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: def})
	}
}
