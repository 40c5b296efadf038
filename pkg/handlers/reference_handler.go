package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/refcache"
)

// ReferenceListResponse for the reference lookup endpoints.
type ReferenceListResponse struct {
	Locations  []*models.Location  `json:"locations,omitempty"`
	ClassTypes []*models.ClassType `json:"class_types,omitempty"`
	Themes     []*models.Theme     `json:"themes,omitempty"`
	Total      int                 `json:"total"`
}

// ReferenceHandler serves the cached reference catalogs that populate the
// class log form selectors.
type ReferenceHandler struct {
	refCache *refcache.Cache
	logger   *zap.Logger
}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler(refCache *refcache.Cache, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{refCache: refCache, logger: logger}
}

// RegisterRoutes registers the reference handler's routes on the given mux.
func (h *ReferenceHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reference/locations", h.Locations)
	mux.HandleFunc("GET /api/reference/class-types", h.ClassTypes)
	mux.HandleFunc("GET /api/reference/themes", h.Themes)
}

// Locations handles GET /api/reference/locations
func (h *ReferenceHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.refCache.Locations(r.Context())
	if err != nil {
		h.logger.Error("Failed to load locations", zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ReferenceListResponse{Locations: locations, Total: len(locations)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ClassTypes handles GET /api/reference/class-types
func (h *ReferenceHandler) ClassTypes(w http.ResponseWriter, r *http.Request) {
	classTypes, err := h.refCache.ClassTypes(r.Context())
	if err != nil {
		h.logger.Error("Failed to load class types", zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ReferenceListResponse{ClassTypes: classTypes, Total: len(classTypes)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Themes handles GET /api/reference/themes
func (h *ReferenceHandler) Themes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.refCache.Themes(r.Context())
	if err != nil {
		h.logger.Error("Failed to load themes", zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ReferenceListResponse{Themes: themes, Total: len(themes)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
