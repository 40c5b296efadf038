package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/services"
)

// TrendResponse for GET /api/dashboard/trend
type TrendResponse struct {
	Points  []*models.StudentTrendPoint `json:"points"`
	Summary *services.TrendSummary      `json:"summary,omitempty"`
}

// DashboardHandler serves the aggregate views behind the analytics charts.
type DashboardHandler struct {
	dashboardService services.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// RegisterRoutes registers the dashboard handler's routes on the given mux.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard/overview", h.Overview)
	mux.HandleFunc("GET /api/dashboard/locations", h.Locations)
	mux.HandleFunc("GET /api/dashboard/class-types", h.ClassTypes)
	mux.HandleFunc("GET /api/dashboard/themes", h.Themes)
	mux.HandleFunc("GET /api/dashboard/trend", h.Trend)
}

// Overview handles GET /api/dashboard/overview
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Overall(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load overall stats", err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Locations handles GET /api/dashboard/locations
func (h *DashboardHandler) Locations(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ByLocation(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load location stats", err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ClassTypes handles GET /api/dashboard/class-types
func (h *DashboardHandler) ClassTypes(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ByClassType(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load class type stats", err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Themes handles GET /api/dashboard/themes
func (h *DashboardHandler) Themes(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ByTheme(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load theme stats", err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Trend handles GET /api/dashboard/trend
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	points, summary, err := h.dashboardService.StudentTrend(r.Context())
	if err != nil {
		h.writeError(w, "Failed to load student trend", err)
		return
	}

	response := TrendResponse{Points: points, Summary: summary}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	status, code := statusForError(err)
	if err := ErrorResponse(w, status, code, err.Error()); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
