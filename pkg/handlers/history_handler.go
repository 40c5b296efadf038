package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
	"github.com/alou/yoga-journal/pkg/services"
)

// HistoryResponse for GET /api/history
type HistoryResponse struct {
	Classes []*models.HistoryEntry `json:"classes"`
	Total   int                    `json:"total"`
	Days    int                    `json:"days"`
}

// HistoryHandler handles filtered history browsing requests.
type HistoryHandler struct {
	historyService services.HistoryService
	logger         *zap.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyService services.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, logger: logger}
}

// RegisterRoutes registers the history handler's routes on the given mux.
func (h *HistoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/history", h.Browse)
}

// Browse handles GET /api/history with optional days, location, class_type
// and q query parameters.
func (h *HistoryHandler) Browse(w http.ResponseWriter, r *http.Request) {
	days := services.DefaultHistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "days must be an integer"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		days = parsed
	}

	filter := repositories.HistoryFilter{
		Days:         days,
		LocationName: r.URL.Query().Get("location"),
		ClassType:    r.URL.Query().Get("class_type"),
		Search:       r.URL.Query().Get("q"),
	}

	classes, err := h.historyService.Browse(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to browse history",
			zap.Int("days", filter.Days),
			zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := HistoryResponse{Classes: classes, Total: len(classes), Days: days}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
