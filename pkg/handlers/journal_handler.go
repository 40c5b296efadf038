package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/services"
)

// LogClassRequest for POST /api/classes
type LogClassRequest struct {
	Date          string                `json:"date"` // YYYY-MM-DD
	Time          string                `json:"time,omitempty"`
	LocationID    int64                 `json:"location_id"`
	ClassTypeID   int64                 `json:"class_type_id"`
	Theme         string                `json:"theme,omitempty"`
	Intention     string                `json:"intention,omitempty"`
	PeakPose      string                `json:"peak_pose,omitempty"`
	SequenceNotes *models.SequenceNotes `json:"sequence_notes,omitempty"`
	EnergyLevel   string                `json:"energy_level,omitempty"`
	StudentCount  int                   `json:"student_count"`
	VibeRating    int                   `json:"vibe_rating"`
	PersonalNotes string                `json:"personal_notes,omitempty"`
}

// JournalHandler handles class logging HTTP requests.
type JournalHandler struct {
	journalService services.JournalService
	logger         *zap.Logger
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(journalService services.JournalService, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{journalService: journalService, logger: logger}
}

// RegisterRoutes registers the journal handler's routes on the given mux.
func (h *JournalHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/classes", h.LogClass)
}

// LogClass handles POST /api/classes
func (h *JournalHandler) LogClass(w http.ResponseWriter, r *http.Request) {
	var req LogClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "date must be YYYY-MM-DD"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	input := &services.LogClassInput{
		Date:          date,
		Time:          req.Time,
		LocationID:    req.LocationID,
		ClassTypeID:   req.ClassTypeID,
		Theme:         req.Theme,
		Intention:     req.Intention,
		PeakPose:      req.PeakPose,
		SequenceNotes: req.SequenceNotes,
		EnergyLevel:   req.EnergyLevel,
		StudentCount:  req.StudentCount,
		VibeRating:    req.VibeRating,
		PersonalNotes: req.PersonalNotes,
	}

	record, err := h.journalService.LogClass(r.Context(), input)
	if err != nil {
		h.logger.Error("Failed to log class",
			zap.String("date", req.Date),
			zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: record}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
