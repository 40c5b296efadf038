package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/services"
)

const (
	sessionName  = "yoga_journal"
	sessionIDKey = "sid"
)

// SuggestionResponse for the inspiration endpoints.
type SuggestionResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// InspirationHandler handles suggestion generation requests. Results are
// scoped to a cookie session so two browsers never see each other's
// suggestions.
type InspirationHandler struct {
	inspirationService services.InspirationService
	store              sessions.Store
	logger             *zap.Logger
}

// NewInspirationHandler creates a new inspiration handler.
func NewInspirationHandler(
	inspirationService services.InspirationService,
	store sessions.Store,
	logger *zap.Logger,
) *InspirationHandler {
	return &InspirationHandler{
		inspirationService: inspirationService,
		store:              store,
		logger:             logger,
	}
}

// RegisterRoutes registers the inspiration handler's routes on the given mux.
func (h *InspirationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/inspiration/theme", h.suggest(services.KindTheme))
	mux.HandleFunc("GET /api/inspiration/theme", h.last(services.KindTheme))
	mux.HandleFunc("DELETE /api/inspiration/theme", h.clear(services.KindTheme))

	mux.HandleFunc("POST /api/inspiration/sequence", h.suggest(services.KindSequence))
	mux.HandleFunc("GET /api/inspiration/sequence", h.last(services.KindSequence))
	mux.HandleFunc("DELETE /api/inspiration/sequence", h.clear(services.KindSequence))

	mux.HandleFunc("GET /api/inspiration/history-preview", h.HistoryPreview)
}

// sessionID returns the stable identifier for the caller's session,
// minting one on first contact.
func (h *InspirationHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	// Get always returns a usable session; a decode error just means a new
	// cookie gets issued.
	session, _ := h.store.Get(r, sessionName)

	if id, ok := session.Values[sessionIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[sessionIDKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

func (h *InspirationHandler) suggest(kind services.SuggestionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := h.sessionID(w, r)
		if err != nil {
			h.logger.Error("Failed to establish session", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "session_error", "could not establish session"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		var text string
		switch kind {
		case services.KindTheme:
			text, err = h.inspirationService.SuggestTheme(r.Context(), sessionID)
		case services.KindSequence:
			text, err = h.inspirationService.SuggestSequence(r.Context(), sessionID)
		}
		if err != nil {
			h.logger.Error("Failed to generate suggestion",
				zap.String("kind", string(kind)),
				zap.Error(err))
			status, code := statusForError(err)
			if err := ErrorResponse(w, status, code, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		response := SuggestionResponse{Kind: string(kind), Text: text}
		if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
	}
}

func (h *InspirationHandler) last(kind services.SuggestionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := h.sessionID(w, r)
		if err != nil {
			h.logger.Error("Failed to establish session", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "session_error", "could not establish session"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		text, ok := h.inspirationService.LastResult(sessionID, kind)
		if !ok {
			if err := ErrorResponse(w, http.StatusNotFound, "no_suggestion", "no stored suggestion"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		response := SuggestionResponse{Kind: string(kind), Text: text}
		if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
	}
}

func (h *InspirationHandler) clear(kind services.SuggestionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := h.sessionID(w, r)
		if err != nil {
			h.logger.Error("Failed to establish session", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "session_error", "could not establish session"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		h.inspirationService.ClearResult(sessionID, kind)

		if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{"status": "cleared"}}); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
	}
}

// HistoryPreview handles GET /api/inspiration/history-preview
func (h *InspirationHandler) HistoryPreview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inspirationService.HistoryPreview(r.Context())
	if err != nil {
		h.logger.Error("Failed to load history preview", zap.Error(err))
		status, code := statusForError(err)
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
