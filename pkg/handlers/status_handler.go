package handlers

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/config"
)

// StatusResponse reports whether the journal database is reachable. The UI
// shows the connection banner from this, so the endpoint always answers
// 200, connected or not.
type StatusResponse struct {
	Status      string `json:"status"`
	Connected   bool   `json:"connected"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	GoVersion   string `json:"go_version"`
	Environment string `json:"environment"`
}

// StatusHandler handles service status requests.
type StatusHandler struct {
	cfg       *config.Config
	connected func() bool
	logger    *zap.Logger
}

// NewStatusHandler creates a new StatusHandler. The connected probe is
// called per request so a database that comes back mid-flight is reported
// without a restart.
func NewStatusHandler(cfg *config.Config, connected func() bool, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{cfg: cfg, connected: connected, logger: logger}
}

// RegisterRoutes registers the status handler's routes on the given mux.
func (h *StatusHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/status", h.Status)
	mux.HandleFunc("GET /health", h.Health)
}

// Health handles GET /health requests.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Status handles GET /api/status requests.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	connected := h.connected()

	status := "ok"
	if !connected {
		status = "degraded"
	}

	response := StatusResponse{
		Status:      status,
		Connected:   connected,
		Version:     h.cfg.Version,
		Service:     "yoga-journal",
		GoVersion:   runtime.Version(),
		Environment: h.cfg.Env,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode status response", zap.Error(err))
	}
}
