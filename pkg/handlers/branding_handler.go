package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const logoAsset = "logo.png"

// BrandingResponse for GET /api/branding. When the logo asset is missing
// the UI falls back to the text wordmark; a missing file is expected, not
// an error.
type BrandingResponse struct {
	Wordmark string `json:"wordmark"`
	LogoURL  string `json:"logo_url,omitempty"`
}

// BrandingHandler reports which branding assets are available.
type BrandingHandler struct {
	assetsDir string
	logger    *zap.Logger
}

// NewBrandingHandler creates a new branding handler.
func NewBrandingHandler(assetsDir string, logger *zap.Logger) *BrandingHandler {
	return &BrandingHandler{assetsDir: assetsDir, logger: logger}
}

// RegisterRoutes registers the branding handler's routes on the given mux.
func (h *BrandingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/branding", h.Branding)
}

// Branding handles GET /api/branding
func (h *BrandingHandler) Branding(w http.ResponseWriter, r *http.Request) {
	response := BrandingResponse{Wordmark: "The Yoga Journal"}

	if _, err := os.Stat(filepath.Join(h.assetsDir, logoAsset)); err == nil {
		response.LogoURL = "/" + logoAsset
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode branding response", zap.Error(err))
	}
}
