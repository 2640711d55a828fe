package content

import (
	"encoding/json"
	"net/http"

	"github.com/quickqualified/exteriors-api/pkg/logging"
)

// Handler serves the static business profile.
type Handler struct {
	profile Profile
	logger  *logging.Logger
}

// NewHandler creates a content handler for the given profile.
func NewHandler(profile Profile, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{profile: profile, logger: logger}
}

// GetBusiness handles GET /api/business.
func (h *Handler) GetBusiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(h.profile); err != nil {
		h.logger.Error("failed to encode business profile", "error", err)
	}
}
