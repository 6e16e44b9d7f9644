package api

import (
	"encoding/json"
	"net/http"

	"github.com/MikeSquared-Agency/Compass/internal/portfolio"
)

type AdminHandler struct {
	manager *portfolio.Manager
}

func NewAdminHandler(m *portfolio.Manager) *AdminHandler {
	return &AdminHandler{manager: m}
}

// Stats handles GET /api/v1/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
