package handlers

import (
	"net/http"

	"github.com/hyperionhq/hyperion/internal/utils"
)

// Health handles GET /healthz with a DB connectivity check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		utils.JSONError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
