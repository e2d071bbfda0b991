package handlers

import (
	"net/http"

	"github.com/hyperionhq/hyperion/internal/utils"
)

type MathHandler struct {
	queue TaskQueue
}

func NewMathHandler(queue TaskQueue) *MathHandler {
	return &MathHandler{queue: queue}
}

// Math handles GET /math: it offloads an addition to the background worker
// and answers with the task handle.
func (h *MathHandler) Math(w http.ResponseWriter, r *http.Request) {
	taskID, err := h.queue.SubmitAdd(r.Context(), 4, 4)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to enqueue task")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"math": taskID})
}
