package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hyperionhq/hyperion/internal/models"
	"github.com/hyperionhq/hyperion/internal/store"
	"github.com/hyperionhq/hyperion/internal/utils"
)

type UserHandler struct {
	store store.UserStore
}

func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{store: userStore}
}

type usersResp struct {
	Users []models.User `json:"users"`
}

// ---------------------- LIST ----------------------

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, usersResp{Users: users})
}

// ---------------------- GET ONE ----------------------

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSONError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
