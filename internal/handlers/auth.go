package handlers

import (
	"errors"
	"net/http"

	"github.com/hyperionhq/hyperion/internal/auth"
	"github.com/hyperionhq/hyperion/internal/store"
	"github.com/hyperionhq/hyperion/internal/utils"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

type registerReq struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Password         string `json:"password"`
	PhoneCountryCode string `json:"phone_country_code"`
}

// -------------- TOKEN ------------------------

// Token handles POST /token. Credentials arrive form-encoded as username
// and password; a successful login returns a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		utils.JSONError(w, http.StatusBadRequest, "username and password required")
		return
	}

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.JSONError(w, http.StatusUnauthorized, "could not validate credentials")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, token)
}

// -------------- REGISTER ---------------------

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "email and password required")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "" {
		utils.JSONError(w, http.StatusBadRequest, "first_name, last_name and phone_number required")
		return
	}

	user, err := h.auth.Register(r.Context(), auth.RegisterInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		PhoneCountryCode: req.PhoneCountryCode,
		Password:         req.Password,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.JSONError(w, http.StatusConflict, "email already exists")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
