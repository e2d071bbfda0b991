package handlers

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/hyperionhq/hyperion/internal/auth"
	"github.com/hyperionhq/hyperion/internal/store"
)

// TaskQueue submits background work and returns an opaque task handle.
type TaskQueue interface {
	SubmitAdd(ctx context.Context, x, y int) (string, error)
}

type Handler struct {
	DB    *sqlx.DB
	Auth  *AuthHandler
	Users *UserHandler
	Math  *MathHandler
}

func NewHandler(db *sqlx.DB, authService *auth.Service, userStore store.UserStore, queue TaskQueue) *Handler {
	return &Handler{
		DB:    db,
		Auth:  NewAuthHandler(authService),
		Users: NewUserHandler(userStore),
		Math:  NewMathHandler(queue),
	}
}
