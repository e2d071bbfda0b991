package store

import (
	"context"

	"github.com/hyperionhq/hyperion/internal/models"
)

// UserStore defines persistence operations for users. The store owns user
// records exclusively; nothing mutates a record after creation.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
