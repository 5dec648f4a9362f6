package ports

import (
	"context"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// UserStore defines persistence operations for administrative users.
// Lookups return nil and no error when the user does not exist.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, rec domain.UserRecord) (int64, error)
	Update(ctx context.Context, id int64, rec domain.UserRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
