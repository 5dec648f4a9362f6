package ports

import (
	"context"

	"github.com/drakeshop/inventory-api/internal/core/domain"
)

// UserService defines account management and login.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, username, password string) (int64, error)
	ReplaceUser(ctx context.Context, id int64, username, password string) error
	RemoveUser(ctx context.Context, id int64) error
	// Login returns a signed token on success and ErrInvalidCredentials
	// otherwise, without revealing whether the username exists.
	Login(ctx context.Context, username, password string) (string, error)
}
