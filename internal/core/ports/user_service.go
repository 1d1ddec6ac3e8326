package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// UpdateUserInput carries the mutable fields of a user. An empty Password
// leaves the stored hash untouched.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
