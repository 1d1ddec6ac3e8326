package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookups return
// domain.ErrUserNotFound when no row matches; Create and Update map unique
// constraint conflicts to domain.ErrDuplicateUsername / domain.ErrDuplicateEmail.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
