package ports

import (
	"context"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
// An empty Role defaults to domain.RoleUser.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// usernames and wrong passwords fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
