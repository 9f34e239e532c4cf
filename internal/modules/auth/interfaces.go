package auth

import (
	"context"

	"jamtrips/internal/domain"
)

// UserRepository defines the interface for account storage operations
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CountAdmins(ctx context.Context) (int64, error)
	CreateFirstAdmin(ctx context.Context, user *domain.User) error
}
