package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// ProfileUpdate carries the self-service profile fields. Nil means the
// field is not supplied and keeps its stored value. The credential is
// deliberately not representable here.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for accounts.
// Role, activation and credential writes go through the store's atomic
// find-and-update primitive so concurrent admin actions cannot interleave.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAll returns every account with the credential hash excluded at
	// the projection level.
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindRecent returns the limit most recently created accounts
	// (name, email, created_at only).
	FindRecent(ctx context.Context, limit int) ([]domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}
