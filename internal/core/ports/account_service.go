package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// AccountService applies privileged account mutations and self-service
// profile operations. Role checks happen in the transport layer; only the
// password change re-authenticates here.
type AccountService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, id, role string) (*domain.User, error)
	// Suspend sets the account inactive. There is no reactivate
	// counterpart; the asymmetry is inherited from the platform.
	Suspend(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	// ChangePassword re-authenticates with currentPassword before any
	// write; a mismatch fails with ErrInvalidCredentials and leaves the
	// stored hash untouched.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
