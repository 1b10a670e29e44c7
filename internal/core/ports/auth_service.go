package ports

import (
	"context"

	"github.com/tastebook/admin-api/internal/core/domain"
)

// AuthService is the in-process binding of the authentication gate.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
