package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebook/admin-api/internal/api/metrics"
	"github.com/tastebook/admin-api/internal/core/domain"
	"github.com/tastebook/admin-api/internal/core/ports"
)

// SuspensionMarker records account ids whose tokens must stop working
// before expiry (suspended or deleted accounts).
type SuspensionMarker interface {
	Mark(ctx context.Context, userID string) error
}

type accountService struct {
	users       ports.UserRepository
	suspensions SuspensionMarker
	log         zerolog.Logger
}

// NewAccountService returns an AccountService over the user repository.
// The marker is consulted on suspend/delete; marker failures are logged
// but never fail the mutation, since the store is authoritative.
func NewAccountService(users ports.UserRepository, suspensions SuspensionMarker, log zerolog.Logger) ports.AccountService {
	return &accountService{users: users, suspensions: suspensions, log: log}
}

func (s *accountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *accountService) SetRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	metrics.AccountActionsTotal.WithLabelValues("set_role").Inc()
	s.log.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return user, nil
}

// Suspend deactivates an account. There is no reactivate operation: the
// asymmetry is inherited from the platform and deliberately not papered
// over here.
func (s *accountService) Suspend(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.SetActive(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.suspensions.Mark(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to mark suspension")
	}

	metrics.AccountActionsTotal.WithLabelValues("suspend").Inc()
	s.log.Info().Str("user_id", id).Msg("user suspended")
	return user, nil
}

func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.suspensions.Mark(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to mark deleted account")
	}

	metrics.AccountActionsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *accountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// ChangePassword re-authenticates the caller against the stored hash
// before any write. On mismatch it fails with ErrInvalidCredentials and
// the stored credential is untouched.
func (s *accountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	metrics.AccountActionsTotal.WithLabelValues("change_password").Inc()
	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
