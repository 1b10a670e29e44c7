package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebook/admin-api/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleStandard {
		t.Fatalf("new accounts must be standard, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new accounts must be active")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "b@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != created.ID {
		t.Fatalf("expected user_id claim %q, got %v", created.ID, claims["user_id"])
	}
	if claims["role"] != domain.RoleStandard {
		t.Fatalf("expected role %s, got %v", domain.RoleStandard, claims["role"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
