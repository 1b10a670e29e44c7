package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubChecker struct {
	suspended bool
	err       error
	asked     []string
}

func (s *stubChecker) IsSuspended(_ context.Context, userID string) (bool, error) {
	s.asked = append(s.asked, userID)
	return s.suspended, s.err
}

func TestSuspensionGuard_AllowsActiveAccount(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	checker := &stubChecker{}
	called := false
	handler := SuspensionGuard(checker, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(checker.asked) != 1 || checker.asked[0] != "u1" {
		t.Fatalf("expected checker consulted for u1, got %v", checker.asked)
	}
}

func TestSuspensionGuard_RejectsSuspendedAccount(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	checker := &stubChecker{suspended: true}
	handler := SuspensionGuard(checker, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSuspensionGuard_FailsOpenOnCheckerError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	checker := &stubChecker{err: errors.New("redis down")}
	called := false
	handler := SuspensionGuard(checker, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("a checker failure must not block the request")
	}
}

func TestSuspensionGuard_SkipsWithoutIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	checker := &stubChecker{suspended: true}
	called := false
	handler := SuspensionGuard(checker, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("requests without identity pass through untouched")
	}
	if len(checker.asked) != 0 {
		t.Fatalf("checker must not be consulted without identity")
	}
}
