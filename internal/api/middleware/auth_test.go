package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type stubAuthService struct {
	user *domain.User
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, _ string) error { return nil }

func (s *stubAuthService) ConfirmPasswordReset(_ context.Context, _, _ string) error { return nil }

func (s *stubAuthService) ChangePassword(_ context.Context, _ *domain.User, _, _ string) error {
	return nil
}

func (s *stubAuthService) ResolveToken(_ context.Context, token string) (*domain.User, error) {
	if token == "good-token" && s.user != nil {
		return s.user, nil
	}
	return nil, domain.ErrInvalidToken
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, h(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := Authenticate(&stubAuthService{})

	_, err := invoke(t, mw, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	mw := Authenticate(&stubAuthService{})

	for _, header := range []string{"good-token", "Basic abc", "Bearer"} {
		_, err := invoke(t, mw, header)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %v", header, err)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw := Authenticate(&stubAuthService{user: &domain.User{ID: 1}})

	_, err := invoke(t, mw, "Bearer bad-token")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_ValidTokenInjectsUser(t *testing.T) {
	user := &domain.User{ID: 7, Username: "alice", IsActive: true}
	mw := Authenticate(&stubAuthService{user: user})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.User
	h := mw(func(c echo.Context) error {
		seen, _ = c.Get("user").(*domain.User)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if seen == nil || seen.ID != 7 {
		t.Fatalf("user not injected: %+v", seen)
	}
}

func withUser(user *domain.User, mw echo.MiddlewareFunc) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestActiveUser(t *testing.T) {
	if err := withUser(&domain.User{ID: 1, IsActive: true}, ActiveUser()); err != nil {
		t.Fatalf("active user must pass: %v", err)
	}

	err := withUser(&domain.User{ID: 1, IsActive: false}, ActiveUser())
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for disabled account, got %v", err)
	}

	err = withUser(nil, ActiveUser())
	he, ok = err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %v", err)
	}
}

func TestAdminOnly(t *testing.T) {
	if err := withUser(&domain.User{ID: 1, IsAdmin: true}, AdminOnly()); err != nil {
		t.Fatalf("admin must pass: %v", err)
	}

	err := withUser(&domain.User{ID: 1, IsAdmin: false}, AdminOnly())
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %v", err)
	}
}
