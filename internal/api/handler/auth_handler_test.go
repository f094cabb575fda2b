package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopsmith/ecommerce-api/internal/api/middleware"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
	"github.com/shopsmith/ecommerce-api/internal/core/token"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandler_RegisterSetsCookie(t *testing.T) {
	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"correct horse"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("cookie lifetime %d does not match token TTL", cookie.MaxAge)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password field: %s", rec.Body.String())
	}
}

func TestAuthHandler_RegisterRejectsBadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"al","email":"alice@example.com","password":"correct horse"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"correct horse"}`},
		{"short password", `{"username":"alice","email":"alice@example.com","password":"short"}`},
		{"missing fields", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext(t, http.MethodPost, "/auth/register", tt.body)
			var he *echo.HTTPError
			if err := h.Register(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_LoginPassesServiceErrorThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong password"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to pass through, got %v", err)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			t.Fatalf("cookie must not be set on failed login")
		}
	}
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected expired empty cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	alice := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue(alice.ID, alice.Role)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodGet, "/auth/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: signed})

	// Run through the session middleware so the identity is attached the
	// same way it is in the real router.
	wrapped := middleware.RequireSession(codec, singleUserDirectory{alice})(h.Me)
	if err := wrapped(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alice"`) {
		t.Fatalf("expected user payload, got %s", rec.Body.String())
	}
}

func TestAuthHandler_MeWithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	c, _ := newAuthContext(t, http.MethodGet, "/auth/me", "")
	var he *echo.HTTPError
	if err := h.Me(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

type singleUserDirectory struct {
	user *domain.User
}

func (d singleUserDirectory) FindByID(_ context.Context, id string) (*domain.User, error) {
	if d.user != nil && d.user.ID == id {
		return d.user, nil
	}
	return nil, domain.ErrUserNotFound
}
