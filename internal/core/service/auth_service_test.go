package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
	"github.com/shopsmith/ecommerce-api/internal/core/token"
)

func newAuthService(users *stubUserRepo, audit *stubAudit) *AuthService {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewAuthService(users, codec, audit, zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	users := newStubUserRepo()
	audit := &stubAudit{}
	svc := newAuthService(users, audit)

	tkn, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected a token")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("registration must produce a regular user, got %s", user.Role)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatalf("password stored in the clear")
	}

	got := audit.actions()
	if len(got) != 1 || got[0] != domain.AuditUserRegistered {
		t.Fatalf("expected registration audit event, got %v", got)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubAudit{})

	input := ports.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "correct horse"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubAudit{})

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tkn, user, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tkn == "" || user.Username != "alice" {
		t.Fatalf("unexpected login result: token=%q user=%+v", tkn, user)
	}
}

// An unknown email and a wrong password must fail identically.
func TestAuthService_LoginBadCredentials(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubAudit{})

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "correct horse"},
		{"empty password", "alice@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(context.Background(), tt.email, tt.password); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

// A directory outage during login must surface as an infrastructure error,
// not as bad credentials.
func TestAuthService_LoginDirectoryDown(t *testing.T) {
	users := newStubUserRepo()
	users.failWith = errors.New("connection refused")
	svc := newAuthService(users, &stubAudit{})

	_, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
