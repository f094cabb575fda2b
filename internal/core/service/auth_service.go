package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
	"github.com/shopsmith/ecommerce-api/internal/core/token"
)

// AuthService implements registration and login against the user directory.
type AuthService struct {
	users ports.UserRepository
	codec *token.Codec
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, audit: audit, log: log}
}

// Register creates a regular user account and returns a freshly issued
// identity token. The role is never caller-controlled.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.codec.Issue(created.ID, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.recordAudit(created, domain.AuditUserRegistered)
	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return tkn, created, nil
}

// Login verifies credentials and returns a new identity token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.recordAudit(user, domain.AuditUserLoggedIn)

	return tkn, user, nil
}

func (s *AuthService) recordAudit(user *domain.User, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ActorID:    user.ID,
		ActorRole:  user.Role,
		Action:     action,
		EntityKind: "user",
		EntityID:   user.ID,
		Timestamp:  time.Now().UTC(),
	})
}
