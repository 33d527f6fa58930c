// internal/application/auth_service.go
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
	"github.com/mahabubulhasibshawon/marketplace-admin/pkg/auth"
)

const minPasswordLength = 8

type AuthService struct {
	repo   ports.AdminRepository
	tokens *auth.TokenManager
	log    *zap.Logger
}

func NewAuthService(repo ports.AdminRepository, tokens *auth.TokenManager, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) CreateAdmin(ctx context.Context, email, name, password string, role domain.Role) (*domain.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	existing, err := s.repo.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAdminExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hashed),
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	s.log.Info("admin created", zap.String("admin_id", admin.ID), zap.String("role", string(role)))
	return admin, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	admin, err := s.repo.FindAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if admin.Status != domain.StatusActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateToken(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, admin.ID, now); err != nil {
		s.log.Warn("failed to record last login", zap.String("admin_id", admin.ID), zap.Error(err))
	} else {
		admin.LastLoginAt = &now
	}
	return token, admin, nil
}

// Authenticate resolves a bearer token into the session it belongs to.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	return s.tokens.ValidateToken(ctx, token)
}

func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.tokens.Revoke(ctx, claims)
}

func (s *AuthService) Me(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.repo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokens.TTL() }
