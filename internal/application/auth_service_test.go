// internal/application/auth_service_test.go
package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
	"github.com/mahabubulhasibshawon/marketplace-admin/pkg/auth"
)

type memoryRevocations struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[string]bool{}
	}
	m.ids[tokenID] = true
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[tokenID], nil
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("unit-test-secret-123456", time.Hour, &memoryRevocations{})
}

func TestAuthService_CreateAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockAdminRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestTokens(), nil)

	tests := []struct {
		name      string
		email     string
		password  string
		role      domain.Role
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Successful creation",
			email:    " Ops@Example.com ",
			password: "securepass",
			role:     domain.RoleAdmin,
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(nil, nil)
				mockRepo.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, a *domain.Admin) error {
					if a.Email != "ops@example.com" || a.Status != domain.StatusActive || a.ID == "" {
						t.Errorf("CreateAdmin() got admin %+v", a)
					}
					if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("securepass")) != nil {
						t.Error("password was not hashed with bcrypt")
					}
					return nil
				})
			},
		},
		{
			name:      "Invalid email",
			email:     "not-an-email",
			password:  "securepass",
			role:      domain.RoleAdmin,
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Short password",
			email:     "ops@example.com",
			password:  "short",
			role:      domain.RoleAdmin,
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Unknown role",
			email:     "ops@example.com",
			password:  "securepass",
			role:      domain.Role("owner"),
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:     "Duplicate email",
			email:    "ops@example.com",
			password: "securepass",
			role:     domain.RoleSuperAdmin,
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(&domain.Admin{ID: "a"}, nil)
			},
			wantErr: domain.ErrAdminExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			admin, err := svc.CreateAdmin(context.Background(), tt.email, "Ops", tt.password, tt.role)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateAdmin() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateAdmin() unexpected error: %v", err)
			}
			if admin.Role != tt.role {
				t.Errorf("CreateAdmin() role = %v, want %v", admin.Role, tt.role)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockAdminRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestTokens(), nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.MinCost)
	active := &domain.Admin{ID: "admin-1", Email: "ops@example.com", PasswordHash: string(hashed), Role: domain.RoleAdmin, Status: domain.StatusActive}
	suspended := &domain.Admin{ID: "admin-2", Email: "old@example.com", PasswordHash: string(hashed), Role: domain.RoleAdmin, Status: domain.StatusSuspended}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		wantErr   string
	}{
		{
			name:     "Successful login",
			email:    "ops@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(active, nil)
				mockRepo.EXPECT().TouchLastLogin(gomock.Any(), "admin-1", gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Last login write fails",
			email:    "ops@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(active, nil)
				mockRepo.EXPECT().TouchLastLogin(gomock.Any(), "admin-1", gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name:     "Invalid credentials",
			email:    "ops@example.com",
			password: "wrongpass",
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(active, nil)
			},
			wantErr: "invalid credentials",
		},
		{
			name:     "Admin not found",
			email:    "ghost@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			wantErr: "invalid credentials",
		},
		{
			name:     "Suspended admin",
			email:    "old@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindAdminByEmail(gomock.Any(), "old@example.com").Return(suspended, nil)
			},
			wantErr: "invalid credentials",
		},
		{
			name:      "Missing password",
			email:     "ops@example.com",
			mockSetup: func() {},
			wantErr:   "email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			token, admin, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Login() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			if admin == nil || token == "" {
				t.Errorf("Login() admin = %v, token = %q", admin, token)
			}
		})
	}
}

func TestAuthService_LogoutRevokesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := newTestTokens()
	svc := NewAuthService(ports.NewMockAdminRepository(ctrl), tokens, nil)

	token, _, err := tokens.GenerateToken("admin-1", "ops@example.com", "admin")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout() unexpected error: %v", err)
	}
	_, err = svc.Authenticate(context.Background(), token)
	if err == nil || !strings.Contains(err.Error(), "token is blacklisted") {
		t.Errorf("Authenticate() after logout error = %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockAdminRepository(ctrl)
	svc := NewAuthService(mockRepo, newTestTokens(), nil)

	mockRepo.EXPECT().FindAdminByID(gomock.Any(), "admin-1").Return(&domain.Admin{ID: "admin-1"}, nil)
	mockRepo.EXPECT().FindAdminByID(gomock.Any(), "gone").Return(nil, nil)

	if a, err := svc.Me(context.Background(), "admin-1"); err != nil || a.ID != "admin-1" {
		t.Errorf("Me() = %v, %v", a, err)
	}
	if _, err := svc.Me(context.Background(), "gone"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Me() error = %v, want ErrNotFound", err)
	}
}
