// internal/adapters/grpc/server_test.go
package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/application"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
	"github.com/mahabubulhasibshawon/marketplace-admin/pkg/auth"
)

const bufSize = 1024 * 1024

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memoryRevocations struct {
	ids map[string]bool
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.ids[tokenID] = true
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return m.ids[tokenID], nil
}

type testEnv struct {
	client         *adminpb.AdminServiceClient
	tokens         *auth.TokenManager
	admins         *ports.MockAdminRepository
	users          *ports.MockUserRepository
	establishments *ports.MockEstablishmentRepository
	agents         *ports.MockAgentRepository
	orders         *ports.MockOrderRepository
	settings       *ports.MockSettingsRepository
	audit          *ports.MockAuditRepository
	stats          *ports.MockStatsRepository
}

func setupTestServer(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		tokens:         auth.NewTokenManager("grpc-test-secret-0123456789", time.Hour, &memoryRevocations{ids: map[string]bool{}}),
		admins:         ports.NewMockAdminRepository(ctrl),
		users:          ports.NewMockUserRepository(ctrl),
		establishments: ports.NewMockEstablishmentRepository(ctrl),
		agents:         ports.NewMockAgentRepository(ctrl),
		orders:         ports.NewMockOrderRepository(ctrl),
		settings:       ports.NewMockSettingsRepository(ctrl),
		audit:          ports.NewMockAuditRepository(ctrl),
		stats:          ports.NewMockStatsRepository(ctrl),
	}

	authService := application.NewAuthService(env.admins, env.tokens, nil)
	srv := NewServer(Services{
		Auth:       authService,
		Users:      application.NewUserService(env.users, nil, nil, nil),
		Onboarding: application.NewOnboardingService(env.establishments, env.agents, nil, nil, nil),
		Orders:     application.NewOrderService(env.orders, nil, nil, nil),
		Dashboard:  application.NewDashboardService(env.stats, nil, nil),
		Settings:   application.NewSettingsService(env.settings, nil, nil, nil),
		Audit:      application.NewAuditService(env.audit, nil, nil),
	}, nil)

	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(AuthInterceptor(authService)))
	adminpb.RegisterAdminServiceServer(grpcServer, srv)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})

	env.client = adminpb.NewAdminServiceClient(conn)
	return env
}

func (e *testEnv) authedContext(t *testing.T, adminID string, role domain.Role) context.Context {
	t.Helper()
	token, _, err := e.tokens.GenerateToken(adminID, adminID+"@example.com", string(role))
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return metadata.NewOutgoingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func wantStatus(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if s, ok := status.FromError(err); !ok || s.Code() != code {
		t.Errorf("error = %v, want %s", err, code)
	}
}

func TestGRPCServer_Auth(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	admin := &domain.Admin{ID: "admin-1", Email: "ops@example.com", PasswordHash: string(hash), Role: domain.RoleAdmin, Status: domain.StatusActive}

	var token string
	t.Run("Login_Success", func(t *testing.T) {
		env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(admin, nil)
		env.admins.EXPECT().TouchLastLogin(gomock.Any(), "admin-1", gomock.Any()).Return(nil)

		resp, err := env.client.Login(ctx, &adminpb.LoginRequest{Email: "OPS@example.com ", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Code != 200 || resp.Type != "success" || resp.AccessToken == "" {
			t.Errorf("Login response = %+v, want code 200, type success, non-empty token", resp)
		}
		if resp.ExpiresIn != 3600 {
			t.Errorf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
		}
		if resp.Data == nil || resp.Data.PasswordHash != "" {
			t.Errorf("Login data = %+v, want admin without password hash", resp.Data)
		}
		token = resp.AccessToken
	})

	t.Run("Login_InvalidCredentials", func(t *testing.T) {
		env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		resp, err := env.client.Login(ctx, &adminpb.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Code != 401 || resp.Message != "Invalid credentials" {
			t.Errorf("Login response = %+v, want code 401, message 'Invalid credentials'", resp)
		}
	})

	t.Run("Me_Unauthorized", func(t *testing.T) {
		_, err := env.client.Me(ctx, &adminpb.Empty{})
		wantStatus(t, err, codes.Unauthenticated)
	})

	authed := metadata.NewOutgoingContext(ctx, metadata.Pairs("authorization", "Bearer "+token))

	t.Run("Me_Success", func(t *testing.T) {
		env.admins.EXPECT().FindAdminByID(gomock.Any(), "admin-1").Return(admin, nil)

		resp, err := env.client.Me(authed, &adminpb.Empty{})
		if err != nil {
			t.Fatalf("Me failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.Email != "ops@example.com" {
			t.Errorf("Me response = %+v", resp)
		}
	})

	t.Run("Logout_Success", func(t *testing.T) {
		resp, err := env.client.Logout(authed, &adminpb.Empty{})
		if err != nil {
			t.Fatalf("Logout failed: %v", err)
		}
		if resp.Code != 200 || resp.Type != "success" {
			t.Errorf("Logout response = %+v, want code 200, type success", resp)
		}
	})

	t.Run("Logout_TokenBlacklisted", func(t *testing.T) {
		_, err := env.client.Me(authed, &adminpb.Empty{})
		wantStatus(t, err, codes.Unauthenticated)
		if s, _ := status.FromError(err); s.Message() != "token is blacklisted" {
			t.Errorf("message = %q, want 'token is blacklisted'", s.Message())
		}
	})
}

func TestGRPCServer_CreateAdminRequiresSuperAdmin(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.client.CreateAdmin(env.authedContext(t, "admin-1", domain.RoleAdmin), &adminpb.CreateAdminRequest{
		Email: "new@example.com", Name: "New", Password: "long-enough", Role: domain.RoleAdmin,
	})
	wantStatus(t, err, codes.PermissionDenied)

	env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "new@example.com").Return(&domain.Admin{ID: "x"}, nil)
	resp, err := env.client.CreateAdmin(env.authedContext(t, "root", domain.RoleSuperAdmin), &adminpb.CreateAdminRequest{
		Email: "new@example.com", Name: "New", Password: "long-enough", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if resp.Code != 409 || resp.Type != "error" {
		t.Errorf("CreateAdmin response = %+v, want code 409", resp)
	}
}

func TestGRPCServer_Onboarding(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.authedContext(t, "admin-1", domain.RoleAdmin)

	pending := &domain.Establishment{ID: "est-1", Name: "Mama Put", Type: domain.EstablishmentRestaurant, Status: domain.StatusPending}

	t.Run("ListEstablishments_Paginates", func(t *testing.T) {
		env.establishments.EXPECT().
			ListEstablishments(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, f domain.EstablishmentFilter) ([]*domain.Establishment, int64, error) {
				if f.Limit != 2 || f.Page.Page != 2 || len(f.Statuses) != 1 {
					t.Errorf("filter = %+v", f)
				}
				return []*domain.Establishment{pending}, 3, nil
			})

		resp, err := env.client.ListEstablishments(ctx, &adminpb.ListEstablishmentsRequest{
			Page:     domain.Page{Limit: 2, Page: 2},
			Statuses: []domain.AccountStatus{domain.StatusPending},
		})
		if err != nil {
			t.Fatalf("ListEstablishments failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.Total != 3 || resp.Data.LastPage != 2 || resp.Data.TotalInPage != 1 {
			t.Errorf("ListEstablishments data = %+v", resp.Data)
		}
	})

	t.Run("RejectEstablishment_ReasonRequired", func(t *testing.T) {
		env.establishments.EXPECT().GetEstablishment(gomock.Any(), "est-1").Return(pending, nil)

		resp, err := env.client.RejectEstablishment(ctx, &adminpb.ReasonRequest{ID: "est-1"})
		if err != nil {
			t.Fatalf("RejectEstablishment failed: %v", err)
		}
		if resp.Code != 422 {
			t.Errorf("RejectEstablishment response = %+v, want code 422", resp)
		}
	})

	t.Run("ApproveEstablishment_Conflict", func(t *testing.T) {
		env.establishments.EXPECT().GetEstablishment(gomock.Any(), "est-1").Return(pending, nil)
		env.establishments.EXPECT().UpdateEstablishmentStatus(gomock.Any(), gomock.Any()).Return(domain.ErrStatusConflict)

		resp, err := env.client.ApproveEstablishment(ctx, &adminpb.IDRequest{ID: "est-1"})
		if err != nil {
			t.Fatalf("ApproveEstablishment failed: %v", err)
		}
		if resp.Code != 409 || resp.Type != "error" {
			t.Errorf("ApproveEstablishment response = %+v, want code 409", resp)
		}
	})

	t.Run("ApproveAgent_Success", func(t *testing.T) {
		agent := &domain.DeliveryAgent{ID: "agent-1", Status: domain.StatusPending, KYC: domain.KYC{Verified: true}}
		env.agents.EXPECT().GetAgent(gomock.Any(), "agent-1").Return(agent, nil)
		env.agents.EXPECT().UpdateAgentStatus(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := env.client.ApproveAgent(ctx, &adminpb.IDRequest{ID: "agent-1"})
		if err != nil {
			t.Fatalf("ApproveAgent failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.Status != domain.StatusActive || resp.Data.ReviewedBy != "admin-1" {
			t.Errorf("ApproveAgent data = %+v", resp.Data)
		}
	})

	t.Run("GetUser_NotFound", func(t *testing.T) {
		env.users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, nil)

		resp, err := env.client.GetUser(ctx, &adminpb.IDRequest{ID: "ghost"})
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if resp.Code != 404 {
			t.Errorf("GetUser response = %+v, want code 404", resp)
		}
	})
}

func TestGRPCServer_Orders(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.authedContext(t, "admin-1", domain.RoleAdmin)

	t.Run("CancelOrder_Success", func(t *testing.T) {
		env.orders.EXPECT().GetOrder(gomock.Any(), "o-1").Return(&domain.Order{ID: "o-1", Status: domain.OrderPreparing}, nil)
		env.orders.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := env.client.CancelOrder(ctx, &adminpb.ReasonRequest{ID: "o-1", Reason: "customer request"})
		if err != nil {
			t.Fatalf("CancelOrder failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.Status != domain.OrderCancelled || resp.Data.CancelReason != "customer request" {
			t.Errorf("CancelOrder response = %+v", resp)
		}
	})

	t.Run("UpdateOrderStatus_Backwards", func(t *testing.T) {
		env.orders.EXPECT().GetOrder(gomock.Any(), "o-2").Return(&domain.Order{ID: "o-2", Status: domain.OrderPickedUp}, nil)

		resp, err := env.client.UpdateOrderStatus(ctx, &adminpb.StatusRequest{ID: "o-2", Status: "preparing"})
		if err != nil {
			t.Fatalf("UpdateOrderStatus failed: %v", err)
		}
		if resp.Code != 409 {
			t.Errorf("UpdateOrderStatus response = %+v, want code 409", resp)
		}
	})

	t.Run("ListOrders_RepositoryError", func(t *testing.T) {
		env.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, int64(0), context.DeadlineExceeded)

		resp, err := env.client.ListOrders(ctx, &adminpb.ListOrdersRequest{})
		if err != nil {
			t.Fatalf("ListOrders failed: %v", err)
		}
		if resp.Code != 500 || resp.Message != "operation failed" {
			t.Errorf("ListOrders response = %+v, want code 500", resp)
		}
	})
}

func TestGRPCServer_Settings(t *testing.T) {
	env := setupTestServer(t)

	t.Run("UpdateSettings_AdminForbidden", func(t *testing.T) {
		_, err := env.client.UpdateSettings(env.authedContext(t, "admin-1", domain.RoleAdmin),
			&adminpb.UpdateSettingsRequest{Settings: domain.DefaultSettings()})
		wantStatus(t, err, codes.PermissionDenied)
	})

	t.Run("PreviewFees_Draft", func(t *testing.T) {
		draft := domain.DefaultSettings()
		resp, err := env.client.PreviewFees(env.authedContext(t, "admin-1", domain.RoleAdmin),
			&adminpb.PreviewFeesRequest{Subtotal: 40, DistanceKm: 5, Settings: &draft})
		if err != nil {
			t.Fatalf("PreviewFees failed: %v", err)
		}
		if resp.Code != 200 || resp.Data.NominalDeliveryFee != 6.5 || resp.Data.CustomerTotal != 46.5 {
			t.Errorf("PreviewFees data = %+v", resp.Data)
		}
	})

	t.Run("GetSettings_Defaults", func(t *testing.T) {
		env.settings.EXPECT().GetSettings(gomock.Any()).Return(nil, nil)

		resp, err := env.client.GetSettings(env.authedContext(t, "admin-1", domain.RoleAdmin), &adminpb.Empty{})
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}
		if resp.Data.PerKmFee != domain.DefaultSettings().PerKmFee {
			t.Errorf("GetSettings data = %+v", resp.Data)
		}
	})
}
