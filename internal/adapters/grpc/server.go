// internal/adapters/grpc/server.go
package grpc

import (
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/application"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const (
	typeSuccess = "success"
	typeError   = "error"
)

// Services are the application services the dashboard API exposes.
type Services struct {
	Auth       *application.AuthService
	Users      *application.UserService
	Onboarding *application.OnboardingService
	Orders     *application.OrderService
	Dashboard  *application.DashboardService
	Settings   *application.SettingsService
	Audit      *application.AuditService
}

type Server struct {
	adminpb.UnimplementedAdminServiceServer
	auth       *application.AuthService
	users      *application.UserService
	onboarding *application.OnboardingService
	orders     *application.OrderService
	dashboard  *application.DashboardService
	settings   *application.SettingsService
	audit      *application.AuditService
	log        *zap.Logger
}

func NewServer(svc Services, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		auth:       svc.Auth,
		users:      svc.Users,
		onboarding: svc.Onboarding,
		orders:     svc.Orders,
		dashboard:  svc.Dashboard,
		settings:   svc.Settings,
		audit:      svc.Audit,
		log:        log,
	}
}

func ok[T any](message string, data T) (*adminpb.Response[T], error) {
	return &adminpb.Response[T]{Message: message, Type: typeSuccess, Code: 200, Data: data}, nil
}

// failure turns a service error into the envelope. Authorization failures
// are the exception and surface as a gRPC status.
func failure[T any](s *Server, method string, err error) (*adminpb.Response[T], error) {
	if errors.Is(err, domain.ErrForbidden) {
		return nil, permissionDenied()
	}
	code, message := envelopeError(err)
	if code == 500 {
		s.log.Error("request failed", zap.String("method", method), zap.Error(err))
	}
	return &adminpb.Response[T]{Message: message, Type: typeError, Code: code}, nil
}

func envelopeError(err error) (int64, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrAdminExists):
		return 409, err.Error()
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrOutOfDeliveryRadius):
		return 422, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return 401, "Invalid credentials"
	default:
		return 500, "operation failed"
	}
}

func listData[T any](items []T, total int64, page domain.Page) *adminpb.ListData[T] {
	p := page.Normalize()
	if items == nil {
		items = []T{}
	}
	return &adminpb.ListData[T]{
		Items:       items,
		Total:       total,
		CurrentPage: p.Page,
		PerPage:     p.Limit,
		TotalInPage: int64(len(items)),
		LastPage:    p.LastPage(total),
	}
}

func unauthenticated() error {
	return status.Error(codes.Unauthenticated, "Unauthorized")
}

func permissionDenied() error {
	return status.Error(codes.PermissionDenied, "permission denied")
}
