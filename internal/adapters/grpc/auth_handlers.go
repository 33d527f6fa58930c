// internal/adapters/grpc/auth_handlers.go
package grpc

import (
	"context"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

func (s *Server) Login(ctx context.Context, req *adminpb.LoginRequest) (*adminpb.LoginResponse, error) {
	token, admin, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		code, message := envelopeError(err)
		return &adminpb.LoginResponse{Message: message, Type: typeError, Code: code}, nil
	}
	return &adminpb.LoginResponse{
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.auth.TokenTTL().Seconds()),
		AccessToken: token,
		Data:        admin,
		Message:     "Logged in",
		Type:        typeSuccess,
		Code:        200,
	}, nil
}

func (s *Server) Logout(ctx context.Context, _ *adminpb.Empty) (*adminpb.EmptyResponse, error) {
	claims, found := ClaimsFromContext(ctx)
	if !found {
		return nil, unauthenticated()
	}
	if err := s.auth.Logout(ctx, claims); err != nil {
		return failure[*adminpb.Empty](s, adminpb.MethodLogout, err)
	}
	return ok[*adminpb.Empty]("Successfully logged out", nil)
}

func (s *Server) Me(ctx context.Context, _ *adminpb.Empty) (*adminpb.AdminResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	admin, err := s.auth.Me(ctx, actor.AdminID)
	if err != nil {
		return failure[*domain.Admin](s, adminpb.MethodMe, err)
	}
	return ok("Admin fetched", admin)
}

// CreateAdmin lets a super admin add staff accounts.
func (s *Server) CreateAdmin(ctx context.Context, req *adminpb.CreateAdminRequest) (*adminpb.AdminResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleSuperAdmin {
		return nil, permissionDenied()
	}
	admin, err := s.auth.CreateAdmin(ctx, req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		return failure[*domain.Admin](s, adminpb.MethodCreateAdmin, err)
	}
	return ok("Admin created", admin)
}
