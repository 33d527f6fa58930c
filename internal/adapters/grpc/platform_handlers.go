// internal/adapters/grpc/platform_handlers.go
package grpc

import (
	"context"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

func (s *Server) GetDashboardStats(ctx context.Context, _ *adminpb.Empty) (*adminpb.StatsResponse, error) {
	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return failure[*domain.DashboardStats](s, adminpb.MethodGetDashboardStats, err)
	}
	return ok("Dashboard stats fetched", stats)
}

func (s *Server) GetSettings(ctx context.Context, _ *adminpb.Empty) (*adminpb.SettingsResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return failure[*domain.PlatformSettings](s, adminpb.MethodGetSettings, err)
	}
	return ok("Settings fetched", settings)
}

func (s *Server) UpdateSettings(ctx context.Context, req *adminpb.UpdateSettingsRequest) (*adminpb.SettingsResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Update(ctx, actor, req.Settings)
	if err != nil {
		return failure[*domain.PlatformSettings](s, adminpb.MethodUpdateSettings, err)
	}
	return ok("Settings updated", settings)
}

func (s *Server) PreviewFees(ctx context.Context, req *adminpb.PreviewFeesRequest) (*adminpb.PreviewResponse, error) {
	var (
		preview *domain.FeePreview
		err     error
	)
	if req.Settings != nil {
		preview, err = s.settings.PreviewWith(*req.Settings, req.Subtotal, req.DistanceKm)
	} else {
		preview, err = s.settings.Preview(ctx, req.Subtotal, req.DistanceKm)
	}
	if err != nil {
		return failure[*domain.FeePreview](s, adminpb.MethodPreviewFees, err)
	}
	return ok("Fee preview calculated", preview)
}

func (s *Server) ListAuditLog(ctx context.Context, req *adminpb.ListAuditRequest) (*adminpb.AuditListResponse, error) {
	entries, total, err := s.audit.List(ctx, *req)
	if err != nil {
		return failure[*adminpb.ListData[*domain.AuditEntry]](s, adminpb.MethodListAuditLog, err)
	}
	return ok("Audit log fetched", listData(entries, total, req.Page))
}
