// internal/application/dashboard_service.go
package application

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

const dashboardKey = prefixStats + "dashboard"

type DashboardService struct {
	repo ports.StatsRepository
	support
}

func NewDashboardService(repo ports.StatsRepository, cache ports.CachePort, log *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, support: newSupport(cache, nil, log)}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, dashboardKey); err == nil {
			var cached domain.DashboardStats
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardKey, stats); err != nil {
			s.log.Warn("cache set failed", zap.String("key", dashboardKey), zap.Error(err))
		}
	}
	return stats, nil
}

func (s *DashboardService) collect(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{GeneratedAt: time.Now().UTC()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.UsersByStatus, err = s.repo.CountUsersByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.EstablishmentsByStatus, err = s.repo.CountEstablishmentsByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.EstablishmentsByType, err = s.repo.CountEstablishmentsByType(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AgentsByStatus, err = s.repo.CountAgentsByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.OnlineAgents, err = s.repo.CountOnlineAgents(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.OrdersByStatus, err = s.repo.CountOrdersByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Revenue, err = s.repo.SumDeliveredRevenue(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range stats.UsersByStatus {
		stats.TotalUsers += n
	}
	for _, n := range stats.OrdersByStatus {
		stats.TotalOrders += n
	}
	stats.PendingOnboarding = stats.EstablishmentsByStatus[domain.StatusPending] + stats.AgentsByStatus[domain.StatusPending]

	r := &stats.Revenue
	r.PlatformRevenue = math.Round((r.PlatformCommission+r.DeliveryFees-r.AgentEarnings)*100) / 100
	return stats, nil
}
