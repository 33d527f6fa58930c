// internal/application/audit_service.go
package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

type AuditService struct {
	repo ports.AuditRepository
	support
}

func NewAuditService(repo ports.AuditRepository, cache ports.CachePort, log *zap.Logger) *AuditService {
	return &AuditService{repo: repo, support: newSupport(cache, nil, log)}
}

func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, int64, error) {
	filter.Page = filter.Page.Normalize()
	return cachedList(ctx, s.support, cacheKey(prefixAudit, filter), func() ([]*domain.AuditEntry, int64, error) {
		return s.repo.ListAudit(ctx, filter)
	})
}
