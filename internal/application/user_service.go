// internal/application/user_service.go
package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

type UserService struct {
	repo ports.UserRepository
	support
}

func NewUserService(repo ports.UserRepository, cache ports.CachePort, events ports.EventPublisher, log *zap.Logger) *UserService {
	return &UserService{repo: repo, support: newSupport(cache, events, log)}
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error) {
	filter.Page = filter.Page.Normalize()
	return cachedList(ctx, s.support, cacheKey(prefixUsers, filter), func() ([]*domain.User, int64, error) {
		return s.repo.ListUsers(ctx, filter)
	})
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *UserService) SetUserStatus(ctx context.Context, actor Actor, id string, to domain.AccountStatus, reason string) (*domain.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	from := u.Status
	if err := checkAccountTransition(from, to, reason); err != nil {
		return nil, err
	}

	action := statusAction(from, to)
	change := domain.StatusChange{
		ID:     u.ID,
		From:   string(from),
		To:     string(to),
		Reason: reason,
		Audit:  domain.NewAuditEntry(actor.AdminID, domain.EntityUser, u.ID, action, string(from), string(to), reason),
	}
	if err := s.repo.UpdateUserStatus(ctx, change); err != nil {
		return nil, err
	}

	s.invalidate(ctx, prefixUsers, prefixStats, prefixAudit)
	s.publish(ctx, domain.NewEvent(domain.EntityUser, action, u.ID, actor.AdminID, map[string]string{
		"email":  u.Email,
		"status": string(to),
		"reason": reason,
	}))
	s.log.Info("user status changed", zap.String("user_id", u.ID), zap.String("to", string(to)), zap.String("admin_id", actor.AdminID))

	updated := *u
	updated.Status = to
	return &updated, nil
}
