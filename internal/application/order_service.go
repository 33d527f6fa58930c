// internal/application/order_service.go
package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

type OrderService struct {
	repo ports.OrderRepository
	support
}

func NewOrderService(repo ports.OrderRepository, cache ports.CachePort, events ports.EventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{repo: repo, support: newSupport(cache, events, log)}
}

func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
	filter.Page = filter.Page.Normalize()
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, 0, fmt.Errorf("%w: 'to' is before 'from'", domain.ErrInvalidInput)
	}
	return cachedList(ctx, s.support, cacheKey(prefixOrders, filter), func() ([]*domain.Order, int64, error) {
		return s.repo.ListOrders(ctx, filter)
	})
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, actor Actor, id, reason string) (*domain.Order, error) {
	if reason == "" {
		return nil, errReasonRequired
	}
	return s.changeStatus(ctx, actor, id, domain.OrderCancelled, reason)
}

// UpdateOrderStatus moves an order forward; cancellation goes through CancelOrder.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor Actor, id string, to domain.OrderStatus) (*domain.Order, error) {
	if to == domain.OrderCancelled {
		return nil, fmt.Errorf("%w: use cancel to cancel an order", domain.ErrInvalidInput)
	}
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidInput, to)
	}
	return s.changeStatus(ctx, actor, id, to, "")
}

func (s *OrderService) changeStatus(ctx context.Context, actor Actor, id string, to domain.OrderStatus, reason string) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	from := o.Status
	if !from.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}

	action := "status_changed"
	if to == domain.OrderCancelled {
		action = "cancelled"
	}
	change := domain.StatusChange{
		ID:     o.ID,
		From:   string(from),
		To:     string(to),
		Reason: reason,
		Audit:  domain.NewAuditEntry(actor.AdminID, domain.EntityOrder, o.ID, action, string(from), string(to), reason),
	}
	if err := s.repo.UpdateOrderStatus(ctx, change); err != nil {
		return nil, err
	}

	s.invalidate(ctx, prefixOrders, prefixStats, prefixAudit)
	s.publish(ctx, domain.NewEvent(domain.EntityOrder, action, o.ID, actor.AdminID, map[string]string{
		"user_id":          o.UserID,
		"establishment_id": o.EstablishmentID,
		"agent_id":         o.AgentID,
		"from":             string(from),
		"status":           string(to),
		"reason":           reason,
	}))
	s.log.Info("order status changed", zap.String("order_id", o.ID), zap.String("from", string(from)), zap.String("to", string(to)))

	updated := *o
	updated.Status = to
	updated.UpdatedAt = change.Audit.CreatedAt
	if to == domain.OrderCancelled {
		updated.CancelReason = reason
	}
	if to == domain.OrderDelivered {
		deliveredAt := change.Audit.CreatedAt
		updated.DeliveredAt = &deliveredAt
	}
	return &updated, nil
}
