// internal/application/support.go
package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

const (
	prefixUsers          = "users:"
	prefixEstablishments = "establishments:"
	prefixAgents         = "agents:"
	prefixOrders         = "orders:"
	prefixAudit          = "audit:"
	prefixStats          = "stats:"
	prefixSettings       = "settings:"
)

var errReasonRequired = fmt.Errorf("%w: reason is required", domain.ErrInvalidInput)

// Actor is the staff member performing a write.
type Actor struct {
	AdminID string
	Role    domain.Role
}

// support bundles the side channels every service uses. Failures on these
// channels are logged and never fail the operation.
type support struct {
	cache  ports.CachePort
	events ports.EventPublisher
	log    *zap.Logger
}

func newSupport(cache ports.CachePort, events ports.EventPublisher, log *zap.Logger) support {
	if log == nil {
		log = zap.NewNop()
	}
	return support{cache: cache, events: events, log: log}
}

type listPage[T any] struct {
	Items []T
	Total int64
}

func cacheKey(prefix string, filter interface{}) string {
	b, _ := json.Marshal(filter)
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:8])
}

// cachedList serves a list from the cache when possible and fills it on a miss.
func cachedList[T any](ctx context.Context, s support, key string, load func() ([]T, int64, error)) ([]T, int64, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var page listPage[T]
			if err := json.Unmarshal(data, &page); err == nil {
				return page.Items, page.Total, nil
			}
		}
	}

	items, total, err := load()
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, listPage[T]{Items: items, Total: total}); err != nil {
			s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return items, total, nil
}

func (s support) invalidate(ctx context.Context, prefixes ...string) {
	if s.cache == nil {
		return
	}
	for _, p := range prefixes {
		if err := s.cache.DeleteByPrefix(ctx, p); err != nil {
			s.log.Warn("cache invalidation failed", zap.String("prefix", p), zap.Error(err))
		}
	}
}

func (s support) publish(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("event publish failed", zap.String("type", event.Type), zap.String("entity_id", event.EntityID), zap.Error(err))
	}
}

// statusAction names a moderation step for audit rows and event types.
func statusAction(from, to domain.AccountStatus) string {
	switch {
	case from == domain.StatusPending && to == domain.StatusActive:
		return "approved"
	case from == domain.StatusPending && to == domain.StatusInactive:
		return "rejected"
	case to == domain.StatusSuspended:
		return "suspended"
	case to == domain.StatusInactive:
		return "deactivated"
	case from == domain.StatusSuspended && to == domain.StatusActive:
		return "reinstated"
	default:
		return "activated"
	}
}

// checkAccountTransition validates a moderation step before it is written.
func checkAccountTransition(from, to domain.AccountStatus, reason string) error {
	if !to.IsValid() {
		return domain.ErrInvalidInput
	}
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidTransition
	}
	if reason == "" && (to == domain.StatusSuspended || (from == domain.StatusPending && to == domain.StatusInactive)) {
		return errReasonRequired
	}
	return nil
}
