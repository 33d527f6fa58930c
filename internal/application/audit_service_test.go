// internal/application/audit_service_test.go
package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

func TestAuditService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ports.NewMockAuditRepository(ctrl)
	svc := NewAuditService(repo, newMissCache(), nil)

	filter := domain.AuditFilter{EntityType: domain.EntityEstablishment, EntityID: "est-1", Page: domain.Page{Limit: 1000}}
	repo.EXPECT().ListAudit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, f domain.AuditFilter) ([]*domain.AuditEntry, int64, error) {
			if f.Limit != domain.MaxPageLimit {
				t.Errorf("limit = %d, want %d", f.Limit, domain.MaxPageLimit)
			}
			return []*domain.AuditEntry{{ID: "a-1", Action: "approved"}}, 1, nil
		})

	entries, total, err := svc.List(context.Background(), filter)
	if err != nil || total != 1 || entries[0].Action != "approved" {
		t.Errorf("List() = %v, %d, %v", entries, total, err)
	}
}

func TestCacheKey_StableAndDistinct(t *testing.T) {
	a := cacheKey(prefixOrders, domain.OrderFilter{UserID: "u1"})
	b := cacheKey(prefixOrders, domain.OrderFilter{UserID: "u1"})
	c := cacheKey(prefixOrders, domain.OrderFilter{UserID: "u2"})
	if a != b {
		t.Errorf("same filter produced %q and %q", a, b)
	}
	if a == c {
		t.Error("different filters share a key")
	}
	if a[:len(prefixOrders)] != prefixOrders {
		t.Errorf("key %q lacks prefix", a)
	}
}
