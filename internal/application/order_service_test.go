// internal/application/order_service_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

func TestOrderService_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepository(ctrl)
	mockCache := newMissCache()
	svc := NewOrderService(mockRepo, mockCache, nil, nil)

	orders := []*domain.Order{
		{
			ID:        "ord-1",
			CreatedAt: time.Now(),
			UserID:    "usr-1",
			Status:    domain.OrderPending,
		},
	}
	total := int64(1)
	cacheBytes, _ := json.Marshal(listPage[*domain.Order]{Items: orders, Total: total})

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		mockSetup func()
		wantErr   bool
	}{
		{
			name:   "Cache hit",
			filter: domain.OrderFilter{Page: domain.Page{Limit: 10, Page: 1}},
			mockSetup: func() {
				mockCache.get = func(ctx context.Context, key string) ([]byte, error) { return cacheBytes, nil }
			},
		},
		{
			name:   "Cache miss, successful DB query",
			filter: domain.OrderFilter{Page: domain.Page{Limit: 10, Page: 1}},
			mockSetup: func() {
				mockCache.get = func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") }
				mockRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(orders, total, nil)
				mockCache.set = func(ctx context.Context, key string, value interface{}) error { return nil }
			},
		},
		{
			name:   "Repository error",
			filter: domain.OrderFilter{Page: domain.Page{Limit: 10, Page: 1}},
			mockSetup: func() {
				mockCache.get = func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") }
				mockRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:   "Cache set error",
			filter: domain.OrderFilter{Page: domain.Page{Limit: 10, Page: 1}},
			mockSetup: func() {
				mockCache.get = func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") }
				mockRepo.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(orders, total, nil)
				mockCache.set = func(ctx context.Context, key string, value interface{}) error { return errors.New("cache set error") }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, total, err := svc.ListOrders(context.Background(), tt.filter)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ListOrders() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("ListOrders() unexpected error: %v", err)
			}
			if len(result) != len(orders) || total != 1 {
				t.Errorf("ListOrders() result = %v, total = %v, want %v, 1", result, total, orders)
			}
		})
	}
}

func TestOrderService_ListOrdersRejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewOrderService(ports.NewMockOrderRepository(ctrl), newMissCache(), nil, nil)
	from := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, _, err := svc.ListOrders(context.Background(), domain.OrderFilter{From: &from, To: &to})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("ListOrders() error = %v, want ErrInvalidInput", err)
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepository(ctrl)
	mockCache := newMissCache()
	events := &recordingPublisher{}
	svc := NewOrderService(mockRepo, mockCache, events, nil)

	tests := []struct {
		name      string
		orderID   string
		reason    string
		mockSetup func()
		wantErr   error
	}{
		{
			name:    "Successful cancel",
			orderID: "ord-1",
			reason:  "customer unreachable",
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(&domain.Order{ID: "ord-1", Status: domain.OrderPreparing}, nil)
				mockRepo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, c domain.StatusChange) error {
					if c.To != "cancelled" || c.Reason != "customer unreachable" || c.Audit.Action != "cancelled" {
						t.Errorf("unexpected change %+v", c)
					}
					return nil
				})
				mockCache.delete = func(ctx context.Context, prefix string) error { return nil }
			},
		},
		{
			name:      "Missing reason",
			orderID:   "ord-1",
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:    "Order not found",
			orderID: "ord-404",
			reason:  "duplicate",
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-404").Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "Already delivered",
			orderID: "ord-2",
			reason:  "late",
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-2").Return(&domain.Order{ID: "ord-2", Status: domain.OrderDelivered}, nil)
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "Cache deletion error",
			orderID: "ord-3",
			reason:  "fraud",
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-3").Return(&domain.Order{ID: "ord-3", Status: domain.OrderPending}, nil)
				mockRepo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Return(nil)
				mockCache.delete = func(ctx context.Context, prefix string) error { return errors.New("cache error") }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := svc.CancelOrder(context.Background(), testActor, tt.orderID, tt.reason)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CancelOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CancelOrder() unexpected error: %v", err)
			}
			if got.Status != domain.OrderCancelled || got.CancelReason != tt.reason {
				t.Errorf("CancelOrder() = %+v", got)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepository(ctrl)
	svc := NewOrderService(mockRepo, newMissCache(), nil, nil)

	if _, err := svc.UpdateOrderStatus(context.Background(), testActor, "ord-1", domain.OrderCancelled); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("cancel through UpdateOrderStatus error = %v", err)
	}
	if _, err := svc.UpdateOrderStatus(context.Background(), testActor, "ord-1", domain.OrderStatus("teleported")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("unknown status error = %v", err)
	}

	mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(&domain.Order{ID: "ord-1", Status: domain.OrderPickedUp}, nil)
	mockRepo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).Return(nil)
	got, err := svc.UpdateOrderStatus(context.Background(), testActor, "ord-1", domain.OrderDelivered)
	if err != nil {
		t.Fatalf("UpdateOrderStatus() unexpected error: %v", err)
	}
	if got.Status != domain.OrderDelivered || got.DeliveredAt == nil {
		t.Errorf("UpdateOrderStatus() = %+v", got)
	}

	mockRepo.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(&domain.Order{ID: "ord-1", Status: domain.OrderPickedUp}, nil)
	if _, err := svc.UpdateOrderStatus(context.Background(), testActor, "ord-1", domain.OrderConfirmed); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("backwards move error = %v", err)
	}
}
