// internal/adapters/grpc/order_handlers.go
package grpc

import (
	"context"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

func (s *Server) ListOrders(ctx context.Context, req *adminpb.ListOrdersRequest) (*adminpb.OrderListResponse, error) {
	orders, total, err := s.orders.ListOrders(ctx, *req)
	if err != nil {
		return failure[*adminpb.ListData[*domain.Order]](s, adminpb.MethodListOrders, err)
	}
	return ok("Orders successfully fetched.", listData(orders, total, req.Page))
}

func (s *Server) GetOrder(ctx context.Context, req *adminpb.IDRequest) (*adminpb.OrderResponse, error) {
	o, err := s.orders.GetOrder(ctx, req.ID)
	if err != nil {
		return failure[*domain.Order](s, adminpb.MethodGetOrder, err)
	}
	return ok("Order fetched", o)
}

func (s *Server) CancelOrder(ctx context.Context, req *adminpb.ReasonRequest) (*adminpb.OrderResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	o, err := s.orders.CancelOrder(ctx, actor, req.ID, req.Reason)
	if err != nil {
		return failure[*domain.Order](s, adminpb.MethodCancelOrder, err)
	}
	return ok("Order Cancelled Successfully", o)
}

func (s *Server) UpdateOrderStatus(ctx context.Context, req *adminpb.StatusRequest) (*adminpb.OrderResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	o, err := s.orders.UpdateOrderStatus(ctx, actor, req.ID, domain.OrderStatus(req.Status))
	if err != nil {
		return failure[*domain.Order](s, adminpb.MethodUpdateOrderStatus, err)
	}
	return ok("Order status updated", o)
}
