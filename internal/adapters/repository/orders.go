// internal/adapters/repository/orders.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const orderColumns = `id, user_id, establishment_id, agent_id, status, items,
	subtotal, delivery_fee, platform_commission, agent_earning, total,
	delivery_address, distance_km, cancel_reason, created_at, updated_at, delivered_at`

func orderWhere(f domain.OrderFilter) *whereBuilder {
	w := &whereBuilder{}
	if len(f.Statuses) > 0 {
		w.add("status = ANY(?)", pq.Array(toStrings(f.Statuses)))
	}
	if f.UserID != "" {
		w.add("user_id = ?", f.UserID)
	}
	if f.EstablishmentID != "" {
		w.add("establishment_id = ?", f.EstablishmentID)
	}
	if f.AgentID != "" {
		w.add("agent_id = ?", f.AgentID)
	}
	if f.From != nil {
		w.add("created_at >= ?", *f.From)
	}
	if f.To != nil {
		w.add("created_at < ?", *f.To)
	}
	return w
}

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	o := &domain.Order{}
	var (
		agentID     sql.NullString
		items       []byte
		deliveredAt sql.NullTime
	)
	err := row.Scan(&o.ID, &o.UserID, &o.EstablishmentID, &agentID, &o.Status, &items,
		&o.Subtotal, &o.DeliveryFee, &o.PlatformCommission, &o.AgentEarning, &o.Total,
		&o.DeliveryAddress, &o.DistanceKm, &o.CancelReason, &o.CreatedAt, &o.UpdatedAt, &deliveredAt)
	if err != nil {
		return nil, err
	}
	o.AgentID = agentID.String
	o.DeliveredAt = nullTime(deliveredAt)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, int64, error) {
	w := orderWhere(f)
	total, err := r.count(ctx, "orders", w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.paginate(f.Page)
	rows, err := r.db.QueryContext(ctx, "SELECT "+orderColumns+" FROM orders"+w.String()+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return o, err
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, change domain.StatusChange) error {
	var extra []column
	switch domain.OrderStatus(change.To) {
	case domain.OrderCancelled:
		extra = append(extra, column{"cancel_reason", change.Reason})
	case domain.OrderDelivered:
		extra = append(extra, column{"delivered_at", change.Audit.CreatedAt})
	}
	return r.updateStatus(ctx, "orders", change, extra...)
}
