// internal/adapters/repository/agents.go
package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const agentColumns = `id, full_name, email, phone, vehicle_type, vehicle_plate,
	kyc_document_type, kyc_document_number, kyc_verified, availability, rating, completed_deliveries,
	status, rejection_reason, reviewed_by, reviewed_at, created_at, updated_at`

func agentWhere(f domain.AgentFilter) *whereBuilder {
	w := &whereBuilder{}
	if len(f.Statuses) > 0 {
		w.add("status = ANY(?)", pq.Array(toStrings(f.Statuses)))
	}
	if len(f.VehicleTypes) > 0 {
		w.add("vehicle_type = ANY(?)", pq.Array(toStrings(f.VehicleTypes)))
	}
	if f.Availability != "" {
		w.add("availability = ?", string(f.Availability))
	}
	if f.KYCVerified != nil {
		w.add("kyc_verified = ?", *f.KYCVerified)
	}
	w.addSearch(f.Search, "full_name", "email", "phone", "vehicle_plate")
	return w
}

func scanAgent(row interface{ Scan(...interface{}) error }) (*domain.DeliveryAgent, error) {
	a := &domain.DeliveryAgent{}
	var reviewedAt sql.NullTime
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.VehicleType, &a.VehiclePlate,
		&a.KYC.DocumentType, &a.KYC.DocumentNumber, &a.KYC.Verified, &a.Availability, &a.Rating, &a.CompletedDeliveries,
		&a.Status, &a.RejectionReason, &a.ReviewedBy, &reviewedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.ReviewedAt = nullTime(reviewedAt)
	return a, nil
}

func (r *PostgresRepository) ListAgents(ctx context.Context, f domain.AgentFilter) ([]*domain.DeliveryAgent, int64, error) {
	w := agentWhere(f)
	total, err := r.count(ctx, "delivery_agents", w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.paginate(f.Page)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+agentColumns+" FROM delivery_agents"+w.String()+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*domain.DeliveryAgent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetAgent(ctx context.Context, id string) (*domain.DeliveryAgent, error) {
	a, err := scanAgent(r.db.QueryRowContext(ctx, "SELECT "+agentColumns+" FROM delivery_agents WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *PostgresRepository) UpdateAgentStatus(ctx context.Context, change domain.StatusChange) error {
	return r.updateStatus(ctx, "delivery_agents", change, reviewColumns(change)...)
}
