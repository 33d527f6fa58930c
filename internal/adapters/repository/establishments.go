// internal/adapters/repository/establishments.go
package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const establishmentColumns = `id, name, type, owner_name, email, phone, address, city, license_number,
	status, rejection_reason, reviewed_by, reviewed_at, created_at, updated_at`

func establishmentWhere(f domain.EstablishmentFilter) *whereBuilder {
	w := &whereBuilder{}
	if len(f.Statuses) > 0 {
		w.add("status = ANY(?)", pq.Array(toStrings(f.Statuses)))
	}
	if len(f.Types) > 0 {
		w.add("type = ANY(?)", pq.Array(toStrings(f.Types)))
	}
	if f.City != "" {
		w.add("city ILIKE ?", escapeLike(f.City))
	}
	w.addSearch(f.Search, "name", "owner_name", "email", "phone")
	return w
}

func scanEstablishment(row interface{ Scan(...interface{}) error }) (*domain.Establishment, error) {
	e := &domain.Establishment{}
	var reviewedAt sql.NullTime
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.OwnerName, &e.Email, &e.Phone, &e.Address, &e.City, &e.LicenseNumber,
		&e.Status, &e.RejectionReason, &e.ReviewedBy, &reviewedAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.ReviewedAt = nullTime(reviewedAt)
	return e, nil
}

func (r *PostgresRepository) ListEstablishments(ctx context.Context, f domain.EstablishmentFilter) ([]*domain.Establishment, int64, error) {
	w := establishmentWhere(f)
	total, err := r.count(ctx, "establishments", w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.paginate(f.Page)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+establishmentColumns+" FROM establishments"+w.String()+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*domain.Establishment
	for rows.Next() {
		e, err := scanEstablishment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetEstablishment(ctx context.Context, id string) (*domain.Establishment, error) {
	e, err := scanEstablishment(r.db.QueryRowContext(ctx, "SELECT "+establishmentColumns+" FROM establishments WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (r *PostgresRepository) UpdateEstablishmentStatus(ctx context.Context, change domain.StatusChange) error {
	return r.updateStatus(ctx, "establishments", change, reviewColumns(change)...)
}
