// internal/adapters/repository/audit.go
package repository

import (
	"context"
	"database/sql"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const auditColumns = `id, admin_id, entity_type, entity_id, action, from_status, to_status, reason, created_at`

func insertAudit(ctx context.Context, tx *sql.Tx, e domain.AuditEntry) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO audit_log ("+auditColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		e.ID, e.AdminID, e.EntityType, e.EntityID, e.Action, e.FromStatus, e.ToStatus, e.Reason, e.CreatedAt)
	return err
}

func auditWhere(f domain.AuditFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.EntityType != "" {
		w.add("entity_type = ?", string(f.EntityType))
	}
	if f.EntityID != "" {
		w.add("entity_id = ?", f.EntityID)
	}
	if f.AdminID != "" {
		w.add("admin_id = ?", f.AdminID)
	}
	return w
}

func (r *PostgresRepository) ListAudit(ctx context.Context, f domain.AuditFilter) ([]*domain.AuditEntry, int64, error) {
	w := auditWhere(f)
	total, err := r.count(ctx, "audit_log", w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.paginate(f.Page)
	rows, err := r.db.QueryContext(ctx, "SELECT "+auditColumns+" FROM audit_log"+w.String()+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*domain.AuditEntry
	for rows.Next() {
		e := &domain.AuditEntry{}
		if err := rows.Scan(&e.ID, &e.AdminID, &e.EntityType, &e.EntityID, &e.Action, &e.FromStatus, &e.ToStatus, &e.Reason, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}
