// internal/adapters/repository/admins.go
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const adminColumns = `id, email, name, password_hash, role, status, created_at, last_login_at`

func (r *PostgresRepository) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO admins ("+adminColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		a.ID, a.Email, a.Name, a.PasswordHash, a.Role, a.Status, a.CreatedAt, a.LastLoginAt)
	if isUniqueViolation(err) {
		return domain.ErrAdminExists
	}
	return err
}

func (r *PostgresRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.findAdmin(ctx, "email", email)
}

func (r *PostgresRepository) FindAdminByID(ctx context.Context, id string) (*domain.Admin, error) {
	return r.findAdmin(ctx, "id", id)
}

func (r *PostgresRepository) findAdmin(ctx context.Context, col, value string) (*domain.Admin, error) {
	a := &domain.Admin{}
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, "SELECT "+adminColumns+" FROM admins WHERE "+col+" = $1", value).
		Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.Status, &a.CreatedAt, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.LastLoginAt = nullTime(lastLogin)
	return a, nil
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, "UPDATE admins SET last_login_at = $1 WHERE id = $2", at, id)
	return err
}
