// internal/adapters/repository/users.go
package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const userColumns = `id, full_name, email, phone, status, created_at, last_login_at`

func userWhere(f domain.UserFilter) *whereBuilder {
	w := &whereBuilder{}
	if len(f.Statuses) > 0 {
		w.add("status = ANY(?)", pq.Array(toStrings(f.Statuses)))
	}
	w.addSearch(f.Search, "full_name", "email", "phone")
	return w
}

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	u := &domain.User{}
	var lastLogin sql.NullTime
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Status, &u.CreatedAt, &lastLogin); err != nil {
		return nil, err
	}
	u.LastLoginAt = nullTime(lastLogin)
	return u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context, f domain.UserFilter) ([]*domain.User, int64, error) {
	w := userWhere(f)
	total, err := r.count(ctx, "users", w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.paginate(f.Page)
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users"+w.String()+" ORDER BY created_at DESC"+page, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *PostgresRepository) UpdateUserStatus(ctx context.Context, change domain.StatusChange) error {
	return r.updateStatus(ctx, "users", change)
}
