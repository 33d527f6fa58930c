// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const uniqueViolation = "23505"

// PostgresRepository backs every repository port with one database handle.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// whereBuilder collects AND-ed conditions. Each "?" in a condition is
// replaced by the positional placeholder of its single argument.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) addSearch(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE ?"
	}
	w.add("("+strings.Join(parts, " OR ")+")", "%"+escapeLike(term)+"%")
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// paginate appends LIMIT/OFFSET placeholders and returns the final args.
func (w *whereBuilder) paginate(p domain.Page) (string, []interface{}) {
	p = p.Normalize()
	args := append(append([]interface{}{}, w.args...), p.Limit, p.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func (r *PostgresRepository) count(ctx context.Context, table string, w *whereBuilder) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+w.String(), w.args...).Scan(&total)
	return total, err
}

type column struct {
	name  string
	value interface{}
}

// updateStatus applies change only if the row still has change.From and
// writes the audit row in the same transaction.
func (r *PostgresRepository) updateStatus(ctx context.Context, table string, change domain.StatusChange, extra ...column) error {
	args := []interface{}{change.To, change.Audit.CreatedAt, change.ID, change.From}
	set := "status = $1, updated_at = $2"
	for _, c := range extra {
		args = append(args, c.value)
		set += fmt.Sprintf(", %s = $%d", c.name, len(args))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $3 AND status = $4", table, set)

	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			var exists bool
			if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", change.ID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domain.ErrNotFound
			}
			return domain.ErrStatusConflict
		}
		return insertAudit(ctx, tx, change.Audit)
	})
}

// reviewColumns stamps the reviewer on the first decision about a pending account.
func reviewColumns(change domain.StatusChange) []column {
	if change.From != string(domain.StatusPending) {
		return nil
	}
	cols := []column{
		{"reviewed_by", change.Audit.AdminID},
		{"reviewed_at", change.Audit.CreatedAt},
	}
	if change.To == string(domain.StatusInactive) {
		cols = append(cols, column{"rejection_reason", change.Reason})
	}
	return cols
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
