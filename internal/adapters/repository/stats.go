// internal/adapters/repository/stats.go
package repository

import (
	"context"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

func groupCount[K ~string](ctx context.Context, r *PostgresRepository, query string) (map[K]int64, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[K]int64{}
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[K(key)] = n
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CountUsersByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error) {
	return groupCount[domain.AccountStatus](ctx, r, "SELECT status, COUNT(*) FROM users GROUP BY status")
}

func (r *PostgresRepository) CountEstablishmentsByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error) {
	return groupCount[domain.AccountStatus](ctx, r, "SELECT status, COUNT(*) FROM establishments GROUP BY status")
}

func (r *PostgresRepository) CountEstablishmentsByType(ctx context.Context) (map[domain.EstablishmentType]int64, error) {
	return groupCount[domain.EstablishmentType](ctx, r, "SELECT type, COUNT(*) FROM establishments GROUP BY type")
}

func (r *PostgresRepository) CountAgentsByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error) {
	return groupCount[domain.AccountStatus](ctx, r, "SELECT status, COUNT(*) FROM delivery_agents GROUP BY status")
}

func (r *PostgresRepository) CountOnlineAgents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM delivery_agents WHERE status = $1 AND availability = $2",
		domain.StatusActive, domain.AvailabilityOnline).Scan(&n)
	return n, err
}

func (r *PostgresRepository) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	return groupCount[domain.OrderStatus](ctx, r, "SELECT status, COUNT(*) FROM orders GROUP BY status")
}

func (r *PostgresRepository) SumDeliveredRevenue(ctx context.Context) (domain.RevenueStats, error) {
	var s domain.RevenueStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(subtotal), 0), COALESCE(SUM(delivery_fee), 0),
			COALESCE(SUM(platform_commission), 0), COALESCE(SUM(agent_earning), 0)
		FROM orders WHERE status = $1`, domain.OrderDelivered).
		Scan(&s.GrossOrderValue, &s.DeliveryFees, &s.PlatformCommission, &s.AgentEarnings)
	return s, err
}
