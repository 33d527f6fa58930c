// internal/adapters/repository/settings.go
package repository

import (
	"context"
	"database/sql"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

func (r *PostgresRepository) GetSettings(ctx context.Context) (*domain.PlatformSettings, error) {
	s := &domain.PlatformSettings{}
	err := r.db.QueryRowContext(ctx, `
		SELECT base_delivery_fee, per_km_fee, free_delivery_threshold, minimum_order_amount, max_delivery_radius_km,
			agent_commission_percent, platform_commission_percent, establishment_commission_percent, updated_by, updated_at
		FROM platform_settings WHERE id = 1`).
		Scan(&s.BaseDeliveryFee, &s.PerKmFee, &s.FreeDeliveryThreshold, &s.MinimumOrderAmount, &s.MaxDeliveryRadiusKm,
			&s.AgentCommissionPercent, &s.PlatformCommissionPercent, &s.EstablishmentCommissionPercent, &s.UpdatedBy, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) SaveSettings(ctx context.Context, s domain.PlatformSettings, audit domain.AuditEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO platform_settings (
				id, base_delivery_fee, per_km_fee, free_delivery_threshold, minimum_order_amount, max_delivery_radius_km,
				agent_commission_percent, platform_commission_percent, establishment_commission_percent, updated_by, updated_at
			) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				base_delivery_fee = EXCLUDED.base_delivery_fee,
				per_km_fee = EXCLUDED.per_km_fee,
				free_delivery_threshold = EXCLUDED.free_delivery_threshold,
				minimum_order_amount = EXCLUDED.minimum_order_amount,
				max_delivery_radius_km = EXCLUDED.max_delivery_radius_km,
				agent_commission_percent = EXCLUDED.agent_commission_percent,
				platform_commission_percent = EXCLUDED.platform_commission_percent,
				establishment_commission_percent = EXCLUDED.establishment_commission_percent,
				updated_by = EXCLUDED.updated_by,
				updated_at = EXCLUDED.updated_at`,
			s.BaseDeliveryFee, s.PerKmFee, s.FreeDeliveryThreshold, s.MinimumOrderAmount, s.MaxDeliveryRadiusKm,
			s.AgentCommissionPercent, s.PlatformCommissionPercent, s.EstablishmentCommissionPercent, s.UpdatedBy, s.UpdatedAt)
		if err != nil {
			return err
		}
		return insertAudit(ctx, tx, audit)
	})
}
