// internal/adapters/repository/schema.go
package repository

import (
	"context"
	"fmt"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL,
		status VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		last_login_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		last_login_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS establishments (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(32) NOT NULL,
		owner_name VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL DEFAULT '',
		license_number VARCHAR(128) NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL,
		rejection_reason TEXT NOT NULL DEFAULT '',
		reviewed_by TEXT NOT NULL DEFAULT '',
		reviewed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_agents (
		id TEXT PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		vehicle_type VARCHAR(32) NOT NULL,
		vehicle_plate VARCHAR(32) NOT NULL DEFAULT '',
		kyc_document_type VARCHAR(64) NOT NULL DEFAULT '',
		kyc_document_number VARCHAR(128) NOT NULL DEFAULT '',
		kyc_verified BOOLEAN NOT NULL DEFAULT FALSE,
		availability VARCHAR(16) NOT NULL DEFAULT 'offline',
		rating FLOAT NOT NULL DEFAULT 0,
		completed_deliveries BIGINT NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL,
		rejection_reason TEXT NOT NULL DEFAULT '',
		reviewed_by TEXT NOT NULL DEFAULT '',
		reviewed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		establishment_id TEXT NOT NULL REFERENCES establishments(id),
		agent_id TEXT REFERENCES delivery_agents(id),
		status VARCHAR(32) NOT NULL,
		items JSONB NOT NULL DEFAULT '[]',
		subtotal FLOAT NOT NULL,
		delivery_fee FLOAT NOT NULL,
		platform_commission FLOAT NOT NULL,
		agent_earning FLOAT NOT NULL,
		total FLOAT NOT NULL,
		delivery_address TEXT NOT NULL DEFAULT '',
		distance_km FLOAT NOT NULL DEFAULT 0,
		cancel_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		delivered_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS platform_settings (
		id SMALLINT PRIMARY KEY CHECK (id = 1),
		base_delivery_fee FLOAT NOT NULL,
		per_km_fee FLOAT NOT NULL,
		free_delivery_threshold FLOAT NOT NULL,
		minimum_order_amount FLOAT NOT NULL,
		max_delivery_radius_km FLOAT NOT NULL,
		agent_commission_percent FLOAT NOT NULL,
		platform_commission_percent FLOAT NOT NULL,
		establishment_commission_percent FLOAT NOT NULL,
		updated_by TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id TEXT PRIMARY KEY,
		admin_id TEXT NOT NULL,
		entity_type VARCHAR(32) NOT NULL,
		entity_id TEXT NOT NULL,
		action VARCHAR(64) NOT NULL,
		from_status VARCHAR(32) NOT NULL DEFAULT '',
		to_status VARCHAR(32) NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS establishments_status_idx ON establishments (status)`,
	`CREATE INDEX IF NOT EXISTS delivery_agents_status_idx ON delivery_agents (status)`,
	`CREATE INDEX IF NOT EXISTS orders_status_created_idx ON orders (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS audit_log_entity_idx ON audit_log (entity_type, entity_id, created_at DESC)`,
}

// Migrate creates the schema and seeds the default settings row.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to init DB: %w", err)
		}
	}
	d := domain.DefaultSettings()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO platform_settings (
			id, base_delivery_fee, per_km_fee, free_delivery_threshold, minimum_order_amount, max_delivery_radius_km,
			agent_commission_percent, platform_commission_percent, establishment_commission_percent, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO NOTHING`,
		d.BaseDeliveryFee, d.PerKmFee, d.FreeDeliveryThreshold, d.MinimumOrderAmount, d.MaxDeliveryRadiusKm,
		d.AgentCommissionPercent, d.PlatformCommissionPercent, d.EstablishmentCommissionPercent,
	)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}
