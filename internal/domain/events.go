// internal/domain/events.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

type EntityType string

const (
	EntityUser          EntityType = "user"
	EntityEstablishment EntityType = "establishment"
	EntityAgent         EntityType = "agent"
	EntityOrder         EntityType = "order"
	EntitySettings      EntityType = "settings"
)

// AuditEntry records one moderation action taken by a staff member.
type AuditEntry struct {
	ID         string     `json:"id"`
	AdminID    string     `json:"admin_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Action     string     `json:"action"`
	FromStatus string     `json:"from_status,omitempty"`
	ToStatus   string     `json:"to_status,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewAuditEntry(adminID string, entity EntityType, entityID, action, from, to, reason string) AuditEntry {
	return AuditEntry{
		ID:         uuid.NewString(),
		AdminID:    adminID,
		EntityType: entity,
		EntityID:   entityID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	}
}

// StatusChange is what a repository needs to apply a conditional status
// update together with its audit row.
type StatusChange struct {
	ID     string
	From   string
	To     string
	Reason string
	Audit  AuditEntry
}

// Event is published after a moderation write has been committed.
// Type doubles as the routing key, e.g. "establishment.approved".
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	EntityType EntityType        `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	AdminID    string            `json:"admin_id"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func NewEvent(entity EntityType, action, entityID, adminID string, data map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       string(entity) + "." + action,
		EntityType: entity,
		EntityID:   entityID,
		AdminID:    adminID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// DashboardStats are the aggregate metrics shown on the dashboard home.
type DashboardStats struct {
	UsersByStatus          map[AccountStatus]int64     `json:"users_by_status"`
	EstablishmentsByStatus map[AccountStatus]int64     `json:"establishments_by_status"`
	EstablishmentsByType   map[EstablishmentType]int64 `json:"establishments_by_type"`
	AgentsByStatus         map[AccountStatus]int64     `json:"agents_by_status"`
	OnlineAgents           int64                       `json:"online_agents"`
	OrdersByStatus         map[OrderStatus]int64       `json:"orders_by_status"`
	TotalUsers             int64                       `json:"total_users"`
	TotalOrders            int64                       `json:"total_orders"`
	PendingOnboarding      int64                       `json:"pending_onboarding"`
	Revenue                RevenueStats                `json:"revenue"`
	GeneratedAt            time.Time                   `json:"generated_at"`
}

type RevenueStats struct {
	GrossOrderValue    float64 `json:"gross_order_value"`
	DeliveryFees       float64 `json:"delivery_fees"`
	PlatformCommission float64 `json:"platform_commission"`
	AgentEarnings      float64 `json:"agent_earnings"`
	PlatformRevenue    float64 `json:"platform_revenue"`
}
