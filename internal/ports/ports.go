// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"time"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *domain.Admin) error
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindAdminByID(ctx context.Context, id string) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type UserRepository interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, change domain.StatusChange) error
}

type EstablishmentRepository interface {
	ListEstablishments(ctx context.Context, filter domain.EstablishmentFilter) ([]*domain.Establishment, int64, error)
	GetEstablishment(ctx context.Context, id string) (*domain.Establishment, error)
	UpdateEstablishmentStatus(ctx context.Context, change domain.StatusChange) error
}

type AgentRepository interface {
	ListAgents(ctx context.Context, filter domain.AgentFilter) ([]*domain.DeliveryAgent, int64, error)
	GetAgent(ctx context.Context, id string) (*domain.DeliveryAgent, error)
	UpdateAgentStatus(ctx context.Context, change domain.StatusChange) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, change domain.StatusChange) error
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.PlatformSettings, error)
	SaveSettings(ctx context.Context, settings domain.PlatformSettings, audit domain.AuditEntry) error
}

type AuditRepository interface {
	ListAudit(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, int64, error)
}

type StatsRepository interface {
	CountUsersByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error)
	CountEstablishmentsByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error)
	CountEstablishmentsByType(ctx context.Context) (map[domain.EstablishmentType]int64, error)
	CountAgentsByStatus(ctx context.Context) (map[domain.AccountStatus]int64, error)
	CountOnlineAgents(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error)
	SumDeliveredRevenue(ctx context.Context) (domain.RevenueStats, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
