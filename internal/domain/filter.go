// internal/domain/filter.go
package domain

import "time"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type Page struct {
	Limit int64 `json:"limit"`
	Page  int64 `json:"page"`
}

func (p Page) Normalize() Page {
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

func (p Page) Offset() int64 {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

func (p Page) LastPage(total int64) int64 {
	n := p.Normalize()
	if total <= 0 {
		return 0
	}
	return (total + n.Limit - 1) / n.Limit
}

type UserFilter struct {
	Page
	Statuses []AccountStatus `json:"statuses,omitempty"`
	Search   string          `json:"search,omitempty"`
}

type EstablishmentFilter struct {
	Page
	Statuses []AccountStatus     `json:"statuses,omitempty"`
	Types    []EstablishmentType `json:"types,omitempty"`
	City     string              `json:"city,omitempty"`
	Search   string              `json:"search,omitempty"`
}

type AgentFilter struct {
	Page
	Statuses     []AccountStatus `json:"statuses,omitempty"`
	VehicleTypes []VehicleType   `json:"vehicle_types,omitempty"`
	Availability Availability    `json:"availability,omitempty"`
	KYCVerified  *bool           `json:"kyc_verified,omitempty"`
	Search       string          `json:"search,omitempty"`
}

type OrderFilter struct {
	Page
	Statuses        []OrderStatus `json:"statuses,omitempty"`
	UserID          string        `json:"user_id,omitempty"`
	EstablishmentID string        `json:"establishment_id,omitempty"`
	AgentID         string        `json:"agent_id,omitempty"`
	From            *time.Time    `json:"from,omitempty"`
	To              *time.Time    `json:"to,omitempty"`
}

type AuditFilter struct {
	Page
	EntityType EntityType `json:"entity_type,omitempty"`
	EntityID   string     `json:"entity_id,omitempty"`
	AdminID    string     `json:"admin_id,omitempty"`
}
