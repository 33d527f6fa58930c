// internal/adapters/grpc/adminpb/messages.go
package adminpb

import (
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

type Empty struct{}

// Response is the envelope every method answers with. Business failures
// are reported in Code/Message with Type "error"; only authentication and
// authorization failures surface as gRPC status errors.
type Response[T any] struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int64  `json:"code"`
	Data    T      `json:"data,omitempty"`
}

type ListData[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int64 `json:"current_page"`
	PerPage     int64 `json:"per_page"`
	TotalInPage int64 `json:"total_in_page"`
	LastPage    int64 `json:"last_page"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message     string        `json:"message"`
	Type        string        `json:"type"`
	Code        int64         `json:"code"`
	TokenType   string        `json:"token_type,omitempty"`
	ExpiresIn   int64         `json:"expires_in,omitempty"`
	AccessToken string        `json:"access_token,omitempty"`
	Data        *domain.Admin `json:"data,omitempty"`
}

type CreateAdminRequest struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type ReasonRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type StatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type ListUsersRequest = domain.UserFilter
type ListEstablishmentsRequest = domain.EstablishmentFilter
type ListAgentsRequest = domain.AgentFilter
type ListOrdersRequest = domain.OrderFilter
type ListAuditRequest = domain.AuditFilter

type UpdateSettingsRequest struct {
	Settings domain.PlatformSettings `json:"settings"`
}

// PreviewFeesRequest previews against the stored settings, or against
// Settings when given, so a draft can be checked before it is saved.
type PreviewFeesRequest struct {
	Subtotal   float64                  `json:"subtotal"`
	DistanceKm float64                  `json:"distance_km"`
	Settings   *domain.PlatformSettings `json:"settings,omitempty"`
}
