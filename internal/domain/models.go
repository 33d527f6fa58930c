// internal/domain/models.go
package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type Admin struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	LastLoginAt  *time.Time    `json:"last_login_at,omitempty"`
}

type User struct {
	ID          string        `json:"id"`
	FullName    string        `json:"full_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Status      AccountStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	LastLoginAt *time.Time    `json:"last_login_at,omitempty"`
}

// EstablishmentType is the vertical an establishment sells in.
type EstablishmentType string

const (
	EstablishmentRestaurant   EstablishmentType = "restaurant"
	EstablishmentFoodTruck    EstablishmentType = "food_truck"
	EstablishmentGroceryShop  EstablishmentType = "grocery_shop"
	EstablishmentBakery       EstablishmentType = "bakery"
	EstablishmentCafe         EstablishmentType = "cafe"
	EstablishmentCloudKitchen EstablishmentType = "cloud_kitchen"
)

var EstablishmentTypes = []EstablishmentType{
	EstablishmentRestaurant,
	EstablishmentFoodTruck,
	EstablishmentGroceryShop,
	EstablishmentBakery,
	EstablishmentCafe,
	EstablishmentCloudKitchen,
}

func (t EstablishmentType) IsValid() bool {
	for _, v := range EstablishmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Establishment struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            EstablishmentType `json:"type"`
	OwnerName       string            `json:"owner_name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Address         string            `json:"address"`
	City            string            `json:"city"`
	LicenseNumber   string            `json:"license_number"`
	Status          AccountStatus     `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type VehicleType string

const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleScooter    VehicleType = "scooter"
	VehicleCar        VehicleType = "car"
)

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleBicycle, VehicleMotorcycle, VehicleScooter, VehicleCar:
		return true
	default:
		return false
	}
}

type Availability string

const (
	AvailabilityOnline  Availability = "online"
	AvailabilityOffline Availability = "offline"
	AvailabilityBusy    Availability = "busy"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityOnline, AvailabilityOffline, AvailabilityBusy:
		return true
	default:
		return false
	}
}

type KYC struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Verified       bool   `json:"verified"`
}

type DeliveryAgent struct {
	ID                  string        `json:"id"`
	FullName            string        `json:"full_name"`
	Email               string        `json:"email"`
	Phone               string        `json:"phone"`
	VehicleType         VehicleType   `json:"vehicle_type"`
	VehiclePlate        string        `json:"vehicle_plate"`
	KYC                 KYC           `json:"kyc"`
	Availability        Availability  `json:"availability"`
	Rating              float64       `json:"rating"`
	CompletedDeliveries int64         `json:"completed_deliveries"`
	Status              AccountStatus `json:"status"`
	RejectionReason     string        `json:"rejection_reason,omitempty"`
	ReviewedBy          string        `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Order struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	EstablishmentID    string      `json:"establishment_id"`
	AgentID            string      `json:"agent_id,omitempty"`
	Status             OrderStatus `json:"status"`
	Items              []OrderItem `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	DeliveryFee        float64     `json:"delivery_fee"`
	PlatformCommission float64     `json:"platform_commission"`
	AgentEarning       float64     `json:"agent_earning"`
	Total              float64     `json:"total"`
	DeliveryAddress    string      `json:"delivery_address"`
	DistanceKm         float64     `json:"distance_km"`
	CancelReason       string      `json:"cancel_reason,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	DeliveredAt        *time.Time  `json:"delivered_at,omitempty"`
}
