// internal/domain/settings.go
package domain

import (
	"fmt"
	"math"
	"time"
)

const commissionTolerance = 0.01

// PlatformSettings is the single platform-wide delivery and commission
// configuration. Percentages are expressed in [0,100].
type PlatformSettings struct {
	BaseDeliveryFee                float64   `json:"base_delivery_fee"`
	PerKmFee                       float64   `json:"per_km_fee"`
	FreeDeliveryThreshold          float64   `json:"free_delivery_threshold"`
	MinimumOrderAmount             float64   `json:"minimum_order_amount"`
	MaxDeliveryRadiusKm            float64   `json:"max_delivery_radius_km"`
	AgentCommissionPercent         float64   `json:"agent_commission_percent"`
	PlatformCommissionPercent      float64   `json:"platform_commission_percent"`
	EstablishmentCommissionPercent float64   `json:"establishment_commission_percent"`
	UpdatedBy                      string    `json:"updated_by,omitempty"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

func DefaultSettings() PlatformSettings {
	return PlatformSettings{
		BaseDeliveryFee:                2.5,
		PerKmFee:                       0.8,
		FreeDeliveryThreshold:          0,
		MinimumOrderAmount:             5,
		MaxDeliveryRadiusKm:            15,
		AgentCommissionPercent:         80,
		PlatformCommissionPercent:      20,
		EstablishmentCommissionPercent: 15,
	}
}

type namedValue struct {
	name  string
	value float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s PlatformSettings) Validate() error {
	fees := []namedValue{
		{"base_delivery_fee", s.BaseDeliveryFee},
		{"per_km_fee", s.PerKmFee},
		{"free_delivery_threshold", s.FreeDeliveryThreshold},
		{"minimum_order_amount", s.MinimumOrderAmount},
	}
	for _, f := range fees {
		if !finite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, f.name)
		}
	}
	percents := []namedValue{
		{"agent_commission_percent", s.AgentCommissionPercent},
		{"platform_commission_percent", s.PlatformCommissionPercent},
		{"establishment_commission_percent", s.EstablishmentCommissionPercent},
	}
	for _, p := range percents {
		if !(p.value >= 0 && p.value <= 100) {
			return fmt.Errorf("%w: %s must be between 0 and 100", ErrInvalidInput, p.name)
		}
	}
	if math.Abs(s.AgentCommissionPercent+s.PlatformCommissionPercent-100) > commissionTolerance {
		return fmt.Errorf("%w: agent and platform commission must add up to 100", ErrInvalidInput)
	}
	if !finite(s.MaxDeliveryRadiusKm) || !(s.MaxDeliveryRadiusKm > 0) {
		return fmt.Errorf("%w: max_delivery_radius_km must be positive", ErrInvalidInput)
	}
	return nil
}

type FeePreview struct {
	Subtotal                float64 `json:"subtotal"`
	DistanceKm              float64 `json:"distance_km"`
	NominalDeliveryFee      float64 `json:"nominal_delivery_fee"`
	CustomerDeliveryFee     float64 `json:"customer_delivery_fee"`
	FreeDelivery            bool    `json:"free_delivery"`
	DeliverySubsidy         float64 `json:"delivery_subsidy"`
	AgentEarning            float64 `json:"agent_earning"`
	PlatformDeliveryShare   float64 `json:"platform_delivery_share"`
	EstablishmentCommission float64 `json:"establishment_commission"`
	EstablishmentPayout     float64 `json:"establishment_payout"`
	CustomerTotal           float64 `json:"customer_total"`
	PlatformNet             float64 `json:"platform_net"`
	BelowMinimum            bool    `json:"below_minimum"`
}

// Preview computes what each party pays or earns for one order under s.
func (s PlatformSettings) Preview(subtotal, distanceKm float64) (FeePreview, error) {
	if !finite(subtotal) || !finite(distanceKm) || subtotal < 0 || distanceKm < 0 {
		return FeePreview{}, fmt.Errorf("%w: subtotal and distance must not be negative", ErrInvalidInput)
	}
	if !(distanceKm <= s.MaxDeliveryRadiusKm) {
		return FeePreview{}, ErrOutOfDeliveryRadius
	}

	nominal := round2(s.BaseDeliveryFee + s.PerKmFee*distanceKm)
	free := s.FreeDeliveryThreshold > 0 && subtotal >= s.FreeDeliveryThreshold
	customerFee := nominal
	if free {
		customerFee = 0
	}

	p := FeePreview{
		Subtotal:                round2(subtotal),
		DistanceKm:              distanceKm,
		NominalDeliveryFee:      nominal,
		CustomerDeliveryFee:     customerFee,
		FreeDelivery:            free,
		DeliverySubsidy:         round2(nominal - customerFee),
		AgentEarning:            round2(nominal * s.AgentCommissionPercent / 100),
		PlatformDeliveryShare:   round2(nominal * s.PlatformCommissionPercent / 100),
		EstablishmentCommission: round2(subtotal * s.EstablishmentCommissionPercent / 100),
		BelowMinimum:            subtotal < s.MinimumOrderAmount,
	}
	p.EstablishmentPayout = round2(subtotal - p.EstablishmentCommission)
	p.CustomerTotal = round2(subtotal + customerFee)
	p.PlatformNet = round2(p.PlatformDeliveryShare + p.EstablishmentCommission - p.DeliverySubsidy)
	return p, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
