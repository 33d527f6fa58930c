// internal/domain/settings_test.go
package domain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlatformSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *PlatformSettings)
		wantErr bool
	}{
		{"defaults", func(s *PlatformSettings) {}, false},
		{"negative base fee", func(s *PlatformSettings) { s.BaseDeliveryFee = -1 }, true},
		{"negative threshold", func(s *PlatformSettings) { s.FreeDeliveryThreshold = -0.5 }, true},
		{"percent over 100", func(s *PlatformSettings) { s.EstablishmentCommissionPercent = 101 }, true},
		{"split not 100", func(s *PlatformSettings) { s.AgentCommissionPercent = 70 }, true},
		{"split within tolerance", func(s *PlatformSettings) {
			s.AgentCommissionPercent = 66.67
			s.PlatformCommissionPercent = 33.33
		}, false},
		{"zero radius", func(s *PlatformSettings) { s.MaxDeliveryRadiusKm = 0 }, true},
		{"NaN radius", func(s *PlatformSettings) { s.MaxDeliveryRadiusKm = math.NaN() }, true},
		{"infinite radius", func(s *PlatformSettings) { s.MaxDeliveryRadiusKm = math.Inf(1) }, true},
		{"infinite per km fee", func(s *PlatformSettings) { s.PerKmFee = math.Inf(1) }, true},
		{"NaN percent", func(s *PlatformSettings) { s.EstablishmentCommissionPercent = math.NaN() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestPlatformSettings_ValidateReportsFirstInvalidField(t *testing.T) {
	s := DefaultSettings()
	s.BaseDeliveryFee = -1
	s.MinimumOrderAmount = -1
	for i := 0; i < 20; i++ {
		err := s.Validate()
		if err == nil || !strings.Contains(err.Error(), "base_delivery_fee") {
			t.Fatalf("Validate() error = %v, want base_delivery_fee reported", err)
		}
	}
}

func TestPlatformSettings_Preview(t *testing.T) {
	s := DefaultSettings()

	got, err := s.Preview(40, 5)
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	want := FeePreview{
		Subtotal:                40,
		DistanceKm:              5,
		NominalDeliveryFee:      6.5,
		CustomerDeliveryFee:     6.5,
		AgentEarning:            5.2,
		PlatformDeliveryShare:   1.3,
		EstablishmentCommission: 6,
		EstablishmentPayout:     34,
		CustomerTotal:           46.5,
		PlatformNet:             7.3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preview() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlatformSettings_PreviewFreeDelivery(t *testing.T) {
	s := DefaultSettings()
	s.FreeDeliveryThreshold = 30

	got, err := s.Preview(40, 5)
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	if !got.FreeDelivery || got.CustomerDeliveryFee != 0 {
		t.Errorf("expected free delivery, got %+v", got)
	}
	if got.DeliverySubsidy != 6.5 || got.CustomerTotal != 40 {
		t.Errorf("subsidy = %v, total = %v, want 6.5, 40", got.DeliverySubsidy, got.CustomerTotal)
	}
	if got.AgentEarning != 5.2 {
		t.Errorf("agent earning must stay on the nominal fee, got %v", got.AgentEarning)
	}
	if got.PlatformNet != 0.8 {
		t.Errorf("PlatformNet = %v, want 0.8", got.PlatformNet)
	}
}

func TestPlatformSettings_PreviewErrors(t *testing.T) {
	s := DefaultSettings()

	if _, err := s.Preview(-1, 2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative subtotal error = %v", err)
	}
	if _, err := s.Preview(10, -2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative distance error = %v", err)
	}
	if _, err := s.Preview(10, 16); !errors.Is(err, ErrOutOfDeliveryRadius) {
		t.Errorf("out of radius error = %v", err)
	}
	if _, err := s.Preview(10, math.Inf(1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("infinite distance error = %v", err)
	}

	broken := s
	broken.MaxDeliveryRadiusKm = math.NaN()
	if _, err := broken.Preview(10, 500); !errors.Is(err, ErrOutOfDeliveryRadius) {
		t.Errorf("NaN radius error = %v", err)
	}

	p, err := s.Preview(3, 1)
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	if !p.BelowMinimum {
		t.Error("expected BelowMinimum for subtotal under minimum order amount")
	}
}
