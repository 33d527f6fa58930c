// internal/application/settings_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

const settingsKey = prefixSettings + "current"

type SettingsService struct {
	repo ports.SettingsRepository
	support
}

func NewSettingsService(repo ports.SettingsRepository, cache ports.CachePort, events ports.EventPublisher, log *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, support: newSupport(cache, events, log)}
}

// Get falls back to the defaults until settings are saved for the first time.
func (s *SettingsService) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, settingsKey); err == nil {
			var cached domain.PlatformSettings
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		d := domain.DefaultSettings()
		settings = &d
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, settingsKey, settings); err != nil {
			s.log.Warn("cache set failed", zap.String("key", settingsKey), zap.Error(err))
		}
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, actor Actor, settings domain.PlatformSettings) (*domain.PlatformSettings, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	previous, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.UpdatedBy = actor.AdminID
	settings.UpdatedAt = time.Now().UTC()
	audit := domain.NewAuditEntry(actor.AdminID, domain.EntitySettings, "platform", "updated", "", "", describeSettingsChange(*previous, settings))
	if err := s.repo.SaveSettings(ctx, settings, audit); err != nil {
		return nil, err
	}

	s.invalidate(ctx, prefixSettings, prefixAudit)
	s.publish(ctx, domain.NewEvent(domain.EntitySettings, "updated", "platform", actor.AdminID, map[string]string{
		"agent_commission_percent":         formatAmount(settings.AgentCommissionPercent),
		"platform_commission_percent":      formatAmount(settings.PlatformCommissionPercent),
		"establishment_commission_percent": formatAmount(settings.EstablishmentCommissionPercent),
		"base_delivery_fee":                formatAmount(settings.BaseDeliveryFee),
		"per_km_fee":                       formatAmount(settings.PerKmFee),
	}))
	s.log.Info("platform settings updated", zap.String("admin_id", actor.AdminID))
	return &settings, nil
}

func (s *SettingsService) Preview(ctx context.Context, subtotal, distanceKm float64) (*domain.FeePreview, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	p, err := settings.Preview(subtotal, distanceKm)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PreviewWith runs the calculator against unsaved settings, the way the
// settings form shows the effect of an edit before it is submitted.
func (s *SettingsService) PreviewWith(settings domain.PlatformSettings, subtotal, distanceKm float64) (*domain.FeePreview, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	p, err := settings.Preview(subtotal, distanceKm)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func describeSettingsChange(prev, next domain.PlatformSettings) string {
	fields := []struct {
		name     string
		old, new float64
	}{
		{"base_delivery_fee", prev.BaseDeliveryFee, next.BaseDeliveryFee},
		{"per_km_fee", prev.PerKmFee, next.PerKmFee},
		{"free_delivery_threshold", prev.FreeDeliveryThreshold, next.FreeDeliveryThreshold},
		{"minimum_order_amount", prev.MinimumOrderAmount, next.MinimumOrderAmount},
		{"max_delivery_radius_km", prev.MaxDeliveryRadiusKm, next.MaxDeliveryRadiusKm},
		{"agent_commission_percent", prev.AgentCommissionPercent, next.AgentCommissionPercent},
		{"platform_commission_percent", prev.PlatformCommissionPercent, next.PlatformCommissionPercent},
		{"establishment_commission_percent", prev.EstablishmentCommissionPercent, next.EstablishmentCommissionPercent},
	}
	var out string
	for _, f := range fields {
		if f.old == f.new {
			continue
		}
		if out != "" {
			out += "; "
		}
		out += fmt.Sprintf("%s %s -> %s", f.name, formatAmount(f.old), formatAmount(f.new))
	}
	return out
}
