// internal/application/onboarding_service.go
package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/ports"
)

var errKYCUnverified = fmt.Errorf("%w: agent KYC is not verified", domain.ErrInvalidInput)

// OnboardingService reviews establishments and delivery agents.
type OnboardingService struct {
	establishments ports.EstablishmentRepository
	agents         ports.AgentRepository
	support
}

func NewOnboardingService(establishments ports.EstablishmentRepository, agents ports.AgentRepository, cache ports.CachePort, events ports.EventPublisher, log *zap.Logger) *OnboardingService {
	return &OnboardingService{
		establishments: establishments,
		agents:         agents,
		support:        newSupport(cache, events, log),
	}
}

func (s *OnboardingService) ListEstablishments(ctx context.Context, filter domain.EstablishmentFilter) ([]*domain.Establishment, int64, error) {
	filter.Page = filter.Page.Normalize()
	return cachedList(ctx, s.support, cacheKey(prefixEstablishments, filter), func() ([]*domain.Establishment, int64, error) {
		return s.establishments.ListEstablishments(ctx, filter)
	})
}

func (s *OnboardingService) GetEstablishment(ctx context.Context, id string) (*domain.Establishment, error) {
	e, err := s.establishments.GetEstablishment(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *OnboardingService) ApproveEstablishment(ctx context.Context, actor Actor, id string) (*domain.Establishment, error) {
	return s.reviewEstablishment(ctx, actor, id, domain.StatusActive, "")
}

func (s *OnboardingService) RejectEstablishment(ctx context.Context, actor Actor, id, reason string) (*domain.Establishment, error) {
	return s.reviewEstablishment(ctx, actor, id, domain.StatusInactive, reason)
}

// reviewEstablishment only accepts pending establishments.
func (s *OnboardingService) reviewEstablishment(ctx context.Context, actor Actor, id string, to domain.AccountStatus, reason string) (*domain.Establishment, error) {
	e, err := s.GetEstablishment(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.StatusPending {
		return nil, domain.ErrInvalidTransition
	}
	return s.applyEstablishmentStatus(ctx, actor, e, to, reason)
}

func (s *OnboardingService) SetEstablishmentStatus(ctx context.Context, actor Actor, id string, to domain.AccountStatus, reason string) (*domain.Establishment, error) {
	e, err := s.GetEstablishment(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyEstablishmentStatus(ctx, actor, e, to, reason)
}

func (s *OnboardingService) applyEstablishmentStatus(ctx context.Context, actor Actor, e *domain.Establishment, to domain.AccountStatus, reason string) (*domain.Establishment, error) {
	from := e.Status
	if err := checkAccountTransition(from, to, reason); err != nil {
		return nil, err
	}
	action := statusAction(from, to)
	change := domain.StatusChange{
		ID:     e.ID,
		From:   string(from),
		To:     string(to),
		Reason: reason,
		Audit:  domain.NewAuditEntry(actor.AdminID, domain.EntityEstablishment, e.ID, action, string(from), string(to), reason),
	}
	if err := s.establishments.UpdateEstablishmentStatus(ctx, change); err != nil {
		return nil, err
	}

	s.invalidate(ctx, prefixEstablishments, prefixStats, prefixAudit)
	s.publish(ctx, domain.NewEvent(domain.EntityEstablishment, action, e.ID, actor.AdminID, map[string]string{
		"name":   e.Name,
		"email":  e.Email,
		"status": string(to),
		"reason": reason,
	}))
	s.log.Info("establishment status changed",
		zap.String("establishment_id", e.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("admin_id", actor.AdminID))

	updated := *e
	updated.Status = to
	updated.UpdatedAt = change.Audit.CreatedAt
	if from == domain.StatusPending {
		reviewedAt := change.Audit.CreatedAt
		updated.ReviewedBy = actor.AdminID
		updated.ReviewedAt = &reviewedAt
	}
	if action == "rejected" {
		updated.RejectionReason = reason
	}
	return &updated, nil
}

func (s *OnboardingService) ListAgents(ctx context.Context, filter domain.AgentFilter) ([]*domain.DeliveryAgent, int64, error) {
	filter.Page = filter.Page.Normalize()
	return cachedList(ctx, s.support, cacheKey(prefixAgents, filter), func() ([]*domain.DeliveryAgent, int64, error) {
		return s.agents.ListAgents(ctx, filter)
	})
}

func (s *OnboardingService) GetAgent(ctx context.Context, id string) (*domain.DeliveryAgent, error) {
	a, err := s.agents.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *OnboardingService) ApproveAgent(ctx context.Context, actor Actor, id string) (*domain.DeliveryAgent, error) {
	return s.reviewAgent(ctx, actor, id, domain.StatusActive, "")
}

func (s *OnboardingService) RejectAgent(ctx context.Context, actor Actor, id, reason string) (*domain.DeliveryAgent, error) {
	return s.reviewAgent(ctx, actor, id, domain.StatusInactive, reason)
}

func (s *OnboardingService) reviewAgent(ctx context.Context, actor Actor, id string, to domain.AccountStatus, reason string) (*domain.DeliveryAgent, error) {
	a, err := s.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.StatusPending {
		return nil, domain.ErrInvalidTransition
	}
	return s.applyAgentStatus(ctx, actor, a, to, reason)
}

func (s *OnboardingService) SetAgentStatus(ctx context.Context, actor Actor, id string, to domain.AccountStatus, reason string) (*domain.DeliveryAgent, error) {
	a, err := s.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyAgentStatus(ctx, actor, a, to, reason)
}

func (s *OnboardingService) applyAgentStatus(ctx context.Context, actor Actor, a *domain.DeliveryAgent, to domain.AccountStatus, reason string) (*domain.DeliveryAgent, error) {
	from := a.Status
	if err := checkAccountTransition(from, to, reason); err != nil {
		return nil, err
	}
	// Approval needs verified KYC whichever endpoint performs it.
	if from == domain.StatusPending && to == domain.StatusActive && !a.KYC.Verified {
		return nil, errKYCUnverified
	}
	action := statusAction(from, to)
	change := domain.StatusChange{
		ID:     a.ID,
		From:   string(from),
		To:     string(to),
		Reason: reason,
		Audit:  domain.NewAuditEntry(actor.AdminID, domain.EntityAgent, a.ID, action, string(from), string(to), reason),
	}
	if err := s.agents.UpdateAgentStatus(ctx, change); err != nil {
		return nil, err
	}

	s.invalidate(ctx, prefixAgents, prefixStats, prefixAudit)
	s.publish(ctx, domain.NewEvent(domain.EntityAgent, action, a.ID, actor.AdminID, map[string]string{
		"name":   a.FullName,
		"phone":  a.Phone,
		"status": string(to),
		"reason": reason,
	}))
	s.log.Info("agent status changed",
		zap.String("agent_id", a.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("admin_id", actor.AdminID))

	updated := *a
	updated.Status = to
	updated.UpdatedAt = change.Audit.CreatedAt
	if from == domain.StatusPending {
		reviewedAt := change.Audit.CreatedAt
		updated.ReviewedBy = actor.AdminID
		updated.ReviewedAt = &reviewedAt
	}
	if action == "rejected" {
		updated.RejectionReason = reason
	}
	return &updated, nil
}
