// internal/adapters/grpc/account_handlers.go
package grpc

import (
	"context"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

type (
	userList          = *adminpb.ListData[*domain.User]
	establishmentList = *adminpb.ListData[*domain.Establishment]
	agentList         = *adminpb.ListData[*domain.DeliveryAgent]
)

func (s *Server) ListUsers(ctx context.Context, req *adminpb.ListUsersRequest) (*adminpb.UserListResponse, error) {
	users, total, err := s.users.ListUsers(ctx, *req)
	if err != nil {
		return failure[userList](s, adminpb.MethodListUsers, err)
	}
	return ok("Users successfully fetched.", listData(users, total, req.Page))
}

func (s *Server) GetUser(ctx context.Context, req *adminpb.IDRequest) (*adminpb.UserResponse, error) {
	user, err := s.users.GetUser(ctx, req.ID)
	if err != nil {
		return failure[*domain.User](s, adminpb.MethodGetUser, err)
	}
	return ok("User fetched", user)
}

func (s *Server) UpdateUserStatus(ctx context.Context, req *adminpb.StatusRequest) (*adminpb.UserResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.SetUserStatus(ctx, actor, req.ID, domain.AccountStatus(req.Status), req.Reason)
	if err != nil {
		return failure[*domain.User](s, adminpb.MethodUpdateUserStatus, err)
	}
	return ok("User status updated", user)
}

func (s *Server) ListEstablishments(ctx context.Context, req *adminpb.ListEstablishmentsRequest) (*adminpb.EstablishmentListResponse, error) {
	items, total, err := s.onboarding.ListEstablishments(ctx, *req)
	if err != nil {
		return failure[establishmentList](s, adminpb.MethodListEstablishments, err)
	}
	return ok("Establishments successfully fetched.", listData(items, total, req.Page))
}

func (s *Server) GetEstablishment(ctx context.Context, req *adminpb.IDRequest) (*adminpb.EstablishmentResponse, error) {
	e, err := s.onboarding.GetEstablishment(ctx, req.ID)
	if err != nil {
		return failure[*domain.Establishment](s, adminpb.MethodGetEstablishment, err)
	}
	return ok("Establishment fetched", e)
}

func (s *Server) ApproveEstablishment(ctx context.Context, req *adminpb.IDRequest) (*adminpb.EstablishmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.onboarding.ApproveEstablishment(ctx, actor, req.ID)
	if err != nil {
		return failure[*domain.Establishment](s, adminpb.MethodApproveEstablishment, err)
	}
	return ok("Establishment approved", e)
}

func (s *Server) RejectEstablishment(ctx context.Context, req *adminpb.ReasonRequest) (*adminpb.EstablishmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.onboarding.RejectEstablishment(ctx, actor, req.ID, req.Reason)
	if err != nil {
		return failure[*domain.Establishment](s, adminpb.MethodRejectEstablishment, err)
	}
	return ok("Establishment rejected", e)
}

func (s *Server) UpdateEstablishmentStatus(ctx context.Context, req *adminpb.StatusRequest) (*adminpb.EstablishmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.onboarding.SetEstablishmentStatus(ctx, actor, req.ID, domain.AccountStatus(req.Status), req.Reason)
	if err != nil {
		return failure[*domain.Establishment](s, adminpb.MethodUpdateEstablishmentStatus, err)
	}
	return ok("Establishment status updated", e)
}

func (s *Server) ListAgents(ctx context.Context, req *adminpb.ListAgentsRequest) (*adminpb.AgentListResponse, error) {
	items, total, err := s.onboarding.ListAgents(ctx, *req)
	if err != nil {
		return failure[agentList](s, adminpb.MethodListAgents, err)
	}
	return ok("Delivery agents successfully fetched.", listData(items, total, req.Page))
}

func (s *Server) GetAgent(ctx context.Context, req *adminpb.IDRequest) (*adminpb.AgentResponse, error) {
	a, err := s.onboarding.GetAgent(ctx, req.ID)
	if err != nil {
		return failure[*domain.DeliveryAgent](s, adminpb.MethodGetAgent, err)
	}
	return ok("Delivery agent fetched", a)
}

func (s *Server) ApproveAgent(ctx context.Context, req *adminpb.IDRequest) (*adminpb.AgentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.onboarding.ApproveAgent(ctx, actor, req.ID)
	if err != nil {
		return failure[*domain.DeliveryAgent](s, adminpb.MethodApproveAgent, err)
	}
	return ok("Delivery agent approved", a)
}

func (s *Server) RejectAgent(ctx context.Context, req *adminpb.ReasonRequest) (*adminpb.AgentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.onboarding.RejectAgent(ctx, actor, req.ID, req.Reason)
	if err != nil {
		return failure[*domain.DeliveryAgent](s, adminpb.MethodRejectAgent, err)
	}
	return ok("Delivery agent rejected", a)
}

func (s *Server) UpdateAgentStatus(ctx context.Context, req *adminpb.StatusRequest) (*adminpb.AgentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.onboarding.SetAgentStatus(ctx, actor, req.ID, domain.AccountStatus(req.Status), req.Reason)
	if err != nil {
		return failure[*domain.DeliveryAgent](s, adminpb.MethodUpdateAgentStatus, err)
	}
	return ok("Delivery agent status updated", a)
}
