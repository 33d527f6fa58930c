// internal/adapters/grpc/adminpb/client.go
package adminpb

import (
	"context"

	"google.golang.org/grpc"
)

// AdminServiceClient calls the admin service. Every call is sent with the
// JSON content subtype, so no dial option is needed on the connection.
type AdminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) *AdminServiceClient {
	return &AdminServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AdminServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginRequest, LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *AdminServiceClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[Empty, EmptyResponse](ctx, c.cc, MethodLogout, in, opts)
}

func (c *AdminServiceClient) Me(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AdminResponse, error) {
	return invoke[Empty, AdminResponse](ctx, c.cc, MethodMe, in, opts)
}

func (c *AdminServiceClient) CreateAdmin(ctx context.Context, in *CreateAdminRequest, opts ...grpc.CallOption) (*AdminResponse, error) {
	return invoke[CreateAdminRequest, AdminResponse](ctx, c.cc, MethodCreateAdmin, in, opts)
}

func (c *AdminServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*UserListResponse, error) {
	return invoke[ListUsersRequest, UserListResponse](ctx, c.cc, MethodListUsers, in, opts)
}

func (c *AdminServiceClient) GetUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[IDRequest, UserResponse](ctx, c.cc, MethodGetUser, in, opts)
}

func (c *AdminServiceClient) UpdateUserStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[StatusRequest, UserResponse](ctx, c.cc, MethodUpdateUserStatus, in, opts)
}

func (c *AdminServiceClient) ListEstablishments(ctx context.Context, in *ListEstablishmentsRequest, opts ...grpc.CallOption) (*EstablishmentListResponse, error) {
	return invoke[ListEstablishmentsRequest, EstablishmentListResponse](ctx, c.cc, MethodListEstablishments, in, opts)
}

func (c *AdminServiceClient) GetEstablishment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*EstablishmentResponse, error) {
	return invoke[IDRequest, EstablishmentResponse](ctx, c.cc, MethodGetEstablishment, in, opts)
}

func (c *AdminServiceClient) ApproveEstablishment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*EstablishmentResponse, error) {
	return invoke[IDRequest, EstablishmentResponse](ctx, c.cc, MethodApproveEstablishment, in, opts)
}

func (c *AdminServiceClient) RejectEstablishment(ctx context.Context, in *ReasonRequest, opts ...grpc.CallOption) (*EstablishmentResponse, error) {
	return invoke[ReasonRequest, EstablishmentResponse](ctx, c.cc, MethodRejectEstablishment, in, opts)
}

func (c *AdminServiceClient) UpdateEstablishmentStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*EstablishmentResponse, error) {
	return invoke[StatusRequest, EstablishmentResponse](ctx, c.cc, MethodUpdateEstablishmentStatus, in, opts)
}

func (c *AdminServiceClient) ListAgents(ctx context.Context, in *ListAgentsRequest, opts ...grpc.CallOption) (*AgentListResponse, error) {
	return invoke[ListAgentsRequest, AgentListResponse](ctx, c.cc, MethodListAgents, in, opts)
}

func (c *AdminServiceClient) GetAgent(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*AgentResponse, error) {
	return invoke[IDRequest, AgentResponse](ctx, c.cc, MethodGetAgent, in, opts)
}

func (c *AdminServiceClient) ApproveAgent(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*AgentResponse, error) {
	return invoke[IDRequest, AgentResponse](ctx, c.cc, MethodApproveAgent, in, opts)
}

func (c *AdminServiceClient) RejectAgent(ctx context.Context, in *ReasonRequest, opts ...grpc.CallOption) (*AgentResponse, error) {
	return invoke[ReasonRequest, AgentResponse](ctx, c.cc, MethodRejectAgent, in, opts)
}

func (c *AdminServiceClient) UpdateAgentStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*AgentResponse, error) {
	return invoke[StatusRequest, AgentResponse](ctx, c.cc, MethodUpdateAgentStatus, in, opts)
}

func (c *AdminServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*OrderListResponse, error) {
	return invoke[ListOrdersRequest, OrderListResponse](ctx, c.cc, MethodListOrders, in, opts)
}

func (c *AdminServiceClient) GetOrder(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[IDRequest, OrderResponse](ctx, c.cc, MethodGetOrder, in, opts)
}

func (c *AdminServiceClient) CancelOrder(ctx context.Context, in *ReasonRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[ReasonRequest, OrderResponse](ctx, c.cc, MethodCancelOrder, in, opts)
}

func (c *AdminServiceClient) UpdateOrderStatus(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	return invoke[StatusRequest, OrderResponse](ctx, c.cc, MethodUpdateOrderStatus, in, opts)
}

func (c *AdminServiceClient) GetDashboardStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StatsResponse, error) {
	return invoke[Empty, StatsResponse](ctx, c.cc, MethodGetDashboardStats, in, opts)
}

func (c *AdminServiceClient) GetSettings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[Empty, SettingsResponse](ctx, c.cc, MethodGetSettings, in, opts)
}

func (c *AdminServiceClient) UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[UpdateSettingsRequest, SettingsResponse](ctx, c.cc, MethodUpdateSettings, in, opts)
}

func (c *AdminServiceClient) PreviewFees(ctx context.Context, in *PreviewFeesRequest, opts ...grpc.CallOption) (*PreviewResponse, error) {
	return invoke[PreviewFeesRequest, PreviewResponse](ctx, c.cc, MethodPreviewFees, in, opts)
}

func (c *AdminServiceClient) ListAuditLog(ctx context.Context, in *ListAuditRequest, opts ...grpc.CallOption) (*AuditListResponse, error) {
	return invoke[ListAuditRequest, AuditListResponse](ctx, c.cc, MethodListAuditLog, in, opts)
}
