// internal/adapters/grpc/adminpb/service.go
package adminpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

const ServiceName = "admin.AdminService"

const (
	MethodLogin                     = "Login"
	MethodLogout                    = "Logout"
	MethodMe                        = "Me"
	MethodCreateAdmin               = "CreateAdmin"
	MethodListUsers                 = "ListUsers"
	MethodGetUser                   = "GetUser"
	MethodUpdateUserStatus          = "UpdateUserStatus"
	MethodListEstablishments        = "ListEstablishments"
	MethodGetEstablishment          = "GetEstablishment"
	MethodApproveEstablishment      = "ApproveEstablishment"
	MethodRejectEstablishment       = "RejectEstablishment"
	MethodUpdateEstablishmentStatus = "UpdateEstablishmentStatus"
	MethodListAgents                = "ListAgents"
	MethodGetAgent                  = "GetAgent"
	MethodApproveAgent              = "ApproveAgent"
	MethodRejectAgent               = "RejectAgent"
	MethodUpdateAgentStatus         = "UpdateAgentStatus"
	MethodListOrders                = "ListOrders"
	MethodGetOrder                  = "GetOrder"
	MethodCancelOrder               = "CancelOrder"
	MethodUpdateOrderStatus         = "UpdateOrderStatus"
	MethodGetDashboardStats         = "GetDashboardStats"
	MethodGetSettings               = "GetSettings"
	MethodUpdateSettings            = "UpdateSettings"
	MethodPreviewFees               = "PreviewFees"
	MethodListAuditLog              = "ListAuditLog"
)

// FullMethod returns the "/service/method" path used in interceptors.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type (
	AdminResponse             = Response[*domain.Admin]
	UserResponse              = Response[*domain.User]
	UserListResponse          = Response[*ListData[*domain.User]]
	EstablishmentResponse     = Response[*domain.Establishment]
	EstablishmentListResponse = Response[*ListData[*domain.Establishment]]
	AgentResponse             = Response[*domain.DeliveryAgent]
	AgentListResponse         = Response[*ListData[*domain.DeliveryAgent]]
	OrderResponse             = Response[*domain.Order]
	OrderListResponse         = Response[*ListData[*domain.Order]]
	StatsResponse             = Response[*domain.DashboardStats]
	SettingsResponse          = Response[*domain.PlatformSettings]
	PreviewResponse           = Response[*domain.FeePreview]
	AuditListResponse         = Response[*ListData[*domain.AuditEntry]]
	EmptyResponse             = Response[*Empty]
)

type AdminServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *Empty) (*EmptyResponse, error)
	Me(context.Context, *Empty) (*AdminResponse, error)
	CreateAdmin(context.Context, *CreateAdminRequest) (*AdminResponse, error)

	ListUsers(context.Context, *ListUsersRequest) (*UserListResponse, error)
	GetUser(context.Context, *IDRequest) (*UserResponse, error)
	UpdateUserStatus(context.Context, *StatusRequest) (*UserResponse, error)

	ListEstablishments(context.Context, *ListEstablishmentsRequest) (*EstablishmentListResponse, error)
	GetEstablishment(context.Context, *IDRequest) (*EstablishmentResponse, error)
	ApproveEstablishment(context.Context, *IDRequest) (*EstablishmentResponse, error)
	RejectEstablishment(context.Context, *ReasonRequest) (*EstablishmentResponse, error)
	UpdateEstablishmentStatus(context.Context, *StatusRequest) (*EstablishmentResponse, error)

	ListAgents(context.Context, *ListAgentsRequest) (*AgentListResponse, error)
	GetAgent(context.Context, *IDRequest) (*AgentResponse, error)
	ApproveAgent(context.Context, *IDRequest) (*AgentResponse, error)
	RejectAgent(context.Context, *ReasonRequest) (*AgentResponse, error)
	UpdateAgentStatus(context.Context, *StatusRequest) (*AgentResponse, error)

	ListOrders(context.Context, *ListOrdersRequest) (*OrderListResponse, error)
	GetOrder(context.Context, *IDRequest) (*OrderResponse, error)
	CancelOrder(context.Context, *ReasonRequest) (*OrderResponse, error)
	UpdateOrderStatus(context.Context, *StatusRequest) (*OrderResponse, error)

	GetDashboardStats(context.Context, *Empty) (*StatsResponse, error)
	GetSettings(context.Context, *Empty) (*SettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*SettingsResponse, error)
	PreviewFees(context.Context, *PreviewFeesRequest) (*PreviewResponse, error)
	ListAuditLog(context.Context, *ListAuditRequest) (*AuditListResponse, error)
}

// UnimplementedAdminServiceServer answers codes.Unimplemented for every
// method. Embed it to stay forward compatible.
type UnimplementedAdminServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedAdminServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented(MethodLogin)
}
func (UnimplementedAdminServiceServer) Logout(context.Context, *Empty) (*EmptyResponse, error) {
	return nil, unimplemented(MethodLogout)
}
func (UnimplementedAdminServiceServer) Me(context.Context, *Empty) (*AdminResponse, error) {
	return nil, unimplemented(MethodMe)
}
func (UnimplementedAdminServiceServer) CreateAdmin(context.Context, *CreateAdminRequest) (*AdminResponse, error) {
	return nil, unimplemented(MethodCreateAdmin)
}
func (UnimplementedAdminServiceServer) ListUsers(context.Context, *ListUsersRequest) (*UserListResponse, error) {
	return nil, unimplemented(MethodListUsers)
}
func (UnimplementedAdminServiceServer) GetUser(context.Context, *IDRequest) (*UserResponse, error) {
	return nil, unimplemented(MethodGetUser)
}
func (UnimplementedAdminServiceServer) UpdateUserStatus(context.Context, *StatusRequest) (*UserResponse, error) {
	return nil, unimplemented(MethodUpdateUserStatus)
}
func (UnimplementedAdminServiceServer) ListEstablishments(context.Context, *ListEstablishmentsRequest) (*EstablishmentListResponse, error) {
	return nil, unimplemented(MethodListEstablishments)
}
func (UnimplementedAdminServiceServer) GetEstablishment(context.Context, *IDRequest) (*EstablishmentResponse, error) {
	return nil, unimplemented(MethodGetEstablishment)
}
func (UnimplementedAdminServiceServer) ApproveEstablishment(context.Context, *IDRequest) (*EstablishmentResponse, error) {
	return nil, unimplemented(MethodApproveEstablishment)
}
func (UnimplementedAdminServiceServer) RejectEstablishment(context.Context, *ReasonRequest) (*EstablishmentResponse, error) {
	return nil, unimplemented(MethodRejectEstablishment)
}
func (UnimplementedAdminServiceServer) UpdateEstablishmentStatus(context.Context, *StatusRequest) (*EstablishmentResponse, error) {
	return nil, unimplemented(MethodUpdateEstablishmentStatus)
}
func (UnimplementedAdminServiceServer) ListAgents(context.Context, *ListAgentsRequest) (*AgentListResponse, error) {
	return nil, unimplemented(MethodListAgents)
}
func (UnimplementedAdminServiceServer) GetAgent(context.Context, *IDRequest) (*AgentResponse, error) {
	return nil, unimplemented(MethodGetAgent)
}
func (UnimplementedAdminServiceServer) ApproveAgent(context.Context, *IDRequest) (*AgentResponse, error) {
	return nil, unimplemented(MethodApproveAgent)
}
func (UnimplementedAdminServiceServer) RejectAgent(context.Context, *ReasonRequest) (*AgentResponse, error) {
	return nil, unimplemented(MethodRejectAgent)
}
func (UnimplementedAdminServiceServer) UpdateAgentStatus(context.Context, *StatusRequest) (*AgentResponse, error) {
	return nil, unimplemented(MethodUpdateAgentStatus)
}
func (UnimplementedAdminServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*OrderListResponse, error) {
	return nil, unimplemented(MethodListOrders)
}
func (UnimplementedAdminServiceServer) GetOrder(context.Context, *IDRequest) (*OrderResponse, error) {
	return nil, unimplemented(MethodGetOrder)
}
func (UnimplementedAdminServiceServer) CancelOrder(context.Context, *ReasonRequest) (*OrderResponse, error) {
	return nil, unimplemented(MethodCancelOrder)
}
func (UnimplementedAdminServiceServer) UpdateOrderStatus(context.Context, *StatusRequest) (*OrderResponse, error) {
	return nil, unimplemented(MethodUpdateOrderStatus)
}
func (UnimplementedAdminServiceServer) GetDashboardStats(context.Context, *Empty) (*StatsResponse, error) {
	return nil, unimplemented(MethodGetDashboardStats)
}
func (UnimplementedAdminServiceServer) GetSettings(context.Context, *Empty) (*SettingsResponse, error) {
	return nil, unimplemented(MethodGetSettings)
}
func (UnimplementedAdminServiceServer) UpdateSettings(context.Context, *UpdateSettingsRequest) (*SettingsResponse, error) {
	return nil, unimplemented(MethodUpdateSettings)
}
func (UnimplementedAdminServiceServer) PreviewFees(context.Context, *PreviewFeesRequest) (*PreviewResponse, error) {
	return nil, unimplemented(MethodPreviewFees)
}
func (UnimplementedAdminServiceServer) ListAuditLog(context.Context, *ListAuditRequest) (*AuditListResponse, error) {
	return nil, unimplemented(MethodListAuditLog)
}

// unary adapts a typed server method to a grpc.MethodDesc.
func unary[Req, Resp any](name string, call func(AdminServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AdminServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(AdminServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var AdminServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodLogin, AdminServiceServer.Login),
		unary(MethodLogout, AdminServiceServer.Logout),
		unary(MethodMe, AdminServiceServer.Me),
		unary(MethodCreateAdmin, AdminServiceServer.CreateAdmin),
		unary(MethodListUsers, AdminServiceServer.ListUsers),
		unary(MethodGetUser, AdminServiceServer.GetUser),
		unary(MethodUpdateUserStatus, AdminServiceServer.UpdateUserStatus),
		unary(MethodListEstablishments, AdminServiceServer.ListEstablishments),
		unary(MethodGetEstablishment, AdminServiceServer.GetEstablishment),
		unary(MethodApproveEstablishment, AdminServiceServer.ApproveEstablishment),
		unary(MethodRejectEstablishment, AdminServiceServer.RejectEstablishment),
		unary(MethodUpdateEstablishmentStatus, AdminServiceServer.UpdateEstablishmentStatus),
		unary(MethodListAgents, AdminServiceServer.ListAgents),
		unary(MethodGetAgent, AdminServiceServer.GetAgent),
		unary(MethodApproveAgent, AdminServiceServer.ApproveAgent),
		unary(MethodRejectAgent, AdminServiceServer.RejectAgent),
		unary(MethodUpdateAgentStatus, AdminServiceServer.UpdateAgentStatus),
		unary(MethodListOrders, AdminServiceServer.ListOrders),
		unary(MethodGetOrder, AdminServiceServer.GetOrder),
		unary(MethodCancelOrder, AdminServiceServer.CancelOrder),
		unary(MethodUpdateOrderStatus, AdminServiceServer.UpdateOrderStatus),
		unary(MethodGetDashboardStats, AdminServiceServer.GetDashboardStats),
		unary(MethodGetSettings, AdminServiceServer.GetSettings),
		unary(MethodUpdateSettings, AdminServiceServer.UpdateSettings),
		unary(MethodPreviewFees, AdminServiceServer.PreviewFees),
		unary(MethodListAuditLog, AdminServiceServer.ListAuditLog),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adminpb",
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminServiceDesc, srv)
}
