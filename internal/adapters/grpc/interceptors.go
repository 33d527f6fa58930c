// internal/adapters/grpc/interceptors.go
package grpc

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/adapters/grpc/adminpb"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/application"
	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
	"github.com/mahabubulhasibshawon/marketplace-admin/pkg/auth"
)

type claimsKey struct{}

var publicMethods = map[string]bool{
	adminpb.FullMethod(adminpb.MethodLogin): true,
}

// AuthInterceptor requires a valid, unrevoked Bearer token on every method
// except Login and stores its claims in the request context.
func AuthInterceptor(authService *application.AuthService) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}
		token := strings.TrimPrefix(authHeader[0], "Bearer ")
		claims, err := authService.Authenticate(ctx, token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

// LoggingInterceptor logs every call with its outcome and latency.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("grpc call",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

func actorFromContext(ctx context.Context) (application.Actor, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return application.Actor{}, unauthenticated()
	}
	return application.Actor{AdminID: claims.AdminID, Role: domain.Role(claims.Role)}, nil
}
