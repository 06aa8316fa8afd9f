package grpc

import (
	"context"
	"time"

	"terminal-terrace/medium/packages/authsdk"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type userContextKey struct{}

// AuthInterceptor 解析 metadata 中的令牌并写入 context，解析失败时为匿名用户
func AuthInterceptor(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		user := authsdk.GetUserFromContext(ctx, secret)
		return handler(context.WithValue(ctx, userContextKey{}, user), req)
	}
}

// UserFromContext 返回 AuthInterceptor 解析出的用户，未经过拦截器时为匿名
func UserFromContext(ctx context.Context) *authsdk.UserContext {
	if user, ok := ctx.Value(userContextKey{}).(*authsdk.UserContext); ok && user != nil {
		return user
	}
	return &authsdk.UserContext{}
}

// LoggingInterceptor 记录每次调用的方法、调用者、状态码与耗时
// 需要链在 AuthInterceptor 之后才能拿到调用者
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Uint("user_id", UserFromContext(ctx).UserID),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Warn("grpc request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("grpc request", fields...)
		}
		return resp, err
	}
}
