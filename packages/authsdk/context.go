package authsdk

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

// 支持的认证前缀，Token 为主，Bearer 兼容
var authSchemes = []string{"Token ", "Bearer "}

// ExtractTokenFromHeader 从 Authorization header 的值中取出 token
func ExtractTokenFromHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrNoToken
	}
	for _, scheme := range authSchemes {
		if strings.HasPrefix(header, scheme) {
			token := strings.TrimSpace(strings.TrimPrefix(header, scheme))
			if token == "" {
				return "", ErrNoToken
			}
			return token, nil
		}
	}
	return "", ErrInvalidToken
}

// ExtractTokenFromContext 从 gRPC context 的 metadata 中提取 JWT token
// 支持两种方式：
// 1. authorization header (Token/Bearer token)
// 2. x-access-token header
func ExtractTokenFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrNoToken
	}

	if values := md.Get("authorization"); len(values) > 0 {
		return ExtractTokenFromHeader(values[0])
	}

	if values := md.Get("x-access-token"); len(values) > 0 && values[0] != "" {
		return values[0], nil
	}

	return "", ErrNoToken
}

// GetUserFromContext 从 gRPC context 获取用户信息
// 如果没有 token 或解析失败，返回空的 UserContext（UserID=0）
func GetUserFromContext(ctx context.Context, secret string) *UserContext {
	token, err := ExtractTokenFromContext(ctx)
	if err != nil {
		return &UserContext{}
	}

	user, err := ParseToken(token, secret)
	if err != nil {
		return &UserContext{}
	}

	return user
}
