package pkg

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/packages/authsdk"
)

// GenerateAccessToken 生成访问令牌，载荷包含 id、username、email
func GenerateAccessToken(userID uint, username, email string) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(config.Conf.JWT.ExpireTime) * time.Hour)

	claims := &authsdk.Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*authsdk.UserContext, error) {
	return authsdk.ParseToken(tokenString, config.Conf.JWT.Secret)
}
