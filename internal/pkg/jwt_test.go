package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/packages/authsdk"
)

func useJWTConfig(t *testing.T, secret string, expire int) {
	t.Helper()
	prev := config.Conf
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{Secret: secret, ExpireTime: expire},
	}
	t.Cleanup(func() { config.Conf = prev })
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	useJWTConfig(t, "test-secret-key", 24)

	token, err := GenerateAccessToken(42, "jake", "jake@jake.jake")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), user.UserID)
	assert.Equal(t, "jake", user.Username)
	assert.Equal(t, "jake@jake.jake", user.Email)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	useJWTConfig(t, "test-secret-key", 24)
	valid, err := GenerateAccessToken(1, "jake", "jake@jake.jake")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		expectErr error
	}{
		{name: "empty", token: "", expectErr: authsdk.ErrNoToken},
		{name: "garbage", token: "not-a-jwt-token", expectErr: authsdk.ErrInvalidToken},
		{name: "tampered signature", token: valid[:len(valid)-2] + "xx", expectErr: authsdk.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := ParseAccessToken(tt.token)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestParseAccessToken_WithDifferentSecret(t *testing.T) {
	useJWTConfig(t, "secret-key-1", 24)
	token, err := GenerateAccessToken(1, "jake", "jake@jake.jake")
	require.NoError(t, err)

	config.Conf.JWT.Secret = "secret-key-2"

	user, err := ParseAccessToken(token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, authsdk.ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	// 负数过期时间会生成已经过期的令牌
	useJWTConfig(t, "test-secret-key", -1)
	token, err := GenerateAccessToken(1, "jake", "jake@jake.jake")
	require.NoError(t, err)

	user, err := ParseAccessToken(token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, authsdk.ErrExpiredToken)
}
