package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/pkg"
)

type stubFinder struct {
	users map[uint]*user.User
	err   error
}

func (f *stubFinder) FindByID(_ context.Context, id uint) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func setupRouter(finder UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalJWTAuth(finder))
	r.GET("/optional", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	r.GET("/required", RequireAuth(), func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	prev := config.Conf
	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: "middleware-secret", ExpireTime: 1}}
	t.Cleanup(func() { config.Conf = prev })

	jake := &user.User{ID: 7, Username: "jake", Email: "jake@jake.jake"}
	finder := &stubFinder{users: map[uint]*user.User{7: jake}}
	r := setupRouter(finder)

	token, err := pkg.GenerateAccessToken(jake.ID, jake.Username, jake.Email)
	require.NoError(t, err)
	orphan, err := pkg.GenerateAccessToken(99, "ghost", "ghost@example.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "anonymous optional", path: "/optional", expectedStatus: http.StatusOK, expectedBody: `"user_id":0`},
		{name: "token scheme", path: "/optional", header: "Token " + token, expectedStatus: http.StatusOK, expectedBody: `"user_id":7`},
		{name: "bearer scheme", path: "/optional", header: "Bearer " + token, expectedStatus: http.StatusOK, expectedBody: `"user_id":7`},
		{name: "invalid token is anonymous", path: "/optional", header: "Token garbage", expectedStatus: http.StatusOK, expectedBody: `"user_id":0`},
		{name: "unknown user is anonymous", path: "/optional", header: "Token " + orphan, expectedStatus: http.StatusOK, expectedBody: `"user_id":0`},
		{name: "required without token", path: "/required", expectedStatus: http.StatusUnauthorized},
		{name: "required with bad token", path: "/required", header: "Token garbage", expectedStatus: http.StatusUnauthorized},
		{name: "required with token", path: "/required", header: "Token " + token, expectedStatus: http.StatusOK, expectedBody: `"username":"jake"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestOptionalJWTAuth_FinderError(t *testing.T) {
	prev := config.Conf
	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: "middleware-secret", ExpireTime: 1}}
	t.Cleanup(func() { config.Conf = prev })

	r := setupRouter(&stubFinder{err: errors.New("db down")})
	token, err := pkg.GenerateAccessToken(7, "jake", "jake@jake.jake")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
