package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/medium/internal/middleware"
	"terminal-terrace/medium/internal/testutils"
)

func setupUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.OptionalJWTAuth(NewUserRepository(db)))
	RegisterRoutes(r.Group("/api"), db)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Flow(t *testing.T) {
	r := setupUserRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"user": gin.H{"username": "jake", "email": "jake@jake.jake", "password": "jakejake"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	var registered UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.User.Token)

	w = doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"user": gin.H{"username": "jake", "email": "jake@jake.jake", "password": "jakejake"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodPost, "/api/users/login", "", gin.H{
		"user": gin.H{"email": "jake@jake.jake", "password": "wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/users/login", "", gin.H{
		"user": gin.H{"email": "jake@jake.jake", "password": "jakejake"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var loggedIn UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))

	w = doJSON(r, http.MethodGet, "/api/user", loggedIn.User.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"jake"`)

	w = doJSON(r, http.MethodPut, "/api/user", loggedIn.User.Token, gin.H{
		"user": gin.H{"bio": "I like to skateboard", "image": "https://i.stack.imgur.com/xHWG8.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bio":"I like to skateboard"`)
	assert.Contains(t, w.Body.String(), `"email":"jake@jake.jake"`)
}

func TestUserHandler_RegisterWithBioAndImage(t *testing.T) {
	r := setupUserRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"user": gin.H{
			"username": "jake",
			"email":    "jake@jake.jake",
			"password": "jakejake",
			"bio":      "I work at statefarm",
			"image":    "https://i.example/jake.png",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "I work at statefarm", registered.User.Bio)
	assert.Equal(t, "https://i.example/jake.png", registered.User.Image)
}

func TestUserHandler_Errors(t *testing.T) {
	r := setupUserRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
	}{
		{name: "current user anonymous", method: http.MethodGet, path: "/api/user", expectedStatus: http.StatusUnauthorized},
		{name: "update anonymous", method: http.MethodPut, path: "/api/user", body: gin.H{"user": gin.H{}}, expectedStatus: http.StatusUnauthorized},
		{name: "register missing email", method: http.MethodPost, path: "/api/users", body: gin.H{"user": gin.H{"username": "a", "password": "b"}}, expectedStatus: http.StatusBadRequest},
		{name: "register bad email", method: http.MethodPost, path: "/api/users", body: gin.H{"user": gin.H{"username": "a", "email": "nope", "password": "b"}}, expectedStatus: http.StatusBadRequest},
		{name: "login missing password", method: http.MethodPost, path: "/api/users/login", body: gin.H{"user": gin.H{"email": "a@b.c"}}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, "", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}
