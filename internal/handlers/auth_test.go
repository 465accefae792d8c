package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user dto.UserResponse
	decode(t, w, &user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_RegisterThroughUsers(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/users", "", map[string]string{
		"email":    "bob@example.com",
		"username": "bob",
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	srv := newTestServer(t)
	srv.register("alice")

	tests := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{
			name:    "email",
			body:    map[string]string{"email": "alice@example.com", "username": "other", "password": testPassword},
			message: "Email already registered",
		},
		{
			name:    "username",
			body:    map[string]string{"email": "other@example.com", "username": "alice", "password": testPassword},
			message: "Username already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, "/auth/register", "", tt.body)
			require.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Message)
		})
	}

	var count int64
	require.NoError(t, srv.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthHandler_RegisterWeakPassword(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "weak@example.com",
		"username": "weak",
		"password": "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.NotEmpty(t, body.Details)
	for _, d := range body.Details {
		assert.Equal(t, "password", d.Field)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	srv := newTestServer(t)
	srv.register("alice")

	t.Run("json", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/auth/login", "", map[string]string{
			"username": "alice",
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var tokens dto.TokenResponse
		decode(t, w, &tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, constants.TokenTypeBearer, tokens.TokenType)
	})

	t.Run("form with email", func(t *testing.T) {
		form := url.Values{"username": {"alice@example.com"}, "password": {testPassword}}
		req := httptest.NewRequest(http.MethodPost, apiPrefix+"/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/auth/login", "", map[string]string{
			"username": "alice",
			"password": "Wrong1234",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Incorrect username or password", decodeError(t, w).Message)
	})

	t.Run("inactive", func(t *testing.T) {
		require.NoError(t, srv.db.Exec("UPDATE users SET is_active = ? WHERE username = ?", false, "alice").Error)

		w := srv.do(http.MethodPost, "/auth/login", "", map[string]string{
			"username": "alice",
			"password": testPassword,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_LoginRecordsLastLogin(t *testing.T) {
	srv := newTestServer(t)
	user, _ := srv.register("alice")
	assert.Nil(t, user.LastLogin)

	var stored models.User
	require.NoError(t, srv.db.First(&stored, user.ID).Error)
	assert.NotNil(t, stored.LastLogin)
}

func TestAuthHandler_Refresh(t *testing.T) {
	srv := newTestServer(t)
	_, access := srv.register("alice")

	w := srv.do(http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": testPassword})
	var tokens dto.TokenResponse
	decode(t, w, &tokens)

	w = srv.do(http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": tokens.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(http.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": access})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	srv := newTestServer(t)
	user, token := srv.register("alice")

	w := srv.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserResponse
	decode(t, w, &me)
	assert.Equal(t, user.ID, me.ID)
}

func TestAuthHandler_MeRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, apiPrefix+"/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}
