package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/viltrumflow/taskflow-api/internal/config"
	"github.com/viltrumflow/taskflow-api/internal/database"
	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/repository"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

const testPassword = "Secret123"

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	cfg := &config.Config{
		ProjectName: "ViltrumFlow",
		Version:     "test",
		Environment: "test",
	}
	store := repository.NewStore(db)
	tokens := services.NewTokenManager("test-secret", time.Minute, time.Hour)

	return &testServer{
		t:      t,
		db:     db,
		router: NewRouter(cfg, services.New(store, tokens), store),
	}
}

// do sends a JSON request. A non-empty token is sent as a bearer token.
func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, apiPrefix+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns it with an access token
func (s *testServer) register(username string) (dto.UserResponse, string) {
	s.t.Helper()

	w := s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"email":    username + "@example.com",
		"username": username,
		"password": testPassword,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var user dto.UserResponse
	decode(s.t, w, &user)

	w = s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": testPassword,
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var tokens dto.TokenResponse
	decode(s.t, w, &tokens)
	return user, tokens.AccessToken
}

func (s *testServer) makeSuperuser(id uint64) {
	s.t.Helper()
	require.NoError(s.t, s.db.Exec("UPDATE users SET is_superuser = ? WHERE id = ?", true, id).Error)
}

func (s *testServer) createProject(token, name string) dto.ProjectResponse {
	s.t.Helper()

	w := s.do(http.MethodPost, "/projects", token, map[string]string{"name": name})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var project dto.ProjectResponse
	decode(s.t, w, &project)
	return project
}

func (s *testServer) createTask(token string, body map[string]interface{}) dto.TaskResponse {
	s.t.Helper()

	w := s.do(http.MethodPost, "/tasks", token, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var task dto.TaskResponse
	decode(s.t, w, &task)
	return task
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	decode(t, w, &body)
	return body
}

func idPath(prefix string, id uint64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}

func uintString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
