package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items?"+query, nil)
	return c
}

func TestGetPaginationParams_Defaults(t *testing.T) {
	params, err := GetPaginationParams(paginationContext(""))
	require.NoError(t, err)
	assert.Equal(t, PaginationParams{Skip: 0, Limit: 20}, params)
}

func TestGetPaginationParams_Bounds(t *testing.T) {
	tests := []struct {
		query   string
		wantErr bool
		want    PaginationParams
	}{
		{"skip=0&limit=1", false, PaginationParams{Skip: 0, Limit: 1}},
		{"skip=40&limit=100", false, PaginationParams{Skip: 40, Limit: 100}},
		{"limit=101", true, PaginationParams{}},
		{"limit=0", true, PaginationParams{}},
		{"skip=-1", true, PaginationParams{}},
		{"skip=abc", true, PaginationParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			params, err := GetPaginationParams(paginationContext(tt.query))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apierrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}
