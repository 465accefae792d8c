package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
		code   string
	}{
		{Validation("bad", nil), http.StatusUnprocessableEntity, ErrCodeValidation},
		{NotFound(""), http.StatusNotFound, ErrCodeNotFound},
		{Conflict(""), http.StatusConflict, ErrCodeConflict},
		{Unauthorized(""), http.StatusUnauthorized, ErrCodeUnauthorized},
		{InvalidCredentials(), http.StatusUnauthorized, ErrCodeInvalidCredentials},
		{Forbidden(""), http.StatusForbidden, ErrCodeForbidden},
		{Storage("db", errors.New("x")), http.StatusInternalServerError, ErrCodeStorage},
		{Internal("oops", nil), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Kind.Status())
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NotFound("Task not found"))

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrConflict)
	assert.ErrorIs(t, InvalidCredentials(), ErrUnauthorized)
}

func TestFrom(t *testing.T) {
	typed := Forbidden("no")
	assert.Same(t, typed, From(fmt.Errorf("wrap: %w", typed)))

	plain := From(errors.New("raw"))
	assert.Equal(t, KindInternal, plain.Kind)
	assert.EqualError(t, plain, "Internal server error: raw")
}

func TestResponse(t *testing.T) {
	status, body := Response(Validation("Validation error", []string{"x"}), false)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Validation error", body.Message)
	assert.Equal(t, []string{"x"}, body.Details)

	status, body = Response(Storage("Database operation failed", errors.New("connection refused")), false)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Empty(t, body.Detail)

	_, body = Response(Storage("Database operation failed", errors.New("connection refused")), true)
	assert.Equal(t, "Database operation failed: connection refused", body.Detail)
	assert.Equal(t, "StorageError", body.Type)
}
