package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

const paramKeyPrefix = "param_id:"

// RequireIDParam parses the named path parameter as a positive integer ID
// and stores it in the context. Malformed IDs are rejected with a validation error.
func RequireIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(name), 10, 64)
		if err != nil || id == 0 {
			_ = c.Error(apierrors.Validation("Invalid path parameter", []validation.FieldError{
				{Field: name, Message: "must be a positive integer"},
			}))
			c.Abort()
			return
		}

		c.Set(paramKeyPrefix+name, id)
		c.Next()
	}
}

// IDParam returns an ID stored by RequireIDParam
func IDParam(c *gin.Context, name string) (uint64, bool) {
	value, exists := c.Get(paramKeyPrefix + name)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
