package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
)

// ErrorHandler renders the last error pushed with c.Error. 5xx responses
// carry internal details only when debug is set.
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := apierrors.Response(err, debug)
		if status >= http.StatusInternalServerError {
			log.Printf("[ERROR] %s %s request_id=%s: %v", c.Request.Method, c.Request.URL.Path, RequestIDFrom(c), err)
		}

		c.AbortWithStatusJSON(status, body)
	}
}
