package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/middleware"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/utils"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

// bindJSON decodes and validates the request body into dst. On failure the
// validation error is pushed onto the context and false is returned.
func bindJSON(c *gin.Context, dst interface{}) bool {
	return bindWith(c, dst, binding.JSON)
}

// bind picks JSON or form decoding from the Content-Type header
func bind(c *gin.Context, dst interface{}) bool {
	return bindWith(c, dst, binding.Default(c.Request.Method, c.ContentType()))
}

func bindWith(c *gin.Context, dst interface{}, b binding.Binding) bool {
	validation.Engine()
	if err := c.ShouldBindWith(dst, b); err != nil {
		_ = c.Error(bindError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	return bindWith(c, dst, binding.Query)
}

func bindError(err error) error {
	if details, ok := validation.Translate(err); ok {
		return apierrors.Validation("Validation error", details)
	}
	if errors.Is(err, io.EOF) {
		return apierrors.Validation("Request body is required", nil)
	}
	return apierrors.Validation("Invalid request body", []validation.FieldError{{Field: "body", Message: err.Error()}})
}

// actor returns the authenticated user or pushes Unauthorized
func actor(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apierrors.Unauthorized("Not authenticated"))
		return nil, false
	}
	return user, true
}

// pathID returns an ID parsed by middleware.RequireIDParam
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, ok := middleware.IDParam(c, name)
	if !ok {
		_ = c.Error(apierrors.Internal("Path parameter "+name+" was not parsed", nil))
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (utils.PaginationParams, bool) {
	page, err := utils.GetPaginationParams(c)
	if err != nil {
		_ = c.Error(err)
		return utils.PaginationParams{}, false
	}
	return page, true
}

// respondList writes a list body with its unpaginated total in X-Total-Count
func respondList(c *gin.Context, total int64, items interface{}) {
	utils.SetTotalCount(c, total)
	c.JSON(http.StatusOK, items)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
