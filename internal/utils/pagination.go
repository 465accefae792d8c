package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

// PaginationParams holds the skip/limit window of a list request
type PaginationParams struct {
	Skip  int
	Limit int
}

// GetPaginationParams reads skip and limit from the query string.
// Out-of-range or non-numeric values are rejected rather than clamped.
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Skip: 0, Limit: constants.DefaultPageSize}
	var problems []validation.FieldError

	if raw, ok := c.GetQuery("skip"); ok {
		skip, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			problems = append(problems, validation.FieldError{Field: "skip", Message: "must be an integer"})
		case skip < 0:
			problems = append(problems, validation.FieldError{Field: "skip", Message: "must be greater than or equal to 0"})
		default:
			params.Skip = skip
		}
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			problems = append(problems, validation.FieldError{Field: "limit", Message: "must be an integer"})
		case limit < constants.MinPageSize:
			problems = append(problems, validation.FieldError{Field: "limit", Message: "must be greater than or equal to 1"})
		case limit > constants.MaxPageSize:
			problems = append(problems, validation.FieldError{Field: "limit", Message: "must be less than or equal to 100"})
		default:
			params.Limit = limit
		}
	}

	if len(problems) > 0 {
		return PaginationParams{}, apierrors.Validation("Invalid pagination parameters", problems)
	}
	return params, nil
}

// SetTotalCount exposes the unpaginated total of a list response.
func SetTotalCount(c *gin.Context, total int64) {
	c.Header(constants.HeaderTotalCount, strconv.FormatInt(total, 10))
}
