package dto

import (
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

// checker accumulates field errors for partial-update contracts, where gin's
// struct-tag validation cannot see through Optional.
type checker struct {
	errs []validation.FieldError
}

func (c *checker) notNull(field string, set, null bool) bool {
	if set && null {
		c.errs = append(c.errs, validation.FieldError{Field: field, Message: "must not be null"})
		return false
	}
	return true
}

func (c *checker) check(field string, value interface{}, tag string) {
	c.errs = append(c.errs, validation.Var(field, value, tag)...)
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return apierrors.Validation("Validation error", c.errs)
}

// nullable yields an untyped nil for null so gorm writes NULL.
func nullable[T any](o Optional[T]) interface{} {
	if o.Null {
		return nil
	}
	return o.Value
}
