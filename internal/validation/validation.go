package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var (
	once   sync.Once
	engine *validator.Validate
)

// Engine returns gin's validator with the custom rules registered. Binding and
// partial-update checks share it so a rule behaves the same in both paths.
func Engine() *validator.Validate {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
			v.SetTagName("binding")
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "hexcolor6", func(fl validator.FieldLevel) bool {
			return IsHexColor(fl.Field().String())
		})
		mustRegister(v, "password", func(fl validator.FieldLevel) bool {
			return len(PasswordProblems(fl.Field().String())) == 0
		})
		mustRegister(v, "task_status", func(fl validator.FieldLevel) bool {
			return models.TaskStatus(fl.Field().String()).IsValid()
		})
		mustRegister(v, "task_priority", func(fl validator.FieldLevel) bool {
			return models.TaskPriority(fl.Field().String()).IsValid()
		})
		mustRegister(v, "theme", func(fl validator.FieldLevel) bool {
			return models.Theme(fl.Field().String()).IsValid()
		})
		mustRegister(v, "user_role", func(fl validator.FieldLevel) bool {
			return models.UserRole(fl.Field().String()).IsValid()
		})
		engine = v
	})
	return engine
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// PasswordProblems lists every password rule s fails. An empty result means
// the password is acceptable.
func PasswordProblems(s string) []string {
	var problems []string
	if n := utf8.RuneCountInString(s); n < constants.MinPasswordLength || n > constants.MaxPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be between %d and %d characters",
			constants.MinPasswordLength, constants.MaxPasswordLength))
	}

	var digit, upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	if !digit {
		problems = append(problems, "Password must contain at least one digit")
	}
	if !upper {
		problems = append(problems, "Password must contain at least one uppercase letter")
	}
	if !lower {
		problems = append(problems, "Password must contain at least one lowercase letter")
	}
	return problems
}

// FieldError is one entry of a validation error's details.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Var validates a single value against a tag list. The returned FieldErrors
// are attributed to field.
func Var(field string, value interface{}, tag string) []FieldError {
	err := Engine().Var(value, tag)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: field, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, expand(field, fe)...)
	}
	return out
}

// expand reports one entry per unmet password rule and one entry otherwise.
func expand(field string, fe validator.FieldError) []FieldError {
	if fe.Tag() == "password" {
		problems := PasswordProblems(fmt.Sprint(fe.Value()))
		out := make([]FieldError, len(problems))
		for i, p := range problems {
			out[i] = FieldError{Field: field, Message: p}
		}
		return out
	}
	return []FieldError{{Field: field, Message: describe(fe)}}
}

// Translate turns validator errors from gin binding into FieldErrors.
// It returns false if err did not come from the validator.
func Translate(err error) ([]FieldError, bool) {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, false
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, expand(fe.Field(), fe)...)
	}
	return out, true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "email":
		return "value is not a valid email address"
	case "hexcolor6":
		return "must match ^#[0-9A-Fa-f]{6}$"
	case "task_status":
		return "must be one of todo, in_progress, review, completed, archived"
	case "task_priority":
		return "must be one of low, medium, high, urgent"
	case "theme":
		return "must be one of light, dark, auto"
	case "user_role":
		return "must be one of admin, manager, user, guest"
	case "dive", "unique":
		return "contains invalid or duplicate entries"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
