package server

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator/v10"
)

// bindJSON binds a request body and turns binding failures into the
// field-level validation envelope. Handlers never see a half-bound
// request.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := &ValidationErrors{}
		for _, fe := range fieldErrs {
			field := snakeCase(fe.Field())
			out.Errors = append(out.Errors, ValidationError{
				Field:   field,
				Code:    bindingErrorCode(fe),
				Message: bindingErrorMessage(field, fe),
			})
		}
		return out
	}

	return invalidRequestError()
}

func bindingErrorCode(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "too_long"
	case "min":
		return "too_short"
	case "len":
		return "wrong_length"
	case "oneof":
		return "not_allowed"
	case "email":
		return "invalid_email"
	case "uuid":
		return "invalid_id"
	case "numeric":
		return "not_numeric"
	default:
		return fe.Tag()
	}
}

func bindingErrorMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "len":
		return field + " must be exactly " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid id"
	case "numeric":
		return field + " must contain only digits"
	default:
		return field + " is invalid"
	}
}

// snakeCase turns a Go field name into its json counterpart. Acronym
// runs like "ID" stay together.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
