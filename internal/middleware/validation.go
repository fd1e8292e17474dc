package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/senatehub/internal/app/models"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Calendar dates travel as ISO-8601 strings; reject anything else at
		// bind time.
		_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(models.DateFormat, fl.Field().String())
			return err == nil
		})
	}
}

// FormatBindingError turns a gin binding failure into a human-readable
// message suitable for an error response detail.
func FormatBindingError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatValidationError(e))
	}
	return strings.Join(messages, "; ")
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "calendardate":
		return e.Field() + " must be a date in YYYY-MM-DD form"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
