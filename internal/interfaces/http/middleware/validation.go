package middleware

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs domain-specific binding validators on
// gin's validator engine. Call once before building the router.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// month_label accepts calendar-month labels like "March 2026"
	return v.RegisterValidation("month_label", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("January 2006", fl.Field().String())
		return err == nil
	})
}
