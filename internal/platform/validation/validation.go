package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ISO 6346 owner code + category identifier + serial number + check digit,
// e.g. MSCU1234567.
var containerNumberRe = regexp.MustCompile(`^[A-Z]{3}[UJZ]\d{7}$`)

// RegisterCustomValidators attaches domain-specific validations to gin's
// binding engine. Must be called before the first request is bound.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("container_number", func(fl validator.FieldLevel) bool {
		return containerNumberRe.MatchString(fl.Field().String())
	})
}
