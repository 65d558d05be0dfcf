// Package validation wraps go-playground/validator with the field rules used
// across the API and reports failures as per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "varmepumpe/internal/errors"
)

// Password length rules shared by every password path. bcrypt only accepts
// up to 72 bytes of input.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

var (
	orgNumberPattern  = regexp.MustCompile(`^\d{9}$`)
	postalCodePattern = regexp.MustCompile(`^\d{4}$`)
)

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the custom "orgnr" and "postalcode" tags registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("orgnr", func(fl validator.FieldLevel) bool {
		return orgNumberPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

var defaultValidator = New()

// Struct validates s with the shared validator.
func Struct(s interface{}) error {
	return defaultValidator.Struct(s)
}

// Struct validates s and returns a *errors.ValidationError on failure.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &apperrors.ValidationError{Fields: fields}
}

// IsOrgNumber reports whether s is a nine digit organisation number.
func IsOrgNumber(s string) bool {
	return orgNumberPattern.MatchString(s)
}

// IsPostalCode reports whether s is a four digit postal code.
func IsPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "orgnr":
		return "must be exactly 9 digits"
	case "postalcode":
		return "must be exactly 4 digits"
	case "gt", "gte":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return "is invalid"
	}
}
