package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// something@something.something with no whitespace.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Form is implemented by every form struct. Messages maps "field.tag" to the
// text shown when that rule fails.
type Form interface {
	Messages() map[string]string
}

// Instance returns the shared validator with the app's custom rules.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("email_loose", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsBlank reports whether s is empty once surrounding whitespace is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate checks form and returns the first failure as a
// *errors.ValidationError carrying the user-facing message. Fields are
// checked in declaration order.
func Validate(form Form) error {
	err := Instance().Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return yatraerrors.NewValidationError("", err.Error(), err)
	}

	first := fieldErrs[0]
	key := first.Field() + "." + first.Tag()
	message, ok := form.Messages()[key]
	if !ok {
		message = defaultMessage(first)
	}
	return yatraerrors.NewValidationError(first.Field(), message, first)
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("Please enter %s", fe.Field())
	case "email_loose":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
