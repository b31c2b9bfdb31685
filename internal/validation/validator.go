package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"bank-statement-generator/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs. It satisfies echo.Validator, and errors are
// returned as validator.ValidationErrors so the HTTP error handler can list fields.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_type", oneOfFunc(models.IsValidAccountType))
	_ = v.RegisterValidation("transfer_frequency", oneOfFunc(models.IsValidTransferFrequency))

	// report fields by their json names, e.g. accounts[0].type
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

var accountNumberPattern = regexp.MustCompile(`^[0-9][0-9 -]{2,30}[0-9]$`)

// validateAccountNumber accepts digit groups separated by dashes or spaces,
// e.g. 123-456-7890 or 4111-1111-2222-3333
func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}

// oneOfFunc adapts a case-sensitive model check to accept any case and padding
func oneOfFunc(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(strings.ToLower(strings.TrimSpace(fl.Field().String())))
	}
}
