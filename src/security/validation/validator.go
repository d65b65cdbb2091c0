package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/utils"
)

// ErrValidationFailed is wrapped by every *Error so callers can match it with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,10}$`)

// FieldError describes one rejected field using its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the per-field details of a failed validation.
type Error struct {
	Details []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error { return ErrValidationFailed }

// NewError builds an *Error for a single field.
func NewError(field, message string) *Error {
	return &Error{Details: []FieldError{{Field: field, Message: message}}}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Decimals are validated through their float value so gt/gte/lte apply.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			return utils.IsValidDate(fl.Field().String())
		})
		_ = v.RegisterValidation("symbol", func(fl validator.FieldLevel) bool {
			return symbolPattern.MatchString(fl.Field().String())
		})

		validate = v
	})
	return validate
}

// Struct validates s against its `validate` tags and returns an *Error on failure.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Details = append(out.Details, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must have at least " + fe.Param() + " items"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must have at most " + fe.Param() + " items"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "date":
		return "must be a valid date in YYYY-MM-DD format"
	case "symbol":
		return "must be 1-10 letters, digits, dots or dashes"
	default:
		return "failed the '" + fe.Tag() + "' rule"
	}
}
