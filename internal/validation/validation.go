// Package validation runs declarative struct checks on request bodies and
// query parameters before they reach the service layer.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"shareit/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is a single failed check.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violation found on one input.
type Error struct {
	Violations []FieldViolation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with ShareIt's custom rules.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New creates a Validator with the notblank tag and the booking window rule registered.
func New() *Validator {
	val := &Validator{
		v:   validator.New(),
		now: time.Now,
	}
	val.v.RegisterTagNameFunc(jsonFieldName)
	if err := val.v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	val.v.RegisterStructValidation(val.bookingWindow, models.BookingDto{})
	return val
}

// WithClock replaces the time source used by the booking window rule.
func (val *Validator) WithClock(now func() time.Time) *Validator {
	val.now = now
	return val
}

// Struct validates a request body.
func (val *Validator) Struct(s any) error {
	return val.collect(val.v.Struct(s), "")
}

// Var validates a single named value, e.g. a query parameter.
func (val *Validator) Var(field string, value any, tag string) error {
	return val.collect(val.v.Var(value, tag), field)
}

func (val *Validator) collect(err error, field string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &Error{}
	for _, fe := range fieldErrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		out.Violations = append(out.Violations, FieldViolation{Field: name, Message: message(name, fe)})
	}
	return out
}

// bookingWindow checks start >= now, end > now and start < end.
func (val *Validator) bookingWindow(sl validator.StructLevel) {
	dto := sl.Current().Interface().(models.BookingDto)
	if dto.Start == nil || dto.End == nil {
		return
	}
	now := val.now()
	if dto.Start.Before(now) {
		sl.ReportError(*dto.Start, "start", "Start", "futureorpresent", "")
	}
	if !dto.End.After(now) {
		sl.ReportError(*dto.End, "end", "End", "future", "")
	}
	if !dto.Start.Before(*dto.End) {
		sl.ReportError(*dto.Start, "start", "Start", "startbeforeend", "")
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s should not be empty", field)
	case "email":
		return fmt.Sprintf("%s is not valid", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("minimum value for %s is %s", field, fe.Param())
	case "futureorpresent":
		return "start booking must not be in the past"
	case "future":
		return "end booking must be in the future"
	case "startbeforeend":
		return "start booking must be before end booking"
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, fe.Tag())
	}
}
