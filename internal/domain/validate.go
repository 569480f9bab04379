package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(Date); ok {
			return d.Time
		}
		return nil
	}, Date{})

	if err := v.RegisterValidation("over18", over18); err != nil {
		panic(err)
	}

	return v
}

// over18 keeps the original day-count rule: whole days since the birth date
// divided by 365 must exceed 18. Not calendar-accurate age.
func over18(fl validator.FieldLevel) bool {
	birth, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	days := daysBetween(birth, time.Now())
	return float64(days)/365 > 18
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// FieldError names the offending field and the constraint it violated.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Constraint
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a request payload against its struct tags and returns a
// *ValidationError carrying one entry per failed field.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Constraint: constraint})
	}
	return ve
}
