package validation

import (
	"errors"
	"maps"
	"slices"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// FieldErrors exposes the per-field errors of an ozzo struct validation to
// errors.Is and errors.As. The field map itself stays reachable as
// ozzo.Errors.
type FieldErrors struct {
	ozzo.Errors
}

func (e FieldErrors) Unwrap() []error {
	out := []error{e.Errors}
	for _, field := range slices.Sorted(maps.Keys(e.Errors)) {
		out = append(out, e.Errors[field])
	}
	return out
}

// Struct runs ozzo.ValidateStruct and wraps a failing field map in
// FieldErrors, so sentinel errors returned by field rules survive.
func Struct(structPtr any, fields ...*ozzo.FieldRules) error {
	err := ozzo.ValidateStruct(structPtr, fields...)
	var errs ozzo.Errors
	if errors.As(err, &errs) {
		return FieldErrors{Errors: errs}
	}
	return err
}

// Reports runs rule and fails with sentinel in place of the rule's own error.
func Reports(sentinel error, rule ozzo.Rule) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if err := rule.Validate(value); err != nil {
			return sentinel
		}
		return nil
	})
}

// NotNilUUID fails with sentinel on uuid.Nil, which ozzo.Required accepts.
func NotNilUUID(sentinel error) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
			return sentinel
		}
		return nil
	})
}
