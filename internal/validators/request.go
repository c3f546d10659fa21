// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ruleMessages maps a validation tag to its message. The first %s is the
// field name, the second (if any) the rule parameter.
var ruleMessages = map[string]string{
	"required": "The %s field is required.",
	"email":    "The %s field must be a valid email address.",
	"min":      "The %s field must be at least %s characters.",
	"max":      "The %s field must not be greater than %s characters.",
	"gte":      "The %s field must be greater than or equal to %s.",
	"lte":      "The %s field must be less than or equal to %s.",
	"numeric":  "The %s field must be a number.",
	"maxbytes": "The %s field must not be greater than %s bytes.",
}

// RequestValidator validates tagged request structs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator reporting JSON field
// names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration with a static tag and a non-nil func cannot fail
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &RequestValidator{validate: v}
}

// maxBytes limits the encoded length of a string, which is what bcrypt
// bounds. The builtin max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate validates obj, which must be a struct or a pointer to one.
// When fields are given only those JSON fields are reported; naming a field
// the struct does not have returns ErrUnknownField.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	t := reflect.TypeOf(obj)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}
	for _, f := range fields {
		if !hasJSONField(t, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	vErr := NewValidationError()
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		vErr.Add(fe.Field(), message(fe))
	}
	if vErr.Empty() {
		return nil
	}

	return vErr
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	msg, ok := ruleMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("The %s field is invalid.", field)
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, field, fe.Param())
	}
	return fmt.Sprintf(msg, field)
}

func hasJSONField(t reflect.Type, name string) bool {
	for i := range t.NumField() {
		f := t.Field(i)
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name || (tag == "" && f.Name == name) {
			return true
		}
	}
	return false
}
