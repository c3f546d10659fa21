// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// MessageInvalidData is the top-level message of a rule-based validation
// failure.
const MessageInvalidData = "The given data was invalid."

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError reports per-field validation messages. Fields maps the
// JSON field name to its messages in rule order.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

// NewValidationError returns an empty ValidationError with the default
// message.
func NewValidationError() *ValidationError {
	return &ValidationError{
		Message: MessageInvalidData,
		Fields:  make(map[string][]string),
	}
}

// NewFieldError returns a ValidationError for a single field whose message
// doubles as the top-level message.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

// Add appends message to field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no field has a message.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if e.Empty() {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sb.WriteString(" ")
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Fields[field], " "))
	}
	return sb.String()
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
