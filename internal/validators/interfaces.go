// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates request payloads and reports failures as
// field-keyed messages suitable for a 422 response.
//
// Rules are declared with `validate` struct tags and evaluated by
// github.com/go-playground/validator/v10. Field names in reports are taken
// from the `json` tag, so they match what the client sent.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named (JSON) fields.
	//
	// Rule failures are returned as *ValidationError.
	Validate(context.Context, any, ...string) error
}
