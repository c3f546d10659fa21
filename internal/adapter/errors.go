// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")

	// ErrIntegrityCheckFailed is returned when a response carries a
	// HashSHA256 header that does not match its body.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
)
