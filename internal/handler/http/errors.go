// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header, and by handlers parsing path and query
// parameters. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization"
	// header is present but does not hold a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidUserID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidPageParam is returned when page or per_page is not a
	// positive integer.
	ErrInvalidPageParam = errors.New("invalid pagination parameter")
)
