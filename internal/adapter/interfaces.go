// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the restful-users HTTP API.
//
// The primary abstraction is [UsersAPI], implemented over REST by
// [NewHTTPUsersAPI]. Non-2xx answers are decoded from the error envelope into
// an [*APIError] that unwraps to the sentinel matching its status (e.g.
// [ErrUnauthorized] for 401, [ErrValidation] for 422), so callers can use
// [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UsersAPI defines the operations of the users API. Implementations attach
// the stored bearer token to every authenticated request.
type UsersAPI interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Version returns the server build information.
	Version(ctx context.Context) (map[string]string, error)

	// Register creates an account and returns it.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListUsers returns one page of users and its pagination metadata.
	ListUsers(ctx context.Context, page, perPage int) ([]models.User, response.Meta, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// DeleteUser deletes the user with the given id. Only the owner of the
	// stored token may delete their own account.
	DeleteUser(ctx context.Context, userID int64) error

	// ExportUsers returns the CSV export of all users.
	ExportUsers(ctx context.Context) ([]byte, error)
}
