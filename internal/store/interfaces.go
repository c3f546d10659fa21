// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/restful-users/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated id.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns one page of users ordered by id together with the
	// total number of users.
	ListUsers(ctx context.Context, page, perPage int) ([]models.User, int, error)

	// DeleteUser removes the user with the given id or returns
	// ErrNoUserWasFound.
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator interprets driver-specific errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint
	// violation.
	IsUniqueViolation(err error) bool
}
