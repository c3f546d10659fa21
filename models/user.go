// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// User represents a registered account.
// PasswordHash never leaves the server.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// EmailVerifiedAt is set once the email address has been confirmed.
	EmailVerifiedAt *time.Time `json:"email_verified_at"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCSVColumns is the header line of the users export.
var UserCSVColumns = []string{"id", "name", "email", "created_at"}

// CSVRow renders u in the column order of UserCSVColumns.
func (u User) CSVRow() []string {
	return []string{
		strconv.FormatInt(u.UserID, 10),
		u.Name,
		u.Email,
		u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
