// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Messages reported on the field that failed authentication or uniqueness.
const (
	MsgEmailAlreadyTaken  = "The email has already been taken."
	MsgInvalidCredentials = "The provided credentials are incorrect."
	MsgIncorrectPassword  = "The provided password is incorrect."
	MsgPasswordTooLong    = "The password field must not be greater than 72 bytes."
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")
)
