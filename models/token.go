// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme clients put in front of the access token in the
// Authorization header.
const TokenType = "Bearer"

// Claims is the JWT claim set of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims; the user id is the
// "sub" claim and DeviceName records the device the token was issued for.
type Claims struct {
	jwt.RegisteredClaims

	DeviceName string `json:"device,omitempty"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is an issued or parsed access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner taken from the "sub" claim.
	UserID int64 `json:"-"`

	// DeviceName is the device the token was issued for.
	DeviceName string `json:"-"`

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
