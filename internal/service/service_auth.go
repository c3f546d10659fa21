// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/store"
	"github.com/MKhiriev/restful-users/internal/utils"
	"github.com/MKhiriev/restful-users/internal/validators"
	"github.com/MKhiriev/restful-users/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing. Request payloads are expected to be validated already; see
// AuthValidationService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor for newly hashed passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser hashes the password and creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *validators.ValidationError on "email" if the email is already taken.
//   - a *validators.ValidationError on "password" if bcrypt cannot hash it.
//   - a wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		vErr := validators.NewValidationError()
		vErr.Add("password", MsgPasswordTooLong)
		return models.User{}, vErr
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		vErr := validators.NewValidationError()
		vErr.Add("email", MsgEmailAlreadyTaken)
		return models.User{}, vErr
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or a *validators.ValidationError:
//   - on "email" with MsgInvalidCredentials if no user has that email.
//   - on "password" with MsgIncorrectPassword if the password does not match.
//
// Any other repository failure is returned wrapped.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login with unknown email")
		return models.User{}, validators.NewFieldError("email", MsgInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = utils.CheckPassword(foundUser.PasswordHash, req.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, validators.NewFieldError("password", MsgIncorrectPassword)
	}
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password check failed")
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user and device.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User, deviceName string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, deviceName, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
