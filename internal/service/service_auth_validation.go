// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/restful-users/internal/validators"
	"github.com/MKhiriev/restful-users/models"
)

// AuthValidationService validates register and login payloads before they
// reach the wrapped AuthService. Validation failures are returned as
// *validators.ValidationError unchanged.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User, deviceName string) (models.Token, error) {
	if user.UserID <= 0 {
		return models.Token{}, ErrInvalidDataProvided
	}

	return v.inner.CreateToken(ctx, user, deviceName)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
