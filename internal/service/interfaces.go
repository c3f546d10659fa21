// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/restful-users/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User, deviceName string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UsersPage, error)
	// DeleteUser removes userID on behalf of actorID. Users may only delete
	// their own account.
	DeleteUser(ctx context.Context, actorID, userID int64) error
	ExportUsers(ctx context.Context) ([]models.User, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
