// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the users API: registration,
// login and token handling, user lookup, listing, deletion and export.
package service

import (
	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/store"
	"github.com/MKhiriev/restful-users/internal/validators"
	"github.com/MKhiriev/restful-users/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	authService := NewAuthValidationService(validators.NewRequestValidator()).
		Wrap(NewAuthService(storages.UserRepository, cfg.App, logger))

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
