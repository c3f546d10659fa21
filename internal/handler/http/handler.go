// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/internal/service"
	"github.com/MKhiriev/restful-users/internal/utils"
)

type Handler struct {
	services *service.Services

	pagination     config.Pagination
	requestTimeout time.Duration
	hashKey        string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pagination:     cfg.Pagination,
		requestTimeout: cfg.Server.RequestTimeout,
		hashKey:        cfg.App.HashKey,
		logger:         logger,
	}
}

// respond writes env and logs delivery failures.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, env response.Envelope) {
	if err := env.Write(w); err != nil {
		logger.FromRequest(r).Err(err).Int("status", env.StatusCode).Msg("error writing response")
	}
}
