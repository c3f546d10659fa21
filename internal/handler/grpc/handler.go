// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health checking service for the
// users API.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/service"
)

// ServiceName is the name reported by the health service next to the
// overall ("") status.
const ServiceName = "restful-users"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the lifecycle of the
// application: NOT_SERVING until SetServing is called and again after
// Shutdown.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with every service reported as
// NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the application healthy.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("gRPC health status set to SERVING")
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
// Watchers are notified before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
