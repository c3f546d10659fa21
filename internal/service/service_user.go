// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/store"
	"github.com/MKhiriev/restful-users/models"
)

// exportBatchSize is the page size used to read all users for export.
const exportBatchSize = 100

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the user with the given id. A missing user yields an error
// matching store.ErrNoUserWasFound.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns the requested page of users. req.Page and req.PerPage
// must be positive.
func (s *userService) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UsersPage, error) {
	if req.Page < 1 || req.PerPage < 1 {
		return models.UsersPage{}, ErrInvalidDataProvided
	}

	users, total, err := s.userRepository.ListUsers(ctx, req.Page, req.PerPage)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("page", req.Page).Int("per_page", req.PerPage).Msg("listing users failed")
		return models.UsersPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.UsersPage{
		Users:      users,
		TotalCount: total,
		Page:       req.Page,
		Size:       req.PerPage,
	}, nil
}

// DeleteUser removes userID. The target must exist (else
// store.ErrNoUserWasFound) and must be the actor's own account (else
// ErrUnauthorizedAccessToDifferentUserData).
func (s *userService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	if actorID != userID {
		log.Warn().Int64("actor_id", actorID).Int64("user_id", userID).Msg("attempt to delete another user")
		return ErrUnauthorizedAccessToDifferentUserData
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}
	log.Info().Int64("user_id", userID).Msg("user deleted")

	return nil
}

// ExportUsers reads every user ordered by id in batches.
func (s *userService) ExportUsers(ctx context.Context) ([]models.User, error) {
	var all []models.User
	for page := 1; ; page++ {
		users, total, err := s.userRepository.ListUsers(ctx, page, exportBatchSize)
		if err != nil {
			return nil, fmt.Errorf("exporting users failed: %w", err)
		}
		if all == nil {
			all = make([]models.User, 0, total)
		}
		all = append(all, users...)

		if len(users) < exportBatchSize || len(all) >= total {
			return all, nil
		}
	}
}
