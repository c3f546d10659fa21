// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/internal/service"
	"github.com/MKhiriev/restful-users/internal/store"
	"github.com/MKhiriev/restful-users/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:               http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,
	service.ErrTokenCreationFailed:                   http.StatusInternalServerError,

	ErrInvalidUserID:    http.StatusBadRequest,
	ErrInvalidPageParam: http.StatusBadRequest,

	store.ErrNoUserWasFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	// store errors wrap the driver error, which may be the request deadline
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// envelopeFromError renders err with the builder shortcut matching its
// status. Validation errors keep their message and field errors; 500s never
// expose the underlying error text.
func envelopeFromError(err error) response.Envelope {
	b := response.New()

	switch status := statusFromError(err); status {
	case http.StatusUnprocessableEntity:
		vErr, _ := validators.AsValidationError(err)
		return b.RespondValidationFailed(vErr.Message, vErr.Fields, 0)
	case http.StatusBadRequest:
		return b.RespondBadRequest("", nil, 0)
	case http.StatusUnauthorized:
		return b.RespondUnauthorized("", nil)
	case http.StatusForbidden:
		return b.RespondForbidden("", nil)
	case http.StatusNotFound:
		return b.RespondNotFound("", nil)
	case http.StatusGatewayTimeout:
		return b.WithStatusCode(status).RespondWithStatusError("", nil)
	default:
		return b.RespondError("", nil, 0)
	}
}

// respondError logs err at a level matching its status and writes the error
// envelope.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	env := envelopeFromError(err)

	log := logger.FromRequest(r)
	if env.StatusCode >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", env.StatusCode).Msg(msg)
	}

	h.respond(w, r, env)
}
