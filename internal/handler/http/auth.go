// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/models"
)

const msgInvalidJSON = "Invalid JSON was passed"

// tokenResponse is the body of a successful login.
type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.respond(w, r, response.New().RespondBadRequest(msgInvalidJSON, nil, 0))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	h.respond(w, r, response.New().RespondCreated(map[string]any{
		"data":    registeredUser,
		"message": response.MessageCreated,
	}))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.respond(w, r, response.New().RespondBadRequest(msgInvalidJSON, nil, 0))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("device", req.DeviceName).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser, req.DeviceName)
	if err != nil {
		h.respondError(w, r, err, "creation of token failed")
		return
	}

	h.respond(w, r, response.New().Respond(tokenResponse{
		Token:     token.SignedString,
		TokenType: models.TokenType,
	}))
}
