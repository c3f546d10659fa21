// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/internal/utils"
	"github.com/MKhiriev/restful-users/models"
)

const (
	msgDeleted         = "Resource deleted successfully"
	usersExportFile    = "users.csv"
	usersPathParamName = "id"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.respond(w, r, response.New().RespondUnauthorized("", nil))
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "current user lookup failed")
		return
	}

	h.respond(w, r, response.New().Respond(map[string]any{"data": user}))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	req, err := parseListUsersRequest(r, h.pagination)
	if err != nil {
		h.respondError(w, r, err, "invalid pagination parameters")
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "listing users failed")
		return
	}

	h.respond(w, r, response.New().RespondWithPagination(page, map[string]any{"data": page.Users}))
}

func (h *Handler) exportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ExportUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err, "exporting users failed")
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, u.CSVRow())
	}

	logger.FromRequest(r).Debug().Int("rows", len(rows)).Msg("users exported")
	h.respond(w, r, response.New().RespondDownloadableCSV(models.UserCSVColumns, rows, usersExportFile))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.respondError(w, r, err, "invalid user id")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "user lookup failed")
		return
	}

	h.respond(w, r, response.New().Respond(map[string]any{"data": user}))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.respond(w, r, response.New().RespondUnauthorized("", nil))
		return
	}

	userID, err := userIDFromPath(r)
	if err != nil {
		h.respondError(w, r, err, "invalid user id")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), actorID, userID); err != nil {
		h.respondError(w, r, err, "user deletion failed")
		return
	}

	h.respond(w, r, response.New().Respond(map[string]any{"message": msgDeleted}))
}

func userIDFromPath(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, usersPathParamName), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}
