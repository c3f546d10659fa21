// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/models"
)

const (
	pageQueryParam    = "page"
	perPageQueryParam = "per_page"
)

// parseListUsersRequest reads page (default 1) and per_page (default
// cfg.DefaultPerPage, capped at cfg.MaxPerPage) from the query string.
// Non-integer or non-positive values yield ErrInvalidPageParam, as does a
// page whose row offset does not fit in an int.
func parseListUsersRequest(r *http.Request, cfg config.Pagination) (models.ListUsersRequest, error) {
	query := r.URL.Query()

	page, err := positiveIntParam(query.Get(pageQueryParam), 1)
	if err != nil {
		return models.ListUsersRequest{}, fmt.Errorf("%w: %s", err, pageQueryParam)
	}

	perPage, err := positiveIntParam(query.Get(perPageQueryParam), cfg.DefaultPerPage)
	if err != nil {
		return models.ListUsersRequest{}, fmt.Errorf("%w: %s", err, perPageQueryParam)
	}
	if cfg.MaxPerPage > 0 && perPage > cfg.MaxPerPage {
		perPage = cfg.MaxPerPage
	}
	if page-1 > math.MaxInt/perPage {
		return models.ListUsersRequest{}, fmt.Errorf("%w: %s", ErrInvalidPageParam, pageQueryParam)
	}

	return models.ListUsersRequest{Page: page, PerPage: perPage}, nil
}

func positiveIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, ErrInvalidPageParam
	}
	return v, nil
}
