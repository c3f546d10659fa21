// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/models"
)

func TestParseListUsersRequest(t *testing.T) {
	cfg := config.Pagination{DefaultPerPage: 15, MaxPerPage: 50}

	tests := []struct {
		name    string
		query   string
		want    models.ListUsersRequest
		wantErr bool
	}{
		{name: "defaults", query: "", want: models.ListUsersRequest{Page: 1, PerPage: 15}},
		{name: "explicit", query: "page=3&per_page=20", want: models.ListUsersRequest{Page: 3, PerPage: 20}},
		{name: "capped", query: "per_page=51", want: models.ListUsersRequest{Page: 1, PerPage: 50}},
		{name: "zero page", query: "page=0", wantErr: true},
		{name: "negative per_page", query: "per_page=-5", wantErr: true},
		{name: "non numeric page", query: "page=first", wantErr: true},
		{name: "float per_page", query: "per_page=1.5", wantErr: true},
		{name: "offset overflows", query: "page=1000000000000000000", wantErr: true},
		{name: "max int page", query: "page=9223372036854775807&per_page=2", wantErr: true},
		{name: "page beyond int", query: "page=99999999999999999999", wantErr: true},
		{name: "large page that fits", query: "page=1000000&per_page=50", want: models.ListUsersRequest{Page: 1000000, PerPage: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/users?"+tt.query, nil)

			got, err := parseListUsersRequest(r, cfg)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPageParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListUsersRequest_NoMaximum(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/users?per_page=500", nil)

	got, err := parseListUsersRequest(r, config.Pagination{DefaultPerPage: 10})

	require.NoError(t, err)
	assert.Equal(t, 500, got.PerPage)
}
