// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/restful-users/internal/service"
	"github.com/MKhiriev/restful-users/internal/utils"
	"github.com/MKhiriev/restful-users/models"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		setup        func(m testMocks)
		wantStatus   int
		wantUserID   int64
		expectCalled bool
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(testMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			setup:      func(testMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "too many parts",
			header:     "Bearer a b",
			setup:      func(testMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired or invalid token",
			header: "Bearer expired",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: 42}, nil)
			},
			wantStatus:   http.StatusOK,
			wantUserID:   42,
			expectCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			called := false
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(h.auth(next), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.expectCalled, called)
			if tt.expectCalled {
				assert.Equal(t, tt.wantUserID, gotUserID)
			} else {
				body := decodeBody(t, rec)
				assert.Equal(t, "Unauthorized", body["message"])
				assert.EqualValues(t, 401, body["status_code"])
			}
		})
	}
}
