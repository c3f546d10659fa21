// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/mock"
	"github.com/MKhiriev/restful-users/internal/service"
	"github.com/MKhiriev/restful-users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	appInfo *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{RequestTimeout: 5 * time.Second},
		Pagination: config.Pagination{
			DefaultPerPage: 15,
			MaxPerPage:     100,
		},
	}
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	return newTestHandlerWithConfig(t, testConfig())
}

func newTestHandlerWithConfig(t *testing.T, cfg config.StructuredConfig) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// expectAuthenticated makes the auth middleware accept "Bearer valid" as
// userID.
func (m testMocks) expectAuthenticated(userID int64) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "valid").Return(models.Token{UserID: userID}, nil).AnyTimes()
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresConfig(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NotNil(t, h)
	assert.Equal(t, 15, h.pagination.DefaultPerPage)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Empty(t, h.hashKey)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1", "", "")).AnyTimes()
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/user"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/export"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodDelete, "/api/users/1"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(tc.method, tc.path, nil))

			// protected routes answer 401 without a token, which still proves
			// the route exists
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturnsNotFoundEnvelope(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "Not found", body["message"])
	assert.EqualValues(t, 404, body["status_code"])
	assert.EqualValues(t, 404, body["code"])
	assert.NotContains(t, body, "errors")
}

func TestInit_WrongMethodReturns405Envelope(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rec := serve(router, httptest.NewRequest(http.MethodPut, "/api/user/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
	body := decodeBody(t, rec)
	assert.Equal(t, "Method Not Allowed", body["message"])
	assert.EqualValues(t, 405, body["status_code"])
	assert.EqualValues(t, 405, body["code"])
}

func TestInit_WrongMethodOnParameterisedRoute(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated(1)

	rec := serve(h.Init(), authorized(httptest.NewRequest(http.MethodPatch, "/api/users/7", nil)))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, DELETE", rec.Header().Get("Allow"))
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-10-01", ""))

	rec := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, map[string]any{"version": "1.2.3", "date": "2026-10-01", "commit": "N/A"}, body["data"])
}
