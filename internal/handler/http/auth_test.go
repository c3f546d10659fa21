// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/restful-users/internal/service"
	"github.com/MKhiriev/restful-users/internal/validators"
	"github.com/MKhiriev/restful-users/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	h, m := newTestHandler(t)
	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	req := models.RegisterRequest{Name: "John", Email: "john@example.com", Password: "password"}

	m.auth.EXPECT().RegisterUser(gomock.Any(), req).
		Return(models.User{UserID: 1, Name: "John", Email: "john@example.com", PasswordHash: "secret-hash", CreatedAt: createdAt}, nil)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/register",
		`{"name":"John","email":"john@example.com","password":"password"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Resource created successfully", body["message"])
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["id"])
	assert.Equal(t, "john@example.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/register", `{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidJSON, decodeBody(t, rec)["message"])
}

func TestRegister_EmailTaken(t *testing.T) {
	h, m := newTestHandler(t)
	vErr := validators.NewValidationError()
	vErr.Add("email", service.MsgEmailAlreadyTaken)

	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, vErr)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/register",
		`{"name":"John","email":"john@example.com","password":"password"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "The given data was invalid.", body["message"])
	assert.Equal(t, map[string]any{"email": []any{"The email has already been taken."}}, body["errors"])
}

func TestRegister_InternalError(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db is down"))

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/register", `{}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "An internal error has occurred", body["message"])
	assert.NotContains(t, rec.Body.String(), "db is down")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.LoginRequest{Email: "john@example.com", Password: "password", DeviceName: "iphone"}
	user := models.User{UserID: 3, Email: "john@example.com"}

	gomock.InOrder(
		m.auth.EXPECT().Login(gomock.Any(), req).Return(user, nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), user, "iphone").Return(models.Token{SignedString: "jwt-token"}, nil),
	)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/login",
		`{"email":"john@example.com","password":"password","device_name":"iphone"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jwt-token", body["token"])
	assert.Equal(t, "Bearer", body["token_type"])
}

func TestLogin_WrongPassword(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, validators.NewFieldError("password", service.MsgIncorrectPassword))

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/login",
		`{"email":"john@example.com","password":"nope","device_name":"iphone"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "The provided password is incorrect.", body["message"])
	assert.EqualValues(t, 422, body["code"])
	assert.Equal(t, map[string]any{"password": []any{"The provided password is incorrect."}}, body["errors"])
}

func TestLogin_TokenCreationFails(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/login",
		`{"email":"john@example.com","password":"password","device_name":"iphone"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), jsonRequest(http.MethodPost, "/api/user/login", `not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
