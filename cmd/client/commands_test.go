// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/restful-users/internal/adapter"
	"github.com/MKhiriev/restful-users/internal/mock"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/models"
)

func TestRun_Register(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().Register(gomock.Any(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}).
		Return(models.User{UserID: 1, Name: "Ann", Email: "ann@example.com"}, nil)

	var out bytes.Buffer
	err := run(context.Background(), api, "register",
		[]string{"-name", "Ann", "-email", "ann@example.com", "-password", "secret1"}, &out)

	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "ann@example.com", got["email"])
}

func TestRun_LoginPrintsToken(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret1", DeviceName: "laptop"}).
		Return("jwt", nil)

	var out bytes.Buffer
	err := run(context.Background(), api, "login",
		[]string{"-email", "ann@example.com", "-password", "secret1", "-device", "laptop"}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"jwt","token_type":"Bearer"}`, out.String())
}

func TestRun_LoginValidationErrorIncludesFields(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("login request: %w", &adapter.APIError{
		StatusCode: 422,
		Message:    "The given data was invalid.",
		Errors:     map[string][]string{"email": {"The email field must be a valid email address."}},
	}))

	err := run(context.Background(), api, "login", []string{"-email", "nope", "-password", "x"}, &bytes.Buffer{})

	require.ErrorIs(t, err, adapter.ErrValidation)
	assert.Contains(t, err.Error(), "The email field must be a valid email address.")
}

func TestRun_List(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().ListUsers(gomock.Any(), 2, 10).
		Return([]models.User{{UserID: 11}}, response.Meta{Pages: 2, CurrentPage: 2, PerPage: 10, Total: 11}, nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, "list", []string{"-page", "2", "-per-page", "10"}, &out))

	var got struct {
		Data      []models.User `json:"data"`
		Paginator response.Meta `json:"paginator"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Data, 1)
	assert.Equal(t, 11, got.Paginator.Total)
}

func TestRun_GetAndDeleteRequireID(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))

	for _, command := range []string{"get", "delete"} {
		for _, args := range [][]string{nil, {"abc"}, {"0"}, {"1", "2"}} {
			err := run(context.Background(), api, command, args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errMissingUserID, "%s %v", command, args)
		}
	}
}

func TestRun_Delete(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(adapter.ErrForbidden)

	err := run(context.Background(), api, "delete", []string{"5"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestRun_ExportToFile(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	api.EXPECT().ExportUsers(gomock.Any()).Return([]byte("id;name\n1;Ann\n"), nil).Times(2)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, "export", nil, &out))
	assert.Equal(t, "id;name\n1;Ann\n", out.String())

	file := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, run(context.Background(), api, "export", []string{"-o", file}, &bytes.Buffer{}))
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "id;name\n1;Ann\n", string(content))
}

func TestRun_UnknownCommand(t *testing.T) {
	api := mock.NewMockUsersAPI(gomock.NewController(t))

	err := run(context.Background(), api, "frobnicate", nil, &bytes.Buffer{})

	assert.ErrorIs(t, err, errUnknownCommand)
}
