// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_WriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	env := New().
		WithHeaders(map[string]string{"X-Trace-ID": "abc"}).
		RespondCreated(map[string]any{"id": 7})

	require.NoError(t, env.Write(rec))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestEnvelope_WriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	errs := map[string][]string{"email": {"The email must be a valid email address."}}
	require.NoError(t, New().RespondValidationFailed("The given data was invalid.", errs, 0).Write(rec))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"message": "The given data was invalid.",
		"status_code": 422,
		"code": 422,
		"errors": {"email": ["The email must be a valid email address."]}
	}`, rec.Body.String())
}

func TestEnvelope_WriteKeepsExplicitContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	env := New().Respond("x", map[string]string{"Content-Type": "application/problem+json"})
	require.NoError(t, env.Write(rec))

	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestEnvelope_WriteFile(t *testing.T) {
	rec := httptest.NewRecorder()

	env := New().RespondDownloadableCSV([]string{"a", "b"}, [][]string{{"1", "2"}}, "out.csv")
	require.NoError(t, env.Write(rec))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename='out.csv'", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a;b\n1;2\n", rec.Body.String())
}

func TestEnvelope_WriteEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	err := New().Respond(map[string]any{"ch": make(chan int)}).Write(rec)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncodingBody))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEnvelope_NilBody(t *testing.T) {
	payload, err := Envelope{StatusCode: http.StatusOK}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "null", string(payload))
}
