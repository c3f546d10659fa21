// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, env Envelope) map[string]any {
	t.Helper()
	payload, err := env.Bytes()
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	return body
}

func TestBuilder_DefaultStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, New().StatusCode())
	assert.Equal(t, http.StatusOK, Builder{}.StatusCode())
	assert.Equal(t, http.StatusOK, New().Respond("ok").StatusCode)
}

func TestBuilder_WithStatusCodePersists(t *testing.T) {
	b := New().WithStatusCode(http.StatusAccepted)

	assert.Equal(t, http.StatusAccepted, b.StatusCode())
	assert.Equal(t, http.StatusAccepted, b.Respond(nil).StatusCode)
	assert.Equal(t, http.StatusAccepted, b.Respond("again").StatusCode)
}

// TestBuilder_WithStatusCodeIsCopy verifies that setting a status returns a
// new value and leaves the original builder untouched.
func TestBuilder_WithStatusCodeIsCopy(t *testing.T) {
	base := New()
	_ = base.WithStatusCode(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, base.StatusCode())
}

func TestBuilder_WithHeaders(t *testing.T) {
	tests := []struct {
		name  string
		calls []map[string]string
		want  map[string]string
	}{
		{
			name:  "disjoint keys accumulate",
			calls: []map[string]string{{"X-A": "1"}, {"X-B": "2"}},
			want:  map[string]string{"X-A": "1", "X-B": "2"},
		},
		{
			name:  "same key keeps later value",
			calls: []map[string]string{{"X-A": "1"}, {"X-A": "2"}},
			want:  map[string]string{"X-A": "2"},
		},
		{
			name:  "nil map is a no-op",
			calls: []map[string]string{{"X-A": "1"}, nil},
			want:  map[string]string{"X-A": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, h := range tt.calls {
				b = b.WithHeaders(h)
			}
			assert.Equal(t, tt.want, b.Headers())
			assert.Equal(t, tt.want, b.Respond(nil).Headers)
		})
	}
}

func TestBuilder_WithHeadersDoesNotAlias(t *testing.T) {
	first := New().WithHeaders(map[string]string{"X-A": "1"})
	second := first.WithHeaders(map[string]string{"X-A": "2", "X-B": "3"})

	assert.Equal(t, map[string]string{"X-A": "1"}, first.Headers())
	assert.Equal(t, map[string]string{"X-A": "2", "X-B": "3"}, second.Headers())

	input := map[string]string{"X-C": "4"}
	b := New().WithHeaders(input)
	input["X-C"] = "changed"
	assert.Equal(t, "4", b.Headers()["X-C"])
}

func TestBuilder_RespondMergesHeaders(t *testing.T) {
	b := New().WithHeaders(map[string]string{"X-A": "1", "X-B": "1"})

	env := b.Respond(map[string]any{"k": "v"}, map[string]string{"X-B": "2"})

	assert.Equal(t, map[string]string{"X-A": "1", "X-B": "2"}, env.Headers)
	assert.Equal(t, SuccessBody{Data: map[string]any{"k": "v"}}, env.Body)
	assert.False(t, env.IsError())
}

func TestBuilder_RespondBodyVerbatim(t *testing.T) {
	payload, err := New().Respond([]int{1, 2, 3}).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(payload))

	payload, err = New().Respond("plain").Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `"plain"`, string(payload))
}

// TestBuilder_ShortcutStatuses verifies that every named shortcut forces its
// status regardless of the status stored before the call.
func TestBuilder_ShortcutStatuses(t *testing.T) {
	prior := New().WithStatusCode(http.StatusAccepted)

	tests := []struct {
		name        string
		env         Envelope
		wantStatus  int
		wantError   bool
		wantMessage string
	}{
		{"not found", prior.RespondNotFound("", nil), http.StatusNotFound, true, MessageNotFound},
		{"created", prior.RespondCreated(nil), http.StatusCreated, false, ""},
		{"unauthorized", prior.RespondUnauthorized("", nil), http.StatusUnauthorized, true, MessageUnauthorized},
		{"forbidden", prior.RespondForbidden("", nil), http.StatusForbidden, true, MessageForbidden},
		{"validation failed", prior.RespondValidationFailed("", nil, 0), http.StatusUnprocessableEntity, true, MessageValidationFailed},
		{"unprocessable entry", prior.RespondUnprocessableEntry(map[string]any{"a": 1}), http.StatusUnprocessableEntity, false, ""},
		{"bad request", prior.RespondBadRequest("", nil, 0), http.StatusBadRequest, true, MessageValidationFailed},
		{"internal error", prior.RespondError("", nil, 0), http.StatusInternalServerError, true, MessageInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.env.StatusCode)
			assert.Equal(t, tt.wantError, tt.env.IsError())

			if tt.wantError {
				body := decodeBody(t, tt.env)
				assert.Equal(t, tt.wantMessage, body["message"])
				assert.EqualValues(t, tt.wantStatus, body["status_code"])
				assert.EqualValues(t, tt.wantStatus, body["code"])
			}
		})
	}
}

func TestBuilder_RespondCreatedDefaultMessage(t *testing.T) {
	payload, err := New().RespondCreated(nil).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `"Resource created successfully"`, string(payload))

	payload, err = New().RespondCreated(map[string]any{"id": 1}).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(payload))
}

func TestBuilder_ErrorsKeyPresence(t *testing.T) {
	tests := []struct {
		name      string
		errs      any
		wantKey   bool
		wantValue any
	}{
		{name: "nil", errs: nil},
		{name: "empty slice", errs: []string{}},
		{name: "empty map", errs: map[string][]string{}},
		{name: "empty string", errs: ""},
		{name: "nil map pointer", errs: (*map[string]string)(nil)},
		{
			name:      "field errors",
			errs:      map[string][]string{"email": {"The email field is required."}},
			wantKey:   true,
			wantValue: map[string]any{"email": []any{"The email field is required."}},
		},
		{
			name:      "list of errors",
			errs:      []string{"first", "second"},
			wantKey:   true,
			wantValue: []any{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := decodeBody(t, New().RespondValidationFailed("invalid", tt.errs, 0))

			value, ok := body["errors"]
			require.Equal(t, tt.wantKey, ok)
			if tt.wantKey {
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestBuilder_ErrorCode(t *testing.T) {
	t.Run("defaults to status code", func(t *testing.T) {
		env := New().RespondBadRequest("bad", nil, 0)
		assert.Equal(t, ErrorBody{Message: "bad", StatusCode: 400, Code: 400}, env.Body)
	})

	t.Run("explicit code wins", func(t *testing.T) {
		env := New().RespondValidationFailed("taken", nil, 4221)
		assert.Equal(t, ErrorBody{Message: "taken", StatusCode: 422, Code: 4221}, env.Body)
	})

	t.Run("internal error", func(t *testing.T) {
		body := decodeBody(t, New().RespondError("boom", nil, 5001))
		assert.EqualValues(t, 500, body["status_code"])
		assert.EqualValues(t, 5001, body["code"])
	})
}

func TestBuilder_RespondWithStatusError(t *testing.T) {
	env := New().WithStatusCode(http.StatusMethodNotAllowed).RespondWithStatusError("", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, env.StatusCode)
	assert.Equal(t, ErrorBody{
		Message:    http.StatusText(http.StatusMethodNotAllowed),
		StatusCode: http.StatusMethodNotAllowed,
		Code:       http.StatusMethodNotAllowed,
	}, env.Body)
}

func TestBuilder_ErrorResponseKeepsHeaders(t *testing.T) {
	env := New().WithHeaders(map[string]string{"X-Trace-ID": "abc"}).RespondNotFound("missing", nil)

	assert.Equal(t, map[string]string{"X-Trace-ID": "abc"}, env.Headers)
}
