// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"maps"
	"net/http"
)

// Default messages used by the named shortcuts when the caller passes an
// empty message.
const (
	MessageNotFound         = "Not found"
	MessageCreated          = "Resource created successfully"
	MessageUnauthorized     = "Unauthorized"
	MessageForbidden        = "Forbidden"
	MessageValidationFailed = "Validation Failed"
	MessageInternalError    = "An internal error has occurred"
)

// Builder accumulates a status code and headers and turns an outcome into an
// Envelope. It is a value type; every With* method returns a modified copy
// and leaves the receiver untouched.
type Builder struct {
	statusCode int
	headers    map[string]string
}

// New returns a Builder with status 200 and no headers. It is equivalent to
// the zero value.
func New() Builder {
	return Builder{}
}

// StatusCode returns the stored status code, 200 if none was set.
func (b Builder) StatusCode() int {
	if b.statusCode == 0 {
		return http.StatusOK
	}
	return b.statusCode
}

// WithStatusCode returns a copy of b that responds with code.
// The value is not range checked.
func (b Builder) WithStatusCode(code int) Builder {
	b.statusCode = code
	return b
}

// WithHeaders returns a copy of b with headers merged over the headers
// already accumulated. Later keys override earlier identical keys.
func (b Builder) WithHeaders(headers map[string]string) Builder {
	b.headers = mergeHeaders(b.headers, headers)
	return b
}

// Headers returns a copy of the accumulated headers.
func (b Builder) Headers() map[string]string {
	return maps.Clone(b.headers)
}

// Respond merges headers into the accumulated ones and emits a success
// envelope with data as the body verbatim.
func (b Builder) Respond(data any, headers ...map[string]string) Envelope {
	b.headers = mergeHeaders(b.headers, headers...)
	return b.envelope(SuccessBody{Data: data})
}

// RespondNotFound responds 404 with an error body.
func (b Builder) RespondNotFound(message string, errs any) Envelope {
	return b.WithStatusCode(http.StatusNotFound).
		respondWithError(orDefault(message, MessageNotFound), errs, 0)
}

// RespondCreated responds 201 with data as the body. A nil data responds with
// the default created message.
func (b Builder) RespondCreated(data any) Envelope {
	if data == nil {
		data = MessageCreated
	}
	return b.WithStatusCode(http.StatusCreated).Respond(data)
}

// RespondUnauthorized responds 401 with an error body.
func (b Builder) RespondUnauthorized(message string, errs any) Envelope {
	return b.WithStatusCode(http.StatusUnauthorized).
		respondWithError(orDefault(message, MessageUnauthorized), errs, 0)
}

// RespondForbidden responds 403 with an error body.
func (b Builder) RespondForbidden(message string, errs any) Envelope {
	return b.WithStatusCode(http.StatusForbidden).
		respondWithError(orDefault(message, MessageForbidden), errs, 0)
}

// RespondValidationFailed responds 422 with an error body. errorCode 0 means
// the status code doubles as the application code.
func (b Builder) RespondValidationFailed(message string, errs any, errorCode int) Envelope {
	return b.WithStatusCode(http.StatusUnprocessableEntity).
		respondWithError(orDefault(message, MessageValidationFailed), errs, errorCode)
}

// RespondUnprocessableEntry responds 422 with data as the body verbatim.
func (b Builder) RespondUnprocessableEntry(data any) Envelope {
	return b.WithStatusCode(http.StatusUnprocessableEntity).Respond(data)
}

// RespondBadRequest responds 400 with an error body.
func (b Builder) RespondBadRequest(message string, errs any, errorCode int) Envelope {
	return b.WithStatusCode(http.StatusBadRequest).
		respondWithError(orDefault(message, MessageValidationFailed), errs, errorCode)
}

// RespondError responds 500 with an error body.
func (b Builder) RespondError(message string, errs any, errorCode int) Envelope {
	return b.WithStatusCode(http.StatusInternalServerError).
		respondWithError(orDefault(message, MessageInternalError), errs, errorCode)
}

// RespondWithStatusError responds with the builder's current status and an
// error body. It is meant for statuses without a named shortcut, e.g. 405.
func (b Builder) RespondWithStatusError(message string, errs any) Envelope {
	return b.respondWithError(orDefault(message, http.StatusText(b.StatusCode())), errs, 0)
}

func (b Builder) respondWithError(message string, errs any, errorCode int) Envelope {
	status := b.StatusCode()
	if errorCode == 0 {
		errorCode = status
	}

	body := ErrorBody{
		Message:    message,
		StatusCode: status,
		Code:       errorCode,
	}
	if !isEmpty(errs) {
		body.Errors = errs
	}

	return b.envelope(body)
}

func (b Builder) envelope(body Body) Envelope {
	return Envelope{
		StatusCode: b.StatusCode(),
		Headers:    maps.Clone(b.headers),
		Body:       body,
	}
}

// mergeHeaders returns a fresh map holding base overlaid with every entry of
// overrides, in order. base is never modified.
func mergeHeaders(base map[string]string, overrides ...map[string]string) map[string]string {
	merged := make(map[string]string, len(base))
	maps.Copy(merged, base)
	for _, o := range overrides {
		maps.Copy(merged, o)
	}
	return merged
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
