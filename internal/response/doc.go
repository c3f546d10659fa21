// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response builds uniform API responses.
//
// A [Builder] is an immutable value: [Builder.WithStatusCode] and
// [Builder.WithHeaders] return a copy, so a builder created for one request
// can never leak its status or headers into another. The zero value is ready
// to use and responds with 200 OK.
//
// Terminal methods return an [Envelope] holding the status code, the
// accumulated headers and exactly one [Body]:
//
//   - [SuccessBody] wraps caller data verbatim;
//   - [ErrorBody] renders the error shape
//     {"message", "status_code", "code", ["errors"]};
//   - [FileBody] carries raw bytes for downloads (CSV export).
//
// The envelope is delivered with [Envelope.Write]. Named shortcuts such as
// [Builder.RespondNotFound] or [Builder.RespondValidationFailed] encode the
// project's REST status conventions:
//
//	RespondNotFound            404  error body
//	RespondCreated             201  success body
//	RespondUnauthorized        401  error body
//	RespondForbidden           403  error body
//	RespondValidationFailed    422  error body
//	RespondUnprocessableEntry  422  success body
//	RespondBadRequest          400  error body
//	RespondError               500  error body
//
// Paginated responses merge a "paginator" object into a map payload, see
// [Builder.RespondWithPagination].
package response
