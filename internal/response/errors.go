// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import "errors"

var (
	// ErrDataNotMapping is the panic value (wrapped) raised by
	// RespondWithPagination when the payload is not a string-keyed map.
	// Passing such data is a programmer error.
	ErrDataNotMapping = errors.New("paginated data must be a string-keyed map")

	// ErrEncodingBody is returned by Envelope.Write and Envelope.Bytes when the
	// body cannot be serialized.
	ErrEncodingBody = errors.New("error encoding response body")
)
