// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
)

// withRecover turns a handler panic into the 500 error envelope.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Any("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.respond(w, r, response.New().RespondError("", nil, 0))
		}()

		next.ServeHTTP(w, r)
	})
}
