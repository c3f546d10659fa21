// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
)

// withTimeout cancels the request context after h.requestTimeout. When the
// deadline passes before the handler wrote anything, the 504 error envelope
// is sent instead.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		tw := &timeoutWriter{ResponseWriter: w}
		defer func() {
			cancel()
			if tw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			logger.FromRequest(r).Warn().Dur("timeout", h.requestTimeout).Msg("request timed out")
			h.respond(w, r, response.New().WithStatusCode(http.StatusGatewayTimeout).RespondWithStatusError("", nil))
		}()

		next.ServeHTTP(tw, r.WithContext(ctx))
	})
}

type timeoutWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *timeoutWriter) WriteHeader(statusCode int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *timeoutWriter) Write(data []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(data)
}
