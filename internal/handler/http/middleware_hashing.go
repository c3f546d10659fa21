// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of a request or response body.
const hashHeader = "HashSHA256"

const msgIntegrityCheckFailed = "Integrity check failed"

// withHashing verifies the HashSHA256 header of incoming requests that carry
// one and signs every response body with the same header.
//
// The response is buffered so the header can be set before the status line
// is written.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if requestHash := r.Header.Get(hashHeader); requestHash != "" && r.Body != nil {
			// read bytes from body
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				h.respond(w, r, response.New().RespondBadRequest("", nil, 0))
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			hashedBody := hex.EncodeToString(utils.Hash(body))
			if !hmac.Equal([]byte(hashedBody), []byte(requestHash)) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", requestHash).
					Str("hashed body", hashedBody).
					Msg("hashes are not equal")
				h.respond(w, r, response.New().RespondBadRequest(msgIntegrityCheckFailed, nil, 0))
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(hw, r)

		status := hw.status
		if status == 0 {
			status = http.StatusOK
		}

		w.Header().Set(hashHeader, hex.EncodeToString(utils.Hash(hw.body.Bytes())))
		w.WriteHeader(status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter buffers the status and body of a response.
// Headers go straight to the wrapped writer.
type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}
