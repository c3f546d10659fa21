// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with the 405 error envelope and an "Allow" header listing the
// methods the matched route does handle. The lookup goes through
// [chi.Mux.Match], so parameterised routes are resolved the same way the
// router resolves them.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)

		b := response.New().WithStatusCode(http.StatusMethodNotAllowed)
		if len(allowed) > 0 {
			b = b.WithHeaders(map[string]string{"Allow": strings.Join(allowed, ", ")})
		}

		if err := b.RespondWithStatusError("", nil).Write(w); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing response")
		}
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, m := range knownMethods {
		if router.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}
