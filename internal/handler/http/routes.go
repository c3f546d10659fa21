// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/restful-users/internal/response"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, withGZip)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout)
	}
	if h.hashKey != "" {
		router.Use(h.withHashing)
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.currentUser)
		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/export", h.exportUsers)
			r.Get("/{id}", h.getUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, response.New().RespondNotFound("", nil))
}
