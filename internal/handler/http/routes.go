// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	// registry
	router.Get("/api/users", h.forward)
	router.Post("/api/users", h.forward)
	router.Put("/api/users", h.forward)
	router.Get("/api/users/{id}", h.forward)
	router.Put("/api/users/{id}", h.forward)
	router.Delete("/api/users/{id}", h.forward)

	// auth
	router.Post("/api/auth/login", h.forward)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
