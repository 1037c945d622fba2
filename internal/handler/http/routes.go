// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		withGZip,
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("X-Frame-Options", "DENY"),
	)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/countries", h.countries)
		r.Get("/me", h.me)
		r.Get("/volcanoes", h.volcanoes)
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
	})

	// routes with optional authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/volcano/{id}", h.volcano)
		r.Get("/user/{email}/profile", h.getProfile)
		r.Put("/user/{email}/profile", h.updateProfile)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
