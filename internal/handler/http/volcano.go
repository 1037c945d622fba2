// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/validators"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) countries(w http.ResponseWriter, r *http.Request) {
	if err := validators.NoQueryParams(r.URL.Query()); err != nil {
		writeError(w, r, err)
		return
	}

	countries, err := h.services.VolcanoService.Countries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, countries, http.StatusOK)
}

func (h *Handler) volcanoes(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.VolcanoesQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	volcanoes, err := h.services.VolcanoService.ListVolcanoes(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, volcanoes, http.StatusOK)
}

// volcano writes the population counts only to authenticated callers.
func (h *Handler) volcano(w http.ResponseWriter, r *http.Request) {
	id, err := validators.VolcanoID(chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	volcano, withPopulation, err := h.services.VolcanoService.GetVolcano(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if withPopulation {
		writeJSON(w, r, volcano, http.StatusOK)
		return
	}
	writeJSON(w, r, volcano.Volcano, http.StatusOK)
}
