package http

import (
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/validators"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	if err := validators.NoQueryParams(r.URL.Query()); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, h.services.OperatorService.Me(r.Context()), http.StatusOK)
}
