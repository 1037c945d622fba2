package http

import (
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/app"
)

var kindStatusMap = map[app.Kind]int{
	app.KindBadRequest:   http.StatusBadRequest,
	app.KindUnauthorized: http.StatusUnauthorized,
	app.KindForbidden:    http.StatusForbidden,
	app.KindNotFound:     http.StatusNotFound,
	app.KindConflict:     http.StatusConflict,
	app.KindInternal:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[app.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
