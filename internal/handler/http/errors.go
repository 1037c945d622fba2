// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/utils"
)

// writeError writes err as the error envelope.
//
// The status comes from the app.Error kind found in err's chain. Errors
// without one are reported as 500 with a generic message; the cause is only
// logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := app.MsgInternalServerError
	if appErr, ok := app.AsError(err); ok && appErr.Kind != app.KindInternal {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteError(w, message, status); writeErr != nil {
		log.Err(writeErr).Msg("error response was not written")
	}
}

// writeJSON writes data with status and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("response was not written")
	}
}

// decodeJSON reads the request body into dst. An empty body decodes as an
// empty object so that the field checks report what is missing.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return app.BadRequest(app.MsgInvalidJSON).Wrap(err)
}
