package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/go-resty/resty/v2"
)

var statusKindMap = map[int]app.Kind{
	http.StatusBadRequest:          app.KindBadRequest,
	http.StatusUnauthorized:        app.KindUnauthorized,
	http.StatusForbidden:           app.KindForbidden,
	http.StatusNotFound:            app.KindNotFound,
	http.StatusConflict:            app.KindConflict,
	http.StatusInternalServerError: app.KindInternal,
}

// mapHTTPError converts a non-2xx response into an *app.Error whose message
// is taken from the error envelope, or from the raw body when the server did
// not send one.
func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() && resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if envelope, ok := resp.Error().(*models.ErrorResponse); ok && envelope != nil && envelope.Error {
		message = envelope.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	kind, ok := statusKindMap[resp.StatusCode()]
	if !ok {
		return &app.Error{
			Kind:    app.KindInternal,
			Message: message,
			Err:     fmt.Errorf("%w: http %d", ErrUnexpectedReply, resp.StatusCode()),
		}
	}

	return &app.Error{Kind: kind, Message: message}
}
