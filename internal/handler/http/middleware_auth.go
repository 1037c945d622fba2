// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/utils"
)

const authorizationHeader = "Authorization"

// auth is an HTTP middleware that resolves the caller identity from an
// optional bearer token.
//
// A request without an "Authorization" header, or with an empty one, passes
// through anonymously.
// A present header must be "Bearer <token>" with a token that verifies and
// has not expired; otherwise the request is rejected with 401 and the
// handler does not run. On success the identity is stored in the request
// context, see [utils.GetIdentityFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if r.Header.Get(authorizationHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(r.Header.Get(authorizationHeader))
		if err != nil {
			writeError(w, r, app.Unauthorized(app.MsgMalformedAuthorizationHeader).Wrap(err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("email", token.Claims.Email).Msg("caller authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity())))
	})
}
