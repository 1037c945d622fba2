// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Register(r.Context(), credentials); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgUserCreated}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", token.Claims.Email).Msg("user successfully logged in")

	writeJSON(w, r, models.LoginResponse{
		TokenType: models.TokenType,
		Token:     token.SignedString,
		ExpiresIn: int64(token.ExpiresIn / time.Second),
	}, http.StatusOK)
}

// getProfile writes dob and address only when the caller owns the profile.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, owner, err := h.services.ProfileService.GetProfile(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if owner {
		writeJSON(w, r, profile, http.StatusOK)
		return
	}
	writeJSON(w, r, profile.Public(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ProfileUpdateRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), email, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

// emailParam returns the decoded {email} path segment; chi matches on the
// escaped path, so "%40" arrives undecoded.
func emailParam(r *http.Request) (string, error) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		return "", app.NotFound(app.MsgUserNotFound).Wrap(err)
	}
	return email, nil
}
