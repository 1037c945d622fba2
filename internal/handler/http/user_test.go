// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/utils"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleProfile() models.Profile {
	dob := models.NewDate(time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC))
	return models.Profile{
		Email:     "ada@example.com",
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		DOB:       &dob,
		Address:   strPtr("London"),
	}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"email":"ada@example.com","password":"secret"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"error":false,"message":"User Created!"}`,
		},
		{
			name:       "conflict",
			body:       `{"email":"ada@example.com","password":"secret"}`,
			serviceErr: app.Conflict(app.MsgUserAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   envelope(t, app.MsgUserAlreadyExists),
		},
		{
			name:       "incomplete",
			body:       `{"email":"ada@example.com"}`,
			serviceErr: app.BadRequest(app.MsgCredentialsIncomplete),
			wantStatus: http.StatusBadRequest,
			wantBody:   envelope(t, app.MsgCredentialsIncomplete),
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   envelope(t, app.MsgInvalidJSON),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Credentials
			services := testServices()
			services.AuthService = &fakeAuthService{
				registerFn: func(_ context.Context, credentials models.Credentials) error {
					got = credentials
					return tt.serviceErr
				},
			}

			rr := do(t, newTestRouter(services), http.MethodPost, "/user/register", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, models.Credentials{Email: "ada@example.com", Password: "secret"}, got)
			}
		})
	}
}

func TestRegister_EmptyBodyReachesValidation(t *testing.T) {
	called := false
	services := testServices()
	services.AuthService = &fakeAuthService{
		registerFn: func(_ context.Context, credentials models.Credentials) error {
			called = true
			assert.Equal(t, models.Credentials{}, credentials)
			return app.BadRequest(app.MsgCredentialsIncomplete)
		},
	}

	rr := do(t, newTestRouter(services), http.MethodPost, "/user/register", "", nil)
	assert.True(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	services := testServices()
	services.AuthService = &fakeAuthService{
		loginFn: func(_ context.Context, credentials models.Credentials) (models.Token, error) {
			if credentials.Password != "secret" {
				return models.Token{}, app.Unauthorized(app.MsgIncorrectEmailOrPassword)
			}
			return models.Token{
				SignedString: "signed.jwt.token",
				Claims:       models.Claims{Email: credentials.Email},
				ExpiresIn:    24 * time.Hour,
			}, nil
		},
	}
	router := newTestRouter(services)

	rr := do(t, router, http.MethodPost, "/user/login", `{"email":"ada@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token_type":"Bearer","token":"signed.jwt.token","expires_in":86400}`, rr.Body.String())

	rr = do(t, router, http.MethodPost, "/user/login", `{"email":"ada@example.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgIncorrectEmailOrPassword), rr.Body.String())
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	for _, owner := range []bool{false, true} {
		services := testServices()
		services.ProfileService = &fakeProfileService{
			getProfileFn: func(_ context.Context, email string) (models.Profile, bool, error) {
				assert.Equal(t, "ada@example.com", email)
				return sampleProfile(), owner, nil
			},
		}

		rr := do(t, newTestRouter(services), http.MethodGet, "/user/ada@example.com/profile", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		if owner {
			assert.JSONEq(t, `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","dob":"1815-12-10","address":"London"}`, rr.Body.String())
		} else {
			assert.JSONEq(t, `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}`, rr.Body.String())
		}
	}
}

func TestGetProfile_EscapedEmailAndNotFound(t *testing.T) {
	services := testServices()
	services.ProfileService = &fakeProfileService{
		getProfileFn: func(_ context.Context, email string) (models.Profile, bool, error) {
			assert.Equal(t, "ghost@example.com", email)
			return models.Profile{}, false, app.NotFound(app.MsgUserNotFound)
		},
	}

	rr := do(t, newTestRouter(services), http.MethodGet, "/user/ghost%40example.com/profile", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgUserNotFound), rr.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	services := testServices()
	services.AuthService = &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{Claims: models.Claims{Email: tokenString + "@example.com"}}, nil
		},
	}
	services.ProfileService = &fakeProfileService{
		updateProfileFn: func(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error) {
			identity, ok := utils.GetIdentityFromContext(ctx)
			if !ok {
				return models.Profile{}, app.Unauthorized(app.MsgAuthorizationNotFound)
			}
			if !identity.Owns(email) {
				return models.Profile{}, app.Forbidden(app.MsgForbidden)
			}
			assert.Equal(t, "Ada", req.FirstName)
			assert.Equal(t, "1815-12-10", req.DOB)
			return sampleProfile(), nil
		},
	}
	router := newTestRouter(services)
	body := `{"firstName":"Ada","lastName":"Lovelace","dob":"1815-12-10","address":"London"}`

	rr := do(t, router, http.MethodPut, "/user/ada@example.com/profile", body, map[string]string{"Authorization": "Bearer ada"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","dob":"1815-12-10","address":"London"}`, rr.Body.String())

	rr = do(t, router, http.MethodPut, "/user/ada@example.com/profile", body, map[string]string{"Authorization": "Bearer bob"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgForbidden), rr.Body.String())

	rr = do(t, router, http.MethodPut, "/user/ada@example.com/profile", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgAuthorizationNotFound), rr.Body.String())
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	rr := do(t, newTestRouter(testServices()), http.MethodPut, "/user/ada@example.com/profile", `{"firstName":`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgInvalidJSON), rr.Body.String())
}
