// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the volcano API.
//
// The primary abstraction is [APIClient], which hides the REST transport from
// callers. The package ships an HTTP implementation built on resty
// ([NewHTTPAPIClient]).
//
// Error envelopes returned by the server are mapped back to *app.Error values
// by mapHTTPError, so callers can branch on app.KindOf(err) and read the
// server message exactly as the HTTP layer produced it.
package adapter

import (
	"context"

	"github.com/MKhiriev/volcano-api/models"
)

// APIClient defines the operations of the volcano API. Implementations are
// responsible for serialisation, authentication header management and
// mapping error envelopes to *app.Error.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. Login calls it automatically; an empty token makes the client
	// anonymous again.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Countries returns every country of the data set in alphabetical order.
	Countries(ctx context.Context) ([]models.Country, error)

	// Me returns the operator of the API.
	Me(ctx context.Context) (models.Operator, error)

	// Volcanoes lists the volcanoes matching filter.
	Volcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error)

	// Volcano returns one volcano. Population counts stay zero unless the
	// client holds a token.
	Volcano(ctx context.Context, id int64) (models.VolcanoDetails, error)

	// Profile returns the profile of email. DOB and Address stay nil unless
	// the client is logged in as email.
	Profile(ctx context.Context, email string) (models.Profile, error)

	// UpdateProfile overwrites the profile of email and returns the stored
	// result.
	UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error)
}
