// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/volcano-api/models"
)

// AuthService registers accounts, checks credentials and issues or verifies
// bearer tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and overwrites user profiles. The caller identity is
// taken from the context.
type ProfileService interface {
	// GetProfile returns the profile of email; owner reports whether the
	// caller may see the personal fields.
	GetProfile(ctx context.Context, email string) (profile models.Profile, owner bool, err error)
	UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error)
}

// VolcanoService serves the read-only volcano data set.
type VolcanoService interface {
	Countries(ctx context.Context) ([]models.Country, error)
	ListVolcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error)
	// GetVolcano returns the volcano with id; withPopulation reports whether
	// the caller is authenticated and may see the population counts.
	GetVolcano(ctx context.Context, id int64) (volcano models.VolcanoDetails, withPopulation bool, err error)
}

// OperatorService reports who runs the API.
type OperatorService interface {
	Me(ctx context.Context) models.Operator
}
