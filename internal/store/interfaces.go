package store

import (
	"context"

	"github.com/MKhiriev/volcano-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their profiles.
type UserRepository interface {
	// FindAccount returns the account registered under email or
	// ErrUserNotFound.
	FindAccount(ctx context.Context, email string) (models.Account, error)
	// CreateAccount stores the account together with an empty profile.
	// It returns ErrUserAlreadyExists when the email is taken.
	CreateAccount(ctx context.Context, account models.Account) error
	// GetProfile returns the profile of email or ErrUserNotFound.
	GetProfile(ctx context.Context, email string) (models.Profile, error)
	// UpdateProfile overwrites all profile fields and returns the stored row.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
}

// VolcanoRepository reads the volcano data set.
type VolcanoRepository interface {
	Countries(ctx context.Context) ([]models.Country, error)
	ListVolcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error)
	// GetVolcano returns the full record of id or ErrVolcanoNotFound.
	GetVolcano(ctx context.Context, id int64) (models.VolcanoDetails, error)
}
