// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/store"
	"github.com/MKhiriev/volcano-api/internal/utils"
	"github.com/MKhiriev/volcano-api/internal/validators"
	"github.com/MKhiriev/volcano-api/models"
)

type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, email string) (models.Profile, bool, error) {
	log := logger.FromContext(ctx)

	profile, err := p.userRepository.GetProfile(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Profile{}, false, app.NotFound(app.MsgUserNotFound).Wrap(err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("profile lookup failed")
		return models.Profile{}, false, app.Internal(fmt.Errorf("profile lookup failed: %w", err))
	}

	identity, ok := utils.GetIdentityFromContext(ctx)
	return profile, ok && identity.Owns(email), nil
}

// UpdateProfile overwrites every profile field of email. The caller must be
// authenticated as email; the body is validated only after that.
func (p *profileService) UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return models.Profile{}, app.Unauthorized(app.MsgAuthorizationNotFound)
	}
	if !identity.Owns(email) {
		log.Info().Str("caller", identity.Email).Str("email", email).Msg("profile update of another user")
		return models.Profile{}, app.Forbidden(app.MsgForbidden)
	}

	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	update, err := validators.ParseProfileUpdate(email, req)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := p.userRepository.UpdateProfile(ctx, update)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Profile{}, app.NotFound(app.MsgUserNotFound).Wrap(err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("profile update failed")
		return models.Profile{}, app.Internal(fmt.Errorf("profile update failed: %w", err))
	}

	log.Info().Str("email", email).Msg("profile updated")
	return profile, nil
}
