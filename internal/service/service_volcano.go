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
	"github.com/MKhiriev/volcano-api/models"
)

type volcanoService struct {
	volcanoRepository store.VolcanoRepository

	logger *logger.Logger
}

func NewVolcanoService(volcanoRepository store.VolcanoRepository, logger *logger.Logger) VolcanoService {
	return &volcanoService{
		volcanoRepository: volcanoRepository,
		logger:            logger,
	}
}

func (v *volcanoService) Countries(ctx context.Context) ([]models.Country, error) {
	countries, err := v.volcanoRepository.Countries(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("countries lookup failed")
		return nil, app.Internal(fmt.Errorf("countries lookup failed: %w", err))
	}

	return countries, nil
}

func (v *volcanoService) ListVolcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error) {
	volcanoes, err := v.volcanoRepository.ListVolcanoes(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("country", filter.Country).
			Str("populated_within", string(filter.PopulatedWithin)).
			Msg("volcano listing failed")
		return nil, app.Internal(fmt.Errorf("volcano listing failed: %w", err))
	}

	return volcanoes, nil
}

func (v *volcanoService) GetVolcano(ctx context.Context, id int64) (models.VolcanoDetails, bool, error) {
	volcano, err := v.volcanoRepository.GetVolcano(ctx, id)
	if errors.Is(err, store.ErrVolcanoNotFound) {
		return models.VolcanoDetails{}, false, app.NotFound(fmt.Sprintf(app.MsgVolcanoNotFound, id)).Wrap(err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("volcano lookup failed")
		return models.VolcanoDetails{}, false, app.Internal(fmt.Errorf("volcano lookup failed: %w", err))
	}

	_, authenticated := utils.GetIdentityFromContext(ctx)
	return volcano, authenticated, nil
}
