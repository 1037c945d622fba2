// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/models"
)

// volcanoRepository is the read-only [VolcanoRepository] over the "data"
// table.
type volcanoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVolcanoRepository constructs a [VolcanoRepository].
func NewVolcanoRepository(db *DB, logger *logger.Logger) VolcanoRepository {
	logger.Debug().Msg("creating volcano repository")
	return &volcanoRepository{
		db:     db,
		logger: logger,
	}
}

// Countries returns every distinct country in alphabetical order.
func (r *volcanoRepository) Countries(ctx context.Context) ([]models.Country, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCountries(r.db.builder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*volcanoRepository.Countries").Msg("error selecting countries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	countries := make([]models.Country, 0)
	for rows.Next() {
		var country models.Country
		if err = rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*volcanoRepository.Countries").Msg("error iterating countries")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return countries, nil
}

// ListVolcanoes returns the volcanoes of filter.Country ordered by id. An
// unknown country yields an empty slice.
func (r *volcanoRepository) ListVolcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectVolcanoes(r.db.builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*volcanoRepository.ListVolcanoes").Msg("error selecting volcanoes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	volcanoes := make([]models.VolcanoSummary, 0)
	for rows.Next() {
		var v models.VolcanoSummary
		if err = rows.Scan(&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		volcanoes = append(volcanoes, v)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*volcanoRepository.ListVolcanoes").Msg("error iterating volcanoes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return volcanoes, nil
}

// GetVolcano returns the full record of id, population counts included.
func (r *volcanoRepository) GetVolcano(ctx context.Context, id int64) (models.VolcanoDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectVolcano(r.db.builder, id).ToSql()
	if err != nil {
		return models.VolcanoDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v models.VolcanoDetails
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion,
		&v.LastEruption, &v.Summit, &v.Elevation, &v.Latitude, &v.Longitude,
		&v.Population5km, &v.Population10km, &v.Population30km, &v.Population100km,
	)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.VolcanoDetails{}, ErrVolcanoNotFound
	default:
		log.Err(err).Str("func", "*volcanoRepository.GetVolcano").Int64("id", id).Msg("error getting volcano")
		return models.VolcanoDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}
