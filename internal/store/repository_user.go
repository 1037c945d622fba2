// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "accounts" and "profiles" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindAccount looks up the credential record of email.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindAccount(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAccount(r.db.builder, email).ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.Email, &account.Hash)
	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.FindAccount").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateAccount inserts the account and its blank profile in one
// transaction, so that neither row exists without the other.
//
// Error handling:
//   - account already present, or a unique violation on insert →
//     [ErrUserAlreadyExists].
//   - any other failure → wrapped SQL-level error; nothing is persisted.
func (r *userRepository) CreateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	err := RunInTransaction(ctx, r.db.DB, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := r.accountExists(ctx, tx, account.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserAlreadyExists
		}

		if err = r.exec(ctx, tx, insertAccount(r.db.builder, account)); err != nil {
			return err
		}

		return r.exec(ctx, tx, insertBlankProfile(r.db.builder, account.Email))
	})
	if err != nil && !errors.Is(err, ErrUserAlreadyExists) {
		log.Err(err).Str("func", "*userRepository.CreateAccount").Msg("error creating account")
	}

	return err
}

// GetProfile returns the profile row of email.
func (r *userRepository) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectProfile(r.db.builder, email).ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.GetProfile").Msg("error getting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

// UpdateProfile overwrites the profile of update.Email and returns the row
// as stored. A missing profile yields [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateProfile(r.db.builder, update).ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *userRepository) accountExists(ctx context.Context, tx *sql.Tx, email string) (bool, error) {
	query, args, err := selectAccount(r.db.builder, email).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found, hash string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&found, &hash)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) exec(ctx context.Context, tx *sql.Tx, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanProfile reads a row selected with profileColumns. NULL columns stay
// nil in the returned profile.
func scanProfile(row *sql.Row) (models.Profile, error) {
	var (
		profile             models.Profile
		firstName, lastName sql.NullString
		address             sql.NullString
		dob                 nullDate
	)

	if err := row.Scan(&profile.Email, &firstName, &lastName, &dob, &address); err != nil {
		return models.Profile{}, err
	}

	profile.FirstName = nullableString(firstName)
	profile.LastName = nullableString(lastName)
	profile.Address = nullableString(address)
	if dob.Valid {
		date := models.NewDate(dob.Time)
		profile.DOB = &date
	}

	return profile, nil
}

// nullDate scans a DATE column. Drivers return it either as time.Time or,
// when SQLite loses the column type (e.g. in RETURNING), as text.
type nullDate struct {
	Time  time.Time
	Valid bool
}

// Scan implements [sql.Scanner].
func (d *nullDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		d.Time, d.Valid = v, true
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into date", value)
	}
}

func (d *nullDate) parse(s string) error {
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("cannot parse date %q: %w", s, err)
	}

	d.Time, d.Valid = t, true
	return nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
