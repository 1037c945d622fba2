// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/internal/config"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/store"
	"github.com/MKhiriev/volcano-api/internal/utils"
	"github.com/MKhiriev/volcano-api/internal/validators"
	"github.com/MKhiriev/volcano-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the bearer
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// validator checks register and login bodies.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and checking expiry.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to userRepository and
// populated with token parameters from cfg. A nil now means time.Now.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, now func() time.Time, logger *logger.Logger) AuthService {
	if now == nil {
		now = time.Now
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		now:            now,
		logger:         logger,
	}
}

// Register creates an account with a bcrypt hash of the password and a blank
// profile.
//
// Returns:
//   - a BadRequest app.Error if email or password is missing;
//   - a Conflict app.Error if the email is already registered;
//   - a wrapped error for any other failure.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("email", credentials.Email).Msg("invalid registration body")
		return err
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return app.Internal(fmt.Errorf("password hashing failed: %w", err))
	}

	err = a.userRepository.CreateAccount(ctx, models.Account{Email: credentials.Email, Hash: hash})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Info().Str("email", credentials.Email).Msg("registration of existing user")
		return app.Conflict(app.MsgUserAlreadyExists).Wrap(err)
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account creation ended with error")
		return app.Internal(fmt.Errorf("account creation ended with error: %w", err))
	}

	log.Info().Str("email", credentials.Email).Msg("user registered")
	return nil
}

// Login checks credentials and issues a token on success.
//
// An unknown email and a wrong password produce the same Unauthorized
// app.Error so that the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("email", credentials.Email).Msg("invalid login body")
		return models.Token{}, err
	}

	account, err := a.userRepository.FindAccount(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login for unknown email")
		return models.Token{}, app.Unauthorized(app.MsgIncorrectEmailOrPassword).Wrap(err)
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account search by email failed")
		return models.Token{}, app.Internal(fmt.Errorf("account search by email failed: %w", err))
	}

	err = utils.ComparePassword(account.Hash, credentials.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Str("email", credentials.Email).Msg("wrong password")
		return models.Token{}, app.Unauthorized(app.MsgIncorrectEmailOrPassword).Wrap(err)
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("password comparison failed")
		return models.Token{}, app.Internal(fmt.Errorf("password comparison failed: %w", err))
	}

	return a.CreateToken(ctx, account.Email)
}

// CreateToken issues a signed token for email that expires tokenDuration
// from now.
func (a *authService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(email, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, app.Internal(fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
	}

	return token, nil
}

// ParseToken verifies tokenString and returns the decoded token.
//
// Failures are returned as Unauthorized app.Errors: "token has expired" for
// a correctly signed but expired token, "Invalid token" for everything else.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now())
	if errors.Is(err, utils.ErrExpiredJWTToken) {
		return models.Token{}, app.Unauthorized(app.MsgTokenIsExpired).Wrap(err)
	}
	if err != nil {
		return models.Token{}, app.Unauthorized(app.MsgInvalidToken).Wrap(err)
	}

	return token, nil
}
