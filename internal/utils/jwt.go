// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/volcano-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken for an empty email,
	// a non-positive duration or an empty sign key.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrInvalidJWTToken is returned when a token cannot be parsed, is not
	// signed with HS256 or its signature does not verify.
	ErrInvalidJWTToken = errors.New("invalid JWT token")

	// ErrExpiredJWTToken is returned when a correctly signed token carries an
	// expiry that is not in the future.
	ErrExpiredJWTToken = errors.New("JWT token has expired")

	// ErrMalformedBearerHeader is returned by ParseBearerToken for anything
	// other than "Bearer <token>".
	ErrMalformedBearerHeader = errors.New("malformed bearer authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for email.
//
// The payload is {"email": email, "exp": <now + tokenDuration in epoch
// milliseconds>}.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("ada@example.com", time.Now(), 24*time.Hour, "secret")
func GenerateJWTToken(email string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if email == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := models.Claims{
		Email: email,
		Exp:   now.Add(tokenDuration).UnixMilli(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims, ExpiresIn: tokenDuration}, nil
}

// ValidateAndParseJWTToken verifies the signature of tokenString with
// signKey and checks that its expiry lies after now.
//
// Returns:
//   - ErrInvalidJWTToken if the token is malformed, uses another signing
//     method, or its signature does not verify;
//   - ErrExpiredJWTToken if the signature is fine but exp <= now.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", time.Now())
//	if errors.Is(err, utils.ErrExpiredJWTToken) {
//	    // ask the user to log in again
//	}
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}

	if claims.Email == "" {
		return models.Token{}, fmt.Errorf("%w: empty email claim", ErrInvalidJWTToken)
	}

	if claims.ExpiredAt(now) {
		return models.Token{}, ErrExpiredJWTToken
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       *claims,
		ExpiresIn:    claims.ExpiresAt().Sub(now),
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value.
// The value must consist of exactly two space-separated parts, the scheme
// "Bearer" and a non-empty token.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) != 2 || parts[0] != models.TokenType || parts[1] == "" {
		return "", ErrMalformedBearerHeader
	}
	return parts[1], nil
}
