// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for stored passwords.
const PasswordHashCost = 10

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns a salted bcrypt hash of password.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
//
// Returns ErrPasswordMismatch for a wrong password and a wrapped error when
// the hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
