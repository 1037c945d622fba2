// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the credential record of a registered user.
// Hash is a bcrypt digest and must never leave the server.
type Account struct {
	// Email is the unique account identifier.
	Email string `json:"email"`

	// Hash is the salted one-way password hash.
	Hash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Credentials is the body of POST /user/register and POST /user/login.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Profile is the full profile of a user, returned to its owner only.
// Every field except Email stays nil until the first profile update.
type Profile struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *Date   `json:"dob"`
	Address   *string `json:"address"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Public returns the view of the profile shown to everyone except its owner.
func (p Profile) Public() PublicProfile {
	return PublicProfile{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

// PublicProfile is the profile view without personal fields.
type PublicProfile struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ProfileUpdateRequest is the raw body of PUT /user/{email}/profile.
// Fields are decoded as untyped JSON values so that validation can tell a
// missing field from a value of the wrong type.
type ProfileUpdateRequest struct {
	FirstName any `json:"firstName"`
	LastName  any `json:"lastName"`
	DOB       any `json:"dob"`
	Address   any `json:"address"`
}

// ProfileUpdate is a validated profile update ready to be persisted.
type ProfileUpdate struct {
	Email     string
	FirstName string
	LastName  string
	DOB       time.Time
	Address   string
}

// Identity is the caller resolved from a valid bearer token.
type Identity struct {
	Email     string
	ExpiresAt time.Time
}

// Owns reports whether the identity belongs to the given email.
func (i Identity) Owns(email string) bool {
	return i.Email != "" && i.Email == email
}
