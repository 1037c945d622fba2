package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the token_type reported by POST /user/login.
const TokenType = "Bearer"

// Claims is the payload of a bearer token: the owner email and an absolute
// expiry in epoch milliseconds.
//
// Expiry is checked by the application with millisecond precision, so the
// [jwt.Claims] getters report no registered claims and the jwt
// library only verifies the signature.
type Claims struct {
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

// ExpiresAt returns the expiry as a time.Time.
func (c Claims) ExpiresAt() time.Time {
	return time.UnixMilli(c.Exp)
}

// ExpiredAt reports whether the token is no longer valid at now.
func (c Claims) ExpiredAt(now time.Time) bool {
	return c.Exp <= now.UnixMilli()
}

// GetExpirationTime implements [jwt.Claims].
func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuedAt implements [jwt.Claims].
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

// GetNotBefore implements [jwt.Claims].
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements [jwt.Claims].
func (c Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements [jwt.Claims].
func (c Claims) GetSubject() (string, error) { return c.Email, nil }

// GetAudience implements [jwt.Claims].
func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Token is an issued bearer token.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string

	// Claims is the payload the token was signed with.
	Claims Claims

	// ExpiresIn is the lifetime of the token at the moment it was issued.
	ExpiresIn time.Duration
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity returns the caller identity carried by the token.
func (t Token) Identity() Identity {
	return Identity{Email: t.Claims.Email, ExpiresAt: t.Claims.ExpiresAt()}
}
