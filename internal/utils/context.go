// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/volcano-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the caller identity resolved from
// a bearer token in the context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when the request carried no Authorization header, i.e. the
// caller is anonymous.
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if ok && identity.Owns(email) {
//	    // personal view
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
