// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the tagged
// error type used across the volcano-api handlers, services and validators.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgQueryParamsNotPermitted is returned by routes that accept no query
	// parameters at all.
	MsgQueryParamsNotPermitted = "Invalid query parameters. Query parameters are not permitted."

	// MsgCountryRequired is returned when GET /volcanoes is called without a
	// non-empty country parameter.
	MsgCountryRequired = "country is a required query parameter."

	// MsgOnlyCountryAndPopulatedWithin is returned when GET /volcanoes
	// receives keys other than country and populatedWithin.
	MsgOnlyCountryAndPopulatedWithin = "Invalid query parameters. Only country and populatedWithin are permitted."

	// MsgInvalidPopulatedWithin is returned for a populatedWithin value outside
	// the supported radius bands.
	MsgInvalidPopulatedWithin = "Invalid value for populatedWithin. Only: 5km,10km,30km,100km are permitted."

	// MsgInvalidVolcanoID is returned when the volcano id path segment is not
	// a number.
	MsgInvalidVolcanoID = "Invalid query parameters. Volcano id must be a number."

	// MsgVolcanoNotFound is a format string; the argument is the requested id.
	MsgVolcanoNotFound = "Volcano with ID: %v not found"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip encoded request body cannot be
	// decompressed.
	MsgInvalidGzip = "Invalid gzip request body"

	// MsgCredentialsIncomplete is returned by register and login when email or
	// password is missing.
	MsgCredentialsIncomplete = "Request body incomplete, both email and password are required"

	// MsgUserAlreadyExists is returned when a registration attempt targets an
	// email that already has an account.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserCreated is the body message of a successful registration.
	MsgUserCreated = "User Created!"

	// MsgIncorrectEmailOrPassword is returned for both an unknown email and a
	// wrong password so that login does not reveal which accounts exist.
	MsgIncorrectEmailOrPassword = "Incorrect email or password"

	// MsgUserNotFound is returned when no profile exists for the requested
	// email.
	MsgUserNotFound = "User not found"

	// MsgProfileIncomplete is returned when a profile update omits a field or
	// passes an empty value.
	MsgProfileIncomplete = "Request body incomplete: firstName, lastName, dob and address are required."

	// MsgProfileNotStrings is returned when firstName, lastName or address is
	// not a JSON string.
	MsgProfileNotStrings = "Request body invalid: firstName, lastName and address must be strings only."

	// MsgInvalidDOB is returned when dob is not a real YYYY-MM-DD date.
	MsgInvalidDOB = "Invalid input: dob must be a real date in format YYYY-MM-DD."

	// MsgFutureDOB is returned when dob lies after the current date.
	MsgFutureDOB = "Invalid input: dob must be a date in the past."

	// MsgMalformedAuthorizationHeader is returned when the Authorization
	// header is not of the form "Bearer <token>".
	MsgMalformedAuthorizationHeader = "Authorization header is malformed"

	// MsgInvalidToken is returned when the bearer token signature does not
	// verify or the token cannot be parsed.
	MsgInvalidToken = "Invalid token"

	// MsgTokenIsExpired is returned when a correctly signed token carries an
	// expiry in the past.
	MsgTokenIsExpired = "token has expired"

	// MsgAuthorizationNotFound is returned by routes that require an identity
	// when the request carries no Authorization header.
	MsgAuthorizationNotFound = "Authorization header ('Bearer token') not found"

	// MsgForbidden is returned when the authenticated caller is not the owner
	// of the requested resource.
	MsgForbidden = "Forbidden"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
