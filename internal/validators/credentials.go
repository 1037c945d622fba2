// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
)

// CredentialsValidator checks the body of the register and login routes.
// Both fields are required; a missing or empty one yields
// app.MsgCredentialsIncomplete.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator returns a Validator for models.Credentials.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts models.Credentials or *models.Credentials. fields limits
// the check to the named struct fields (FieldEmail, FieldPassword).
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return app.BadRequest(app.MsgCredentialsIncomplete)
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	for _, field := range fields {
		if field != FieldEmail && field != FieldPassword {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, credentials)
	} else {
		err = v.validate.StructPartialCtx(ctx, credentials, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return app.BadRequest(app.MsgCredentialsIncomplete).Wrap(err)
	}
	return err
}
