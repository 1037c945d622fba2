// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
)

const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldDOB       = "dob"
	FieldAddress   = "address"
)

var (
	profileFields = []string{FieldFirstName, FieldLastName, FieldDOB, FieldAddress}

	dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// ProfileValidator checks the body of a profile update.
//
// Checks run in a fixed order and the first failure wins:
//  1. every field present and non-empty;
//  2. firstName, lastName and address are strings;
//  3. dob is a real YYYY-MM-DD date;
//  4. dob is not after today.
type ProfileValidator struct {
	now func() time.Time
}

// NewProfileValidator returns a Validator for models.ProfileUpdateRequest.
// now supplies the current date for the future-date check; nil means
// time.Now.
func NewProfileValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &ProfileValidator{now: now}
}

// Validate accepts models.ProfileUpdateRequest or its pointer. fields limits
// the check to the named JSON fields.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileUpdateRequest:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdateRequest:
		if value == nil {
			return app.BadRequest(app.MsgProfileIncomplete)
		}
		return v.validateProfileUpdate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfileUpdate(_ context.Context, req models.ProfileUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = profileFields
	}

	values := make(map[string]any, len(fields))
	for _, field := range fields {
		switch field {
		case FieldFirstName:
			values[field] = req.FirstName
		case FieldLastName:
			values[field] = req.LastName
		case FieldDOB:
			values[field] = req.DOB
		case FieldAddress:
			values[field] = req.Address
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	for _, field := range fields {
		if isBlank(values[field]) {
			return app.BadRequest(app.MsgProfileIncomplete)
		}
	}

	for _, field := range fields {
		if field == FieldDOB {
			continue
		}
		if _, ok := values[field].(string); !ok {
			return app.BadRequest(app.MsgProfileNotStrings)
		}
	}

	if raw, ok := values[FieldDOB]; ok {
		dob, err := parseDOB(raw)
		if err != nil {
			return app.BadRequest(app.MsgInvalidDOB).Wrap(err)
		}
		if dob.After(today(v.now())) {
			return app.BadRequest(app.MsgFutureDOB)
		}
	}

	return nil
}

// ParseProfileUpdate converts a request that passed ProfileValidator into the
// update persisted for email.
func ParseProfileUpdate(email string, req models.ProfileUpdateRequest) (models.ProfileUpdate, error) {
	firstName, okFirst := req.FirstName.(string)
	lastName, okLast := req.LastName.(string)
	address, okAddress := req.Address.(string)
	if !okFirst || !okLast || !okAddress {
		return models.ProfileUpdate{}, app.BadRequest(app.MsgProfileNotStrings)
	}

	dob, err := parseDOB(req.DOB)
	if err != nil {
		return models.ProfileUpdate{}, app.BadRequest(app.MsgInvalidDOB).Wrap(err)
	}

	return models.ProfileUpdate{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		DOB:       dob,
		Address:   address,
	}, nil
}

// isBlank reports whether a decoded JSON value counts as missing: absent,
// null, false, zero or an empty string.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	default:
		return false
	}
}

func parseDOB(raw any) (time.Time, error) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("dob is %T, not a string", raw)
	}
	if !dobPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("dob %q is not in YYYY-MM-DD format", s)
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("dob %q has no month %d", s, month)
	}

	maxDay := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		maxDay = 29
	}
	if day < 1 || day > maxDay {
		return time.Time{}, fmt.Errorf("dob %q has no day %d", s, day)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
