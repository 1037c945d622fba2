package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func validProfileRequest() models.ProfileUpdateRequest {
	return models.ProfileUpdateRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		DOB:       "1815-12-10",
		Address:   "12 St James's Square, London",
	}
}

func TestProfileValidator_Validate(t *testing.T) {
	v := NewProfileValidator(func() time.Time { return fixedNow })
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.ProfileUpdateRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(r *models.ProfileUpdateRequest) {}},
		{name: "leap day", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2000-02-29" }},
		{name: "today", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2026-03-15" }},

		{name: "missing first name", mutate: func(r *models.ProfileUpdateRequest) { r.FirstName = nil }, wantMsg: app.MsgProfileIncomplete},
		{name: "empty address", mutate: func(r *models.ProfileUpdateRequest) { r.Address = "" }, wantMsg: app.MsgProfileIncomplete},
		{name: "missing dob", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = nil }, wantMsg: app.MsgProfileIncomplete},
		{name: "zero last name", mutate: func(r *models.ProfileUpdateRequest) { r.LastName = float64(0) }, wantMsg: app.MsgProfileIncomplete},
		{name: "incomplete wins over type", mutate: func(r *models.ProfileUpdateRequest) {
			r.FirstName = float64(1)
			r.Address = nil
		}, wantMsg: app.MsgProfileIncomplete},

		{name: "numeric first name", mutate: func(r *models.ProfileUpdateRequest) { r.FirstName = float64(42) }, wantMsg: app.MsgProfileNotStrings},
		{name: "object address", mutate: func(r *models.ProfileUpdateRequest) { r.Address = map[string]any{"city": "London"} }, wantMsg: app.MsgProfileNotStrings},
		{name: "bool last name", mutate: func(r *models.ProfileUpdateRequest) { r.LastName = true }, wantMsg: app.MsgProfileNotStrings},

		{name: "dob wrong format", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "10/12/1815" }, wantMsg: app.MsgInvalidDOB},
		{name: "dob with time", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "1815-12-10T00:00:00Z" }, wantMsg: app.MsgInvalidDOB},
		{name: "dob number", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = float64(1815) }, wantMsg: app.MsgInvalidDOB},
		{name: "dob month 13", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2001-13-01" }, wantMsg: app.MsgInvalidDOB},
		{name: "dob day 0", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2001-01-00" }, wantMsg: app.MsgInvalidDOB},
		{name: "dob april 31", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2001-04-31" }, wantMsg: app.MsgInvalidDOB},
		{name: "dob feb 29 non leap", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "1900-02-29" }, wantMsg: app.MsgInvalidDOB},

		{name: "dob tomorrow", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2026-03-16" }, wantMsg: app.MsgFutureDOB},
		{name: "dob far future", mutate: func(r *models.ProfileUpdateRequest) { r.DOB = "2999-01-01" }, wantMsg: app.MsgFutureDOB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProfileRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := app.AsError(err)
			require.True(t, ok, "expected *app.Error, got %v", err)
			assert.Equal(t, app.KindBadRequest, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestProfileValidator_Fields(t *testing.T) {
	v := NewProfileValidator(func() time.Time { return fixedNow })
	req := models.ProfileUpdateRequest{DOB: "1990-01-01"}

	assert.NoError(t, v.Validate(context.Background(), &req, FieldDOB))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "phone"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), 12), ErrUnsupportedType)
}

func TestParseProfileUpdate(t *testing.T) {
	update, err := ParseProfileUpdate("ada@example.com", validProfileRequest())
	require.NoError(t, err)

	assert.Equal(t, models.ProfileUpdate{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		DOB:       time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		Address:   "12 St James's Square, London",
	}, update)

	req := validProfileRequest()
	req.DOB = "1815-02-30"
	_, err = ParseProfileUpdate("ada@example.com", req)
	assert.Equal(t, app.KindBadRequest, app.KindOf(err))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2000))
	assert.True(t, isLeapYear(2024))
	assert.False(t, isLeapYear(1900))
	assert.False(t, isLeapYear(2023))
}
