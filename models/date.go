// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date without time of day. It is serialised to JSON as
// "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. Only YYYY-MM-DD is accepted.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date must be in format YYYY-MM-DD: %w", err)
	}

	d.Time = t
	return nil
}
