// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/volcano-api/models"
	sq "github.com/Masterminds/squirrel"
)

// Table names shared by the repositories.
var (
	accountsTable = models.Account{}.TableName()
	profilesTable = models.Profile{}.TableName()
	volcanoTable  = models.Volcano{}.TableName()
)

var (
	profileColumns = []string{"email", "first_name", "last_name", "dob", "address"}

	volcanoSummaryColumns = []string{"id", "name", "country", "region", "subregion"}

	volcanoColumns = append(append([]string{}, volcanoSummaryColumns...),
		"last_eruption", "summit", "elevation", "latitude", "longitude",
		models.Radius5km.Column(), models.Radius10km.Column(),
		models.Radius30km.Column(), models.Radius100km.Column(),
	)
)

// selectCountries renders
// SELECT DISTINCT country FROM data ORDER BY country ASC.
func selectCountries(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("country").
		Distinct().
		From(volcanoTable).
		OrderBy("country ASC")
}

// selectVolcanoes filters by country and, when requested, by a positive
// population count within the radius band.
func selectVolcanoes(b sq.StatementBuilderType, filter models.VolcanoFilter) sq.SelectBuilder {
	query := b.Select(volcanoSummaryColumns...).
		From(volcanoTable).
		Where(sq.Eq{"country": filter.Country})

	if filter.PopulatedWithin != "" {
		query = query.Where(sq.Gt{filter.PopulatedWithin.Column(): 0})
	}

	return query.OrderBy("id ASC")
}

func selectVolcano(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(volcanoColumns...).
		From(volcanoTable).
		Where(sq.Eq{"id": id})
}

func selectAccount(b sq.StatementBuilderType, email string) sq.SelectBuilder {
	return b.Select("email", "hash").
		From(accountsTable).
		Where(sq.Eq{"email": email})
}

func insertAccount(b sq.StatementBuilderType, account models.Account) sq.InsertBuilder {
	return b.Insert(accountsTable).
		Columns("email", "hash").
		Values(account.Email, account.Hash)
}

// insertBlankProfile creates the profile row whose fields stay NULL until
// the first update.
func insertBlankProfile(b sq.StatementBuilderType, email string) sq.InsertBuilder {
	return b.Insert(profilesTable).
		Columns("email").
		Values(email)
}

func selectProfile(b sq.StatementBuilderType, email string) sq.SelectBuilder {
	return b.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"email": email})
}

// updateProfile overwrites every profile field and returns the stored row.
func updateProfile(b sq.StatementBuilderType, update models.ProfileUpdate) sq.UpdateBuilder {
	return b.Update(profilesTable).
		Set("first_name", update.FirstName).
		Set("last_name", update.LastName).
		Set("dob", update.DOB.Format(time.DateOnly)).
		Set("address", update.Address).
		Where(sq.Eq{"email": update.Email}).
		Suffix("RETURNING email, first_name, last_name, dob, address")
}
