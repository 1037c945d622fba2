// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
)

const (
	QueryCountry         = "country"
	QueryPopulatedWithin = "populatedWithin"
)

// NoQueryParams rejects any query string key, including keys without a value
// such as "?x".
func NoQueryParams(query url.Values) error {
	if len(query) > 0 {
		return app.BadRequest(app.MsgQueryParamsNotPermitted)
	}
	return nil
}

// VolcanoesQuery validates the GET /volcanoes query and returns the filter it
// describes. A populatedWithin key, when present, must name a known radius.
func VolcanoesQuery(query url.Values) (models.VolcanoFilter, error) {
	country := query.Get(QueryCountry)
	if country == "" {
		return models.VolcanoFilter{}, app.BadRequest(app.MsgCountryRequired)
	}

	if len(query) > 2 {
		return models.VolcanoFilter{}, app.BadRequest(app.MsgOnlyCountryAndPopulatedWithin)
	}

	for key, values := range query {
		if key != QueryCountry && key != QueryPopulatedWithin {
			return models.VolcanoFilter{}, app.BadRequest(app.MsgOnlyCountryAndPopulatedWithin)
		}
		if len(values) > 1 {
			return models.VolcanoFilter{}, app.BadRequest(app.MsgOnlyCountryAndPopulatedWithin)
		}
	}

	radius := models.PopulationRadius(query.Get(QueryPopulatedWithin))
	if query.Has(QueryPopulatedWithin) && !radius.IsValid() {
		return models.VolcanoFilter{}, app.BadRequest(app.MsgInvalidPopulatedWithin)
	}

	return models.VolcanoFilter{Country: country, PopulatedWithin: radius}, nil
}

// VolcanoID parses the id path segment of GET /volcano/{id}; the route takes
// no query parameters.
//
// Any finite number is accepted ("7", "7.0", "7e0"). A number that is not a
// whole id, such as "1.5", cannot match a record and yields NotFound.
func VolcanoID(rawID string, query url.Values) (int64, error) {
	number, err := strconv.ParseFloat(rawID, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, app.BadRequest(app.MsgInvalidVolcanoID).Wrap(err)
	}

	if err = NoQueryParams(query); err != nil {
		return 0, err
	}

	if number != math.Trunc(number) || number < math.MinInt64 || number >= math.MaxInt64 {
		return 0, app.NotFound(fmt.Sprintf(app.MsgVolcanoNotFound, rawID))
	}

	return int64(number), nil
}
