// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PopulationRadius is a radius band used by the populatedWithin filter.
type PopulationRadius string

const (
	Radius5km   PopulationRadius = "5km"
	Radius10km  PopulationRadius = "10km"
	Radius30km  PopulationRadius = "30km"
	Radius100km PopulationRadius = "100km"
)

// PopulationRadii lists every supported radius band.
var PopulationRadii = []PopulationRadius{Radius5km, Radius10km, Radius30km, Radius100km}

// Column returns the data table column holding the population count for the
// radius band.
func (r PopulationRadius) Column() string {
	return "population_" + string(r)
}

// IsValid reports whether r is a supported radius band.
func (r PopulationRadius) IsValid() bool {
	for _, radius := range PopulationRadii {
		if r == radius {
			return true
		}
	}
	return false
}

// VolcanoSummary is a row of the GET /volcanoes listing.
type VolcanoSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

// Volcano is the volcano record shown to anonymous callers.
type Volcano struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	Region       string  `json:"region"`
	Subregion    string  `json:"subregion"`
	LastEruption string  `json:"last_eruption"`
	Summit       int64   `json:"summit"`
	Elevation    int64   `json:"elevation"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Population holds estimated population counts around a volcano.
type Population struct {
	Population5km   int64 `json:"population_5km"`
	Population10km  int64 `json:"population_10km"`
	Population30km  int64 `json:"population_30km"`
	Population100km int64 `json:"population_100km"`
}

// VolcanoDetails is the full volcano record shown to authenticated callers.
type VolcanoDetails struct {
	Volcano
	Population
}

// VolcanoFilter holds the validated GET /volcanoes query.
type VolcanoFilter struct {
	Country string
	// PopulatedWithin is empty when no population filter was requested.
	PopulatedWithin PopulationRadius
}

// Country is a distinct country name of the volcano data set.
type Country = string

// TableName returns the name of the database table holding volcano records.
func (v Volcano) TableName() string {
	return "data"
}
