package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/volcano-api/internal/app"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	services := testServices()
	services.VolcanoService = &fakeVolcanoService{
		countriesFn: func(context.Context) ([]models.Country, error) {
			return []models.Country{"Chile", "Japan"}, nil
		},
	}
	router := newTestRouter(services)

	rr := do(t, router, http.MethodGet, "/countries", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Chile","Japan"]`, rr.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	rr = do(t, router, http.MethodGet, "/countries?sort=asc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgQueryParamsNotPermitted), rr.Body.String())
}

func TestCountries_InternalErrorHidesCause(t *testing.T) {
	services := testServices()
	services.VolcanoService = &fakeVolcanoService{
		countriesFn: func(context.Context) ([]models.Country, error) {
			return nil, errors.New("pq: relation \"data\" does not exist")
		},
	}

	rr := do(t, newTestRouter(services), http.MethodGet, "/countries", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgInternalServerError), rr.Body.String())
}

func TestMe(t *testing.T) {
	router := newTestRouter(testServices())

	rr := do(t, router, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Elvio Wang","student_number":"n10771727"}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/me?x", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, envelope(t, app.MsgQueryParamsNotPermitted), rr.Body.String())
}

func TestVolcanoes(t *testing.T) {
	var gotFilter models.VolcanoFilter
	services := testServices()
	services.VolcanoService = &fakeVolcanoService{
		listVolcanoesFn: func(_ context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error) {
			gotFilter = filter
			return []models.VolcanoSummary{{ID: 2, Name: "Acamarachi", Country: "Chile", Region: "South America", Subregion: "Northern Chile, Bolivia and Argentina"}}, nil
		},
	}
	router := newTestRouter(services)

	rr := do(t, router, http.MethodGet, "/volcanoes?country=Chile&populatedWithin=10km", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.VolcanoFilter{Country: "Chile", PopulatedWithin: models.Radius10km}, gotFilter)
	assert.JSONEq(t, `[{"id":2,"name":"Acamarachi","country":"Chile","region":"South America","subregion":"Northern Chile, Bolivia and Argentina"}]`, rr.Body.String())

	tests := []struct {
		target  string
		wantMsg string
	}{
		{target: "/volcanoes", wantMsg: app.MsgCountryRequired},
		{target: "/volcanoes?country=Chile&populatedWithin=1km", wantMsg: app.MsgInvalidPopulatedWithin},
		{target: "/volcanoes?country=Chile&populatedWithin=", wantMsg: app.MsgInvalidPopulatedWithin},
		{target: "/volcanoes?country=Chile&limit=5", wantMsg: app.MsgOnlyCountryAndPopulatedWithin},
	}
	for _, tt := range tests {
		rr = do(t, router, http.MethodGet, tt.target, "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, tt.target)
		assert.JSONEq(t, envelope(t, tt.wantMsg), rr.Body.String(), tt.target)
	}
}

func TestVolcanoes_EmptyResultIsArray(t *testing.T) {
	rr := do(t, newTestRouter(testServices()), http.MethodGet, "/volcanoes?country=Atlantis", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestVolcano(t *testing.T) {
	details := models.VolcanoDetails{
		Volcano:    models.Volcano{ID: 5, Name: "Adams", Country: "United States", Summit: 3742},
		Population: models.Population{Population10km: 70},
	}

	newRouter := func(withPopulation bool) http.Handler {
		services := testServices()
		services.VolcanoService = &fakeVolcanoService{
			getVolcanoFn: func(_ context.Context, id int64) (models.VolcanoDetails, bool, error) {
				if id != 5 {
					return models.VolcanoDetails{}, false, app.NotFound("Volcano with ID: 9 not found")
				}
				return details, withPopulation, nil
			},
		}
		return newTestRouter(services)
	}

	t.Run("reduced set", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/5", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"summit":3742`)
		assert.NotContains(t, rr.Body.String(), "population_10km")
	})

	t.Run("full set", func(t *testing.T) {
		rr := do(t, newRouter(true), http.MethodGet, "/volcano/5", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"population_10km":70`)
	})

	t.Run("not found", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/9", "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, envelope(t, "Volcano with ID: 9 not found"), rr.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, envelope(t, app.MsgInvalidVolcanoID), rr.Body.String())
	})

	t.Run("numeric id forms", func(t *testing.T) {
		for _, target := range []string{"/volcano/5.0", "/volcano/5e0"} {
			rr := do(t, newRouter(false), http.MethodGet, target, "", nil)
			assert.Equal(t, http.StatusOK, rr.Code, target)
		}
	})

	t.Run("fractional id", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/1.5", "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, envelope(t, "Volcano with ID: 1.5 not found"), rr.Body.String())
	})

	t.Run("empty authorization header is anonymous", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/5", "", map[string]string{"Authorization": ""})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "population_10km")
	})

	t.Run("query params", func(t *testing.T) {
		rr := do(t, newRouter(false), http.MethodGet, "/volcano/5?full=true", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, envelope(t, app.MsgQueryParamsNotPermitted), rr.Body.String())
	})
}
