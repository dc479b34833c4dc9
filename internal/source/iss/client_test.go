package iss

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	satellite   http.HandlerFunc
	position    http.HandlerFunc
	astros      http.HandlerFunc
	coordinates http.HandlerFunc
}

func newClient(t *testing.T, u upstream) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/satellites/25544", orFail(u.satellite))
	mux.HandleFunc("/iss-now.json", orFail(u.position))
	mux.HandleFunc("/astros.json", orFail(u.astros))
	mux.HandleFunc("/v1/coordinates/", orFail(u.coordinates))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(Config{
		SatelliteURL:   srv.URL + "/v1/satellites/25544",
		CoordinatesURL: srv.URL + "/v1/coordinates",
		PositionURL:    srv.URL + "/iss-now.json",
		AstrosURL:      srv.URL + "/astros.json",
		Timeout:        time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fail(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }

func orFail(h http.HandlerFunc) http.HandlerFunc {
	if h == nil {
		return fail
	}
	return h
}

func TestPosition_Primary(t *testing.T) {
	c := newClient(t, upstream{
		satellite: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"latitude": 12.345678, "longitude": -45.67891, "altitude": 420.456, "velocity": 27600.6, "visibility": "daylight", "footprint": 4500.04, "timestamp": 1760000000}`)
		},
		position: func(w http.ResponseWriter, r *http.Request) { t.Error("fallback must not be called") },
	})

	pos, err := c.Position(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.3457, pos.Latitude)
	assert.Equal(t, -45.6789, pos.Longitude)
	assert.Equal(t, 420.5, *pos.AltitudeKM)
	assert.Equal(t, 27601.0, *pos.VelocityKMH)
	assert.Equal(t, "daylight", *pos.Visibility)
	assert.Equal(t, SourceWhereTheISS, pos.Source)
}

func TestPosition_Fallback(t *testing.T) {
	c := newClient(t, upstream{
		satellite: fail,
		position: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"message": "success", "timestamp": 1760000001, "iss_position": {"latitude": "-10.5000", "longitude": "100.25"}}`)
		},
	})

	pos, err := c.Position(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -10.5, pos.Latitude)
	assert.Equal(t, 100.25, pos.Longitude)
	assert.Nil(t, pos.AltitudeKM)
	assert.Equal(t, SourceOpenNotify, pos.Source)
}

func TestPosition_BothFail(t *testing.T) {
	c := newClient(t, upstream{satellite: fail, position: fail})

	_, err := c.Position(context.Background())
	assert.Error(t, err)
}

func TestCrew_FiltersToISS(t *testing.T) {
	c := newClient(t, upstream{
		astros: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"message": "success", "number": 3, "people": [
			  {"name": "A", "craft": "ISS"}, {"name": "B", "craft": "Tiangong"}, {"name": "C", "craft": "ISS"}]}`)
		},
	})

	crew, err := c.Crew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, crew.Count)
	assert.Equal(t, 3, crew.TotalInSpace)
	assert.Equal(t, "C", crew.Crew[1].Name)
}

func TestCrew_Failure(t *testing.T) {
	c := newClient(t, upstream{
		astros: func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, `{"message": "failure"}`) },
	})

	_, err := c.Crew(context.Background())
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	c := newClient(t, upstream{
		coordinates: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/coordinates/40.7,-74" {
				fmt.Fprint(w, `{"timezone_id": "America/New_York", "country_code": "US"}`)
				return
			}
			fmt.Fprint(w, `{"timezone_id": "", "country_code": "??"}`)
		},
	})
	ctx := context.Background()

	loc, err := c.Locate(ctx, 40.7, -74)
	require.NoError(t, err)
	assert.Equal(t, "New York", loc.Location)
	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, "America/New_York", *loc.TimezoneID)

	loc, err = c.Locate(ctx, 0, -30)
	require.NoError(t, err)
	assert.Equal(t, "Ocean", loc.Location)
	assert.Equal(t, "International Waters", loc.CountryCode)
	assert.Nil(t, loc.TimezoneID)
}
