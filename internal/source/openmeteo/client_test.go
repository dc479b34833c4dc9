package openmeteo

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

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/v1/forecast", Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestForecast(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "28.5729", q.Get("latitude"))
		assert.Equal(t, "-80.649", q.Get("longitude"))
		assert.Equal(t, "UTC", q.Get("timezone"))
		assert.Equal(t, "8", q.Get("forecast_days"))
		assert.Contains(t, q.Get("daily"), "wind_gusts_10m_max")
		assert.Contains(t, q.Get("hourly"), "cloud_cover")
		fmt.Fprint(w, `{
		  "daily": {
		    "time": ["2026-03-01", "2026-03-02"],
		    "weather_code": [1, null],
		    "temperature_2m_max": [25.1, 24.0],
		    "wind_speed_10m_max": [12.5, 30.2]
		  },
		  "hourly": {
		    "time": ["2026-03-01T00:00"],
		    "temperature_2m": [18.2],
		    "cloud_cover": [40]
		  }
		}`)
	})

	f, err := c.Forecast(context.Background(), 28.5729, -80.6490, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-03-01", "2026-03-02"}, f.Daily.Time)
	require.Len(t, f.Daily.WeatherCode, 2)
	assert.Equal(t, 1, *f.Daily.WeatherCode[0])
	assert.Nil(t, f.Daily.WeatherCode[1])
	assert.InDelta(t, 30.2, *f.Daily.WindSpeedMax[1], 0.001)
	assert.Empty(t, f.Daily.PrecipitationSum)
	assert.InDelta(t, 40, *f.Hourly.CloudCover[0], 0.001)
}

func TestForecast_CapsForecastDays(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "16", r.URL.Query().Get("forecast_days"))
		fmt.Fprint(w, `{"daily": {"time": []}}`)
	})

	_, err := c.Forecast(context.Background(), 0, 0, 30)
	require.NoError(t, err)
}

func TestForecast_UpstreamError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Forecast(context.Background(), 0, 0, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
