// Package openmeteo fetches site forecasts from the Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"artemisops/internal/domain"
)

const (
	SourceID = "open-meteo"

	// maxForecastDays is the longest horizon the API serves.
	maxForecastDays = 16

	dailyParams  = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max,wind_gusts_10m_max"
	hourlyParams = "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m,wind_gusts_10m,cloud_cover"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("source", SourceID),
	}
}

type response struct {
	Daily struct {
		Time             []string   `json:"time"`
		WeatherCode      []*int     `json:"weather_code"`
		TemperatureMax   []*float64 `json:"temperature_2m_max"`
		TemperatureMin   []*float64 `json:"temperature_2m_min"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
		WindSpeedMax     []*float64 `json:"wind_speed_10m_max"`
		WindGustsMax     []*float64 `json:"wind_gusts_10m_max"`
	} `json:"daily"`
	Hourly struct {
		Time             []string   `json:"time"`
		Temperature      []*float64 `json:"temperature_2m"`
		RelativeHumidity []*float64 `json:"relative_humidity_2m"`
		Precipitation    []*float64 `json:"precipitation"`
		WeatherCode      []*int     `json:"weather_code"`
		WindSpeed        []*float64 `json:"wind_speed_10m"`
		WindGusts        []*float64 `json:"wind_gusts_10m"`
		CloudCover       []*float64 `json:"cloud_cover"`
	} `json:"hourly"`
}

// Forecast returns daily and hourly columns in UTC covering days+1 days.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*domain.Forecast, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("daily", dailyParams)
	q.Set("hourly", hourlyParams)
	q.Set("timezone", "UTC")
	q.Set("forecast_days", strconv.Itoa(min(days+1, maxForecastDays)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("fetched forecast", "lat", lat, "lon", lon, "days", len(r.Daily.Time))

	return &domain.Forecast{
		Daily: domain.DailyColumns{
			Time:             r.Daily.Time,
			WeatherCode:      r.Daily.WeatherCode,
			TemperatureMax:   r.Daily.TemperatureMax,
			TemperatureMin:   r.Daily.TemperatureMin,
			PrecipitationSum: r.Daily.PrecipitationSum,
			WindSpeedMax:     r.Daily.WindSpeedMax,
			WindGustsMax:     r.Daily.WindGustsMax,
		},
		Hourly: domain.HourlyColumns{
			Time:             r.Hourly.Time,
			Temperature:      r.Hourly.Temperature,
			RelativeHumidity: r.Hourly.RelativeHumidity,
			Precipitation:    r.Hourly.Precipitation,
			WeatherCode:      r.Hourly.WeatherCode,
			WindSpeed:        r.Hourly.WindSpeed,
			WindGusts:        r.Hourly.WindGusts,
			CloudCover:       r.Hourly.CloudCover,
		},
	}, nil
}
