// Package iss proxies the public ISS position, crew and coordinate APIs.
package iss

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"artemisops/internal/domain"
)

const (
	SourceWhereTheISS = "wheretheiss"
	SourceOpenNotify  = "open-notify"
)

type Config struct {
	SatelliteURL   string // wheretheiss satellite endpoint
	CoordinatesURL string // wheretheiss coordinates endpoint
	PositionURL    string // open-notify position fallback
	AstrosURL      string // open-notify crew roster
	Timeout        time.Duration
}

type Client struct {
	httpClient     *http.Client
	satelliteURL   string
	coordinatesURL string
	positionURL    string
	astrosURL      string
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		satelliteURL:   cfg.SatelliteURL,
		coordinatesURL: strings.TrimRight(cfg.CoordinatesURL, "/"),
		positionURL:    cfg.PositionURL,
		astrosURL:      cfg.AstrosURL,
		logger:         logger.With("source", "iss"),
	}
}

type satellite struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Velocity   float64 `json:"velocity"`
	Visibility string  `json:"visibility"`
	Footprint  float64 `json:"footprint"`
	Timestamp  int64   `json:"timestamp"`
}

type notifyPosition struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

type astros struct {
	Message string             `json:"message"`
	Number  int                `json:"number"`
	People  []domain.Astronaut `json:"people"`
}

type coordinates struct {
	TimezoneID  string `json:"timezone_id"`
	CountryCode string `json:"country_code"`
}

// Position asks wheretheiss first and open-notify second.
func (c *Client) Position(ctx context.Context) (*domain.ISSPosition, error) {
	var sat satellite
	err := c.getJSON(ctx, c.satelliteURL, &sat)
	if err == nil {
		return &domain.ISSPosition{
			Latitude:    round(sat.Latitude, 4),
			Longitude:   round(sat.Longitude, 4),
			AltitudeKM:  ptr(round(sat.Altitude, 1)),
			VelocityKMH: ptr(round(sat.Velocity, 0)),
			Visibility:  ptr(sat.Visibility),
			FootprintKM: ptr(round(sat.Footprint, 1)),
			Timestamp:   sat.Timestamp,
			Source:      SourceWhereTheISS,
		}, nil
	}
	c.logger.Warn("primary position api failed", "error", err)

	pos, fbErr := c.notifyPosition(ctx)
	if fbErr != nil {
		return nil, fmt.Errorf("position: %w", errors.Join(err, fbErr))
	}
	return pos, nil
}

func (c *Client) notifyPosition(ctx context.Context) (*domain.ISSPosition, error) {
	var np notifyPosition
	if err := c.getJSON(ctx, c.positionURL, &np); err != nil {
		return nil, err
	}
	if np.Message != "success" {
		return nil, fmt.Errorf("open-notify message %q", np.Message)
	}
	lat, err := strconv.ParseFloat(np.ISSPosition.Latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(np.ISSPosition.Longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}
	return &domain.ISSPosition{
		Latitude:  round(lat, 4),
		Longitude: round(lon, 4),
		Timestamp: np.Timestamp,
		Source:    SourceOpenNotify,
	}, nil
}

// Crew returns the people currently aboard the ISS.
func (c *Client) Crew(ctx context.Context) (*domain.ISSCrew, error) {
	var a astros
	if err := c.getJSON(ctx, c.astrosURL, &a); err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}
	if a.Message != "success" {
		return nil, fmt.Errorf("crew: open-notify message %q", a.Message)
	}

	aboard := make([]domain.Astronaut, 0, len(a.People))
	for _, p := range a.People {
		if p.Craft == "ISS" {
			aboard = append(aboard, p)
		}
	}
	return &domain.ISSCrew{
		Count:        len(aboard),
		Crew:         aboard,
		TotalInSpace: a.Number,
		Source:       SourceOpenNotify,
	}, nil
}

// Locate names the place under a coordinate from its timezone.
// Points without a timezone are over open water.
func (c *Client) Locate(ctx context.Context, lat, lng float64) (*domain.Location, error) {
	url := fmt.Sprintf("%s/%s,%s", c.coordinatesURL,
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lng, 'f', -1, 64))

	var co coordinates
	if err := c.getJSON(ctx, url, &co); err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}

	loc := &domain.Location{
		Location:    "Ocean",
		CountryCode: "International Waters",
		Source:      SourceWhereTheISS,
	}
	if co.TimezoneID != "" {
		parts := strings.Split(co.TimezoneID, "/")
		loc.Location = strings.ReplaceAll(parts[len(parts)-1], "_", " ")
		loc.CountryCode = co.CountryCode
		tz := co.TimezoneID
		loc.TimezoneID = &tz
	}
	return loc, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func ptr[T any](v T) *T { return &v }
