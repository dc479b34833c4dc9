package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"artemisops/internal/cache"
	"artemisops/internal/domain"
	"artemisops/internal/weather"
)

type WeatherConfig struct {
	WindowDays   int // events further out than this get no forecast
	ForecastDays int
	SummaryDays  int
	CacheTTL     time.Duration
	Constraints  weather.Constraints
}

type WeatherService struct {
	missions  MissionStore
	forecasts ForecastSource
	cache     *cache.TTL[string, *domain.Forecast]
	cfg       WeatherConfig
	clock     cache.Clock
	logger    *slog.Logger
}

func NewWeatherService(missions MissionStore, forecasts ForecastSource, cfg WeatherConfig, clock cache.Clock, logger *slog.Logger) *WeatherService {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &WeatherService{
		missions:  missions,
		forecasts: forecasts,
		cache:     cache.NewTTL[string, *domain.Forecast](cfg.CacheTTL, clock),
		cfg:       cfg,
		clock:     clock,
		logger:    logger.With("component", "weather"),
	}
}

// Invalidate drops every cached forecast.
func (s *WeatherService) Invalidate() {
	s.cache.Clear()
}

// MissionWeather reports launch and landing site weather for events inside
// the forecast window.
func (s *WeatherService) MissionWeather(ctx context.Context, missionID string) (*domain.MissionWeather, error) {
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &domain.MissionWeather{MissionID: m.ID}

	launch, hasLaunch := m.Launch()
	landing, hasLanding := m.Landing()
	launchIn := hasLaunch && weather.InWindow(launch, now, s.cfg.WindowDays)
	landingIn := hasLanding && weather.InWindow(landing, now, s.cfg.WindowDays)

	if !launchIn && !landingIn {
		out.Reason = s.outOfWindowReason(launch, hasLaunch, now)
		return out, nil
	}
	out.ShouldFetch = true

	launchSite, launchKnown := weather.FindSite(m.Site)
	if launchIn && m.Site != "" {
		if launchKnown {
			out.Launch = s.siteWeather(ctx, launchSite, launch, now)
		} else {
			out.Launch = &domain.SiteWeather{Site: m.Site, Error: "Unknown launch site coordinates"}
		}
	}

	if landingIn && m.LandingSite != nil {
		landingSite, ok := weather.FindSite(*m.LandingSite)
		if ok && (!launchKnown || landingSite.Lat != launchSite.Lat || landingSite.Lon != launchSite.Lon) {
			out.Landing = s.siteWeather(ctx, landingSite, landing, now)
		}
	}

	return out, nil
}

func (s *WeatherService) outOfWindowReason(launch time.Time, hasLaunch bool, now time.Time) string {
	switch {
	case !hasLaunch:
		return "No launch date scheduled"
	case launch.Before(now):
		return "Launch date has passed"
	case weather.DaysUntil(launch, now) > s.cfg.WindowDays:
		return fmt.Sprintf("Launch is %d days away - weather forecast not yet available", weather.DaysUntil(launch, now))
	default:
		return "No upcoming events within forecast window"
	}
}

func (s *WeatherService) siteWeather(ctx context.Context, site domain.Site, event, now time.Time) *domain.SiteWeather {
	sw := &domain.SiteWeather{Site: site.Name, Lat: site.Lat, Lon: site.Lon}

	f, err := s.forecast(ctx, site)
	if err != nil {
		sw.Error = "Weather data unavailable"
		return sw
	}

	adv := weather.Analyze(f, event, now, s.cfg.Constraints)
	sw.Analysis = &adv
	sw.Forecast = weather.Summary(f, s.cfg.SummaryDays)
	return sw
}

// LaunchDayWeather gives hour-by-hour conditions when the launch is today (UTC).
func (s *WeatherService) LaunchDayWeather(ctx context.Context, missionID string) (*domain.LaunchDayWeather, error) {
	m, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &domain.LaunchDayWeather{MissionID: m.ID}

	launch, ok := m.Launch()
	if !ok {
		out.Reason = "No launch date scheduled"
		return out, nil
	}

	hours := weather.HoursUntil(launch, now)
	out.HoursUntil = &hours
	if !weather.SameDay(launch, now) {
		out.Reason = "Launch is not today"
		return out, nil
	}
	out.IsLaunchDay = true

	site, ok := weather.FindSite(m.Site)
	if !ok {
		out.Site = m.Site
		out.Reason = "Unknown launch site coordinates"
		return out, nil
	}
	out.Site = site.Name

	f, err := s.forecast(ctx, site)
	if err != nil {
		return nil, err
	}

	adv := weather.Analyze(f, launch, now, s.cfg.Constraints)
	out.Analysis = &adv
	out.Hourly = weather.Hourly(f, launch)
	return out, nil
}

func (s *WeatherService) forecast(ctx context.Context, site domain.Site) (*domain.Forecast, error) {
	key := fmt.Sprintf("%.2f,%.2f", site.Lat, site.Lon)
	fetch := func(ctx context.Context) (*domain.Forecast, error) {
		return s.forecasts.Forecast(ctx, site.Lat, site.Lon, s.cfg.ForecastDays)
	}

	f, _, err := tiered(ctx, s.cache, key, fetch, s.logger.With("site", site.Name))
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", site.Name, err)
	}
	return f, nil
}
