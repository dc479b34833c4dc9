package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"artemisops/internal/cache"
	"artemisops/internal/domain"
)

type ISSConfig struct {
	PositionTTL time.Duration
	CrewTTL     time.Duration
	LocationTTL time.Duration
}

const issKey = "iss"

type ISSService struct {
	source    ISSSource
	positions *cache.TTL[string, *domain.ISSPosition]
	crew      *cache.TTL[string, *domain.ISSCrew]
	locations *cache.TTL[string, *domain.Location]
	clock     cache.Clock
	logger    *slog.Logger
}

func NewISSService(source ISSSource, cfg ISSConfig, clock cache.Clock, logger *slog.Logger) *ISSService {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &ISSService{
		source:    source,
		positions: cache.NewTTL[string, *domain.ISSPosition](cfg.PositionTTL, clock),
		crew:      cache.NewTTL[string, *domain.ISSCrew](cfg.CrewTTL, clock),
		locations: cache.NewTTL[string, *domain.Location](cfg.LocationTTL, clock),
		clock:     clock,
		logger:    logger.With("component", "iss"),
	}
}

func (s *ISSService) Position(ctx context.Context) (*domain.PositionReport, error) {
	pos, info, err := tiered(ctx, s.positions, issKey, s.source.Position, s.logger.With("feed", "position"))
	if err != nil {
		return nil, err
	}
	return &domain.PositionReport{ISSPosition: *pos, CacheInfo: info}, nil
}

func (s *ISSService) Crew(ctx context.Context) (*domain.CrewReport, error) {
	crew, info, err := tiered(ctx, s.crew, issKey, s.source.Crew, s.logger.With("feed", "crew"))
	if err != nil {
		return nil, err
	}
	return &domain.CrewReport{ISSCrew: *crew, CacheInfo: info}, nil
}

// Telemetry describes the live telemetry stream, which browsers consume directly.
func (s *ISSService) Telemetry() domain.Telemetry {
	return domain.Telemetry{
		ConnectionStatus: "client-side",
		Source:           "nasa-lightstreamer",
		Note:             "ISS telemetry is streamed to the browser directly from NASA's public Lightstreamer feed",
	}
}

// Snapshot gathers position and crew concurrently. A failing half is
// reported in its error field and does not fail the whole snapshot.
func (s *ISSService) Snapshot(ctx context.Context) *domain.ISSSnapshot {
	out := &domain.ISSSnapshot{
		Telemetry: s.Telemetry(),
		Timestamp: s.clock.Now().UTC(),
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pos, err := s.Position(ctx)
		if err != nil {
			out.PositionError = err.Error()
			return
		}
		out.Position = pos
	}()
	go func() {
		defer wg.Done()
		crew, err := s.Crew(ctx)
		if err != nil {
			out.CrewError = err.Error()
			return
		}
		out.Crew = crew
	}()
	wg.Wait()

	return out
}

// Location names the place under the given coordinates. Lookups are cached
// per 0.1 degree cell; when the geocoder is down a coordinate label is
// returned instead.
func (s *ISSService) Location(ctx context.Context, lat, lng float64) *domain.LocationReport {
	key := fmt.Sprintf("%.1f,%.1f", lat, lng)
	fetch := func(ctx context.Context) (*domain.Location, error) {
		return s.source.Locate(ctx, lat, lng)
	}

	loc, info, err := tiered(ctx, s.locations, key, fetch, s.logger.With("feed", "location"))
	if err != nil {
		return &domain.LocationReport{Location: coordinateLabel(lat, lng)}
	}
	return &domain.LocationReport{Location: *loc, CacheInfo: info}
}

func coordinateLabel(lat, lng float64) domain.Location {
	ns, ew := "N", "E"
	if lat < 0 {
		ns = "S"
	}
	if lng < 0 {
		ew = "W"
	}
	return domain.Location{
		Location: fmt.Sprintf("%.1f°%s, %.1f°%s", math.Abs(lat), ns, math.Abs(lng), ew),
		Source:   "coordinates",
	}
}
