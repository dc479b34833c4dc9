package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artemisops/internal/cache"
	"artemisops/internal/domain"
)

type SyncService struct {
	source     MissionSource
	missions   MissionStore
	crew       CrewStore
	milestones MilestoneStore
	syncLog    SyncLogStore
	txManager  TransactionManager
	images     ImageResolver
	publisher  Publisher
	weather    CacheInvalidator
	listener   SyncListener
	clock      cache.Clock
	logger     *slog.Logger
}

// NewSyncService wires the orchestrator. publisher and weather may be nil.
func NewSyncService(
	source MissionSource,
	missions MissionStore,
	crew CrewStore,
	milestones MilestoneStore,
	syncLog SyncLogStore,
	txManager TransactionManager,
	images ImageResolver,
	publisher Publisher,
	weather CacheInvalidator,
	clock cache.Clock,
	logger *slog.Logger,
) *SyncService {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &SyncService{
		source:     source,
		missions:   missions,
		crew:       crew,
		milestones: milestones,
		syncLog:    syncLog,
		txManager:  txManager,
		images:     images,
		publisher:  publisher,
		weather:    weather,
		clock:      clock,
		logger:     logger.With("source", source.ID()),
	}
}

// SetListener registers the component notified after every completed sync.
func (s *SyncService) SetListener(l SyncListener) {
	s.listener = l
}

// Sync pulls missions from the source and stores them one by one. A failing
// mission is recorded in the result and the batch continues. The returned
// error is non-nil only when the source itself could not be read or the run
// could not be logged.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	start := s.clock.Now()
	s.logger.Info("starting sync")

	result := &domain.SyncResult{
		Source: s.source.ID(),
		Status: domain.SyncSuccess,
		Errors: []string{},
	}

	missions, err := s.source.FetchMissions(ctx)
	if err != nil {
		result.Status = domain.SyncError
		result.Errors = append(result.Errors, err.Error())
		result.Duration = s.clock.Now().Sub(start)

		msg := err.Error()
		if logErr := s.logSync(ctx, domain.SyncError, 0, &msg); logErr != nil {
			s.logger.Error("failed to log sync", "error", logErr)
		}
		s.logger.Error("sync failed", "error", err)
		return result, fmt.Errorf("fetch missions: %w", err)
	}

	result.Fetched = len(missions)
	s.logger.Info("fetched missions from source", "count", len(missions))

	for i := range missions {
		m := &missions[i]

		isNew, err := s.saveMission(ctx, m)
		if err != nil {
			s.logger.Error("failed to save mission", "mission_id", m.ID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("sync %s: %v", m.Name, err))
			continue
		}
		result.MissionsUpdated++

		updated, err := s.syncCrew(ctx, m)
		if err != nil {
			s.logger.Error("failed to sync crew", "mission_id", m.ID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("sync crew %s: %v", m.Name, err))
		} else if updated {
			result.CrewUpdated++
		}

		if m.ID == ArtemisIIID {
			if err := s.milestones.Replace(ctx, m.ID, artemisIIMilestones()); err != nil {
				s.logger.Error("failed to seed milestones", "mission_id", m.ID, "error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("sync milestones %s: %v", m.Name, err))
			}
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, m, isNew); err != nil {
				s.logger.Warn("failed to publish mission", "mission_id", m.ID, "error", err)
			} else {
				result.Published++
			}
		}
	}

	if s.weather != nil {
		s.weather.Invalidate()
	}
	if s.listener != nil {
		s.listener.MissionsSynced(ctx)
	}

	result.Duration = s.clock.Now().Sub(start)

	if err := s.logSync(ctx, domain.SyncSuccess, result.MissionsUpdated, nil); err != nil {
		return result, fmt.Errorf("log sync: %w", err)
	}

	s.logger.Info("sync completed",
		"fetched", result.Fetched,
		"missions_updated", result.MissionsUpdated,
		"crew_updated", result.CrewUpdated,
		"published", result.Published,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}

// saveMission resolves imagery against the stored record and upserts.
func (s *SyncService) saveMission(ctx context.Context, m *domain.Mission) (bool, error) {
	existing, err := s.missions.Get(ctx, m.ID)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return false, fmt.Errorf("get existing: %w", err)
	}

	var cachedPatch, cachedLogo *string
	if existing != nil {
		cachedPatch = existing.PatchURL
		cachedLogo = existing.AgencyLogoURL
	}

	m.PatchURL = s.images.ResolvePatch(ctx, m.Name, m.ID, cachedPatch, m.ImageURL)
	logo := s.images.ResolveLogo(ctx, m.Agencies, cachedLogo)
	m.AgencyLogoURL = &logo

	if _, err := s.missions.Upsert(ctx, m); err != nil {
		return false, err
	}
	return isNew, nil
}

// syncCrew replaces the stored roster with the upstream one. An empty upstream
// roster leaves the stored crew untouched, except for the built-in mission.
func (s *SyncService) syncCrew(ctx context.Context, m *domain.Mission) (bool, error) {
	var crew []domain.CrewMember

	if m.APIID != nil && *m.APIID != "" {
		fetched, err := s.source.FetchCrew(ctx, *m.APIID)
		if err != nil {
			s.logger.Warn("failed to fetch crew", "mission_id", m.ID, "error", err)
		}
		crew = fetched
	}

	if len(crew) == 0 && m.ID == ArtemisIIID {
		crew = artemisIICrew()
	}
	if len(crew) == 0 {
		return false, nil
	}

	if err := s.crew.Replace(ctx, m.ID, crew); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SyncService) logSync(ctx context.Context, status domain.SyncOutcome, count int, msg *string) error {
	return s.syncLog.Log(ctx, &domain.SyncLogEntry{
		Source:          s.source.ID(),
		Status:          status,
		MissionsUpdated: count,
		ErrorMessage:    msg,
	})
}

// EnsureDefaults seeds the built-in mission when the store has none.
func (s *SyncService) EnsureDefaults(ctx context.Context) error {
	all, err := s.missions.GetAll(ctx, false)
	if err != nil {
		return fmt.Errorf("list missions: %w", err)
	}
	for _, m := range all {
		if m.ID == ArtemisIIID {
			return nil
		}
	}

	s.logger.Info("seeding default mission", "mission_id", ArtemisIIID)

	m := defaultArtemisII()
	m.PatchURL = s.images.ResolvePatch(ctx, m.Name, m.ID, nil, m.ImageURL)
	logo := s.images.ResolveLogo(ctx, m.Agencies, nil)
	m.AgencyLogoURL = &logo

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.missions.Upsert(txCtx, &m); err != nil {
			return fmt.Errorf("upsert default mission: %w", err)
		}
		if err := s.crew.Replace(txCtx, m.ID, artemisIICrew()); err != nil {
			return fmt.Errorf("seed crew: %w", err)
		}
		if err := s.milestones.Replace(txCtx, m.ID, artemisIIMilestones()); err != nil {
			return fmt.Errorf("seed milestones: %w", err)
		}
		return nil
	})
}
