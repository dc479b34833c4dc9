package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artemisops/internal/activity"
	"artemisops/internal/cache"
	"artemisops/internal/domain"
)

// MissionService answers mission queries for the HTTP API and the live feed.
type MissionService struct {
	missions   MissionStore
	crew       CrewStore
	milestones MilestoneStore
	syncLog    SyncLogStore
	classifier *activity.Classifier
	clock      cache.Clock
	logger     *slog.Logger
}

func NewMissionService(
	missions MissionStore,
	crew CrewStore,
	milestones MilestoneStore,
	syncLog SyncLogStore,
	classifier *activity.Classifier,
	clock cache.Clock,
	logger *slog.Logger,
) *MissionService {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &MissionService{
		missions:   missions,
		crew:       crew,
		milestones: milestones,
		syncLog:    syncLog,
		classifier: classifier,
		clock:      clock,
		logger:     logger.With("component", "missions"),
	}
}

// List returns the missions worth surfacing, upcoming first. With
// includeInactive every stored mission is returned in the same order.
func (s *MissionService) List(ctx context.Context, includeInactive bool) ([]domain.Mission, error) {
	all, err := s.missions.GetAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}

	now := s.clock.Now()
	if includeInactive {
		return activity.Order(all, now), nil
	}
	return s.classifier.ClassifyAndOrder(all, now), nil
}

func (s *MissionService) Get(ctx context.Context, id string) (*domain.Mission, error) {
	return s.missions.Get(ctx, id)
}

// Detail returns the mission with its crew and milestones. Imagery is served
// as stored; it is resolved when the mission is written, never on read.
func (s *MissionService) Detail(ctx context.Context, id string) (*domain.MissionDetail, error) {
	m, err := s.missions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	crew, err := s.crew.GetByMission(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("get crew: %w", err)
	}
	milestones, err := s.milestones.GetByMission(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("get milestones: %w", err)
	}

	return &domain.MissionDetail{Mission: *m, Crew: crew, Milestones: milestones}, nil
}

// DetailsByIDs returns details for every known id; unknown ids are skipped.
func (s *MissionService) DetailsByIDs(ctx context.Context, ids []string) (map[string]domain.MissionDetail, error) {
	found, err := s.missions.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get missions: %w", err)
	}

	out := make(map[string]domain.MissionDetail, len(found))
	for id := range found {
		d, err := s.Detail(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = *d
	}
	return out, nil
}

type Status struct {
	Status         string               `json:"status"`
	ServerTime     time.Time            `json:"server_time"`
	LastSync       *domain.SyncLogEntry `json:"last_sync"`
	TotalMissions  int                  `json:"total_missions"`
	ActiveMissions int                  `json:"active_missions"`
	Subscribers    int                  `json:"connected_clients"`
}

// Status reports store health. Subscribers is left for the caller to fill.
func (s *MissionService) Status(ctx context.Context) (*Status, error) {
	now := s.clock.Now()
	st := &Status{Status: "ok", ServerTime: now.UTC()}

	last, err := s.syncLog.LastSuccessful(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("last sync: %w", err)
	default:
		st.LastSync = last
	}

	all, err := s.missions.GetAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	st.TotalMissions = len(all)
	st.ActiveMissions = len(s.classifier.ClassifyAndOrder(all, now))

	return st, nil
}
