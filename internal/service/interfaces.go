package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"artemisops/internal/domain"
)

type MissionSource interface {
	ID() string
	FetchMissions(ctx context.Context) ([]domain.Mission, error)
	FetchCrew(ctx context.Context, launchID string) ([]domain.CrewMember, error)
}

type MissionStore interface {
	GetAll(ctx context.Context, activeOnly bool) ([]domain.Mission, error)
	Get(ctx context.Context, idOrSlug string) (*domain.Mission, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.Mission, error)
	Upsert(ctx context.Context, mission *domain.Mission) (string, error)
}

type CrewStore interface {
	GetByMission(ctx context.Context, missionID string) ([]domain.CrewMember, error)
	Replace(ctx context.Context, missionID string, crew []domain.CrewMember) error
}

type MilestoneStore interface {
	GetByMission(ctx context.Context, missionID string) ([]domain.Milestone, error)
	Replace(ctx context.Context, missionID string, milestones []domain.Milestone) error
}

type SyncLogStore interface {
	Log(ctx context.Context, entry *domain.SyncLogEntry) error
	LastSuccessful(ctx context.Context) (*domain.SyncLogEntry, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, mission *domain.Mission, isNew bool) error
	Close() error
}

type ImageResolver interface {
	ResolvePatch(ctx context.Context, name string, missionID string, cached *string, launchImage *string) *string
	ResolveLogo(ctx context.Context, agencies string, cached *string) string
}

type ForecastSource interface {
	Forecast(ctx context.Context, lat float64, lon float64, days int) (*domain.Forecast, error)
}

type ISSSource interface {
	Position(ctx context.Context) (*domain.ISSPosition, error)
	Crew(ctx context.Context) (*domain.ISSCrew, error)
	Locate(ctx context.Context, lat float64, lng float64) (*domain.Location, error)
}

type FeedSource interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.NewsItem, error)
}

// SyncListener is told when a sync run has stored new mission data.
type SyncListener interface {
	MissionsSynced(ctx context.Context)
}

type CacheInvalidator interface {
	Invalidate()
}
