package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"artemisops/internal/domain"
	"artemisops/internal/service/mocks"
	"artemisops/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockMissionSource
	missions   *mocks.MockMissionStore
	crew       *mocks.MockCrewStore
	milestones *mocks.MockMilestoneStore
	syncLog    *mocks.MockSyncLogStore
	txManager  *mocks.MockTransactionManager
	images     *mocks.MockImageResolver
	publisher  *mocks.MockPublisher
	weather    *mocks.MockCacheInvalidator
	listener   *mocks.MockSyncListener

	service *SyncService
	clock   *utils.Clock
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockMissionSource(s.ctrl)
	s.missions = mocks.NewMockMissionStore(s.ctrl)
	s.crew = mocks.NewMockCrewStore(s.ctrl)
	s.milestones = mocks.NewMockMilestoneStore(s.ctrl)
	s.syncLog = mocks.NewMockSyncLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.images = mocks.NewMockImageResolver(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.weather = mocks.NewMockCacheInvalidator(s.ctrl)
	s.listener = mocks.NewMockSyncListener(s.ctrl)

	s.clock = utils.NewClock(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().ID().Return("spacedevs").AnyTimes()

	s.service = NewSyncService(
		s.source,
		s.missions,
		s.crew,
		s.milestones,
		s.syncLog,
		s.txManager,
		s.images,
		s.publisher,
		s.weather,
		s.clock,
		s.logger,
	)
	s.service.SetListener(s.listener)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) expectImages(times int) {
	s.images.EXPECT().ResolvePatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(times)
	s.images.EXPECT().ResolveLogo(gomock.Any(), gomock.Any(), gomock.Any()).Return("/assets/logos/nasa.png").Times(times)
}

func (s *SyncServiceTestSuite) expectSyncLogged(status domain.SyncOutcome, count int) {
	s.syncLog.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.SyncLogEntry) error {
			s.Equal("spacedevs", e.Source)
			s.Equal(status, e.Status)
			s.Equal(count, e.MissionsUpdated)
			return nil
		},
	)
}

func (s *SyncServiceTestSuite) TestSync_ContinuesPastFailingMission() {
	ctx := context.Background()

	missions := []domain.Mission{
		{ID: "crew-12", Name: "Crew-12", Agencies: "NASA"},
		{ID: "soyuz-ms-29", Name: "Soyuz MS-29", Agencies: "RFSA"},
		{ID: "shenzhou-23", Name: "Shenzhou 23", Agencies: "CMSA"},
	}

	s.source.EXPECT().FetchMissions(ctx).Return(missions, nil)
	s.missions.EXPECT().Get(ctx, gomock.Any()).Return(nil, domain.ErrNotFound).Times(3)
	s.expectImages(3)

	s.missions.EXPECT().Upsert(ctx, &missions[0]).Return("crew-12", nil)
	s.missions.EXPECT().Upsert(ctx, &missions[1]).Return("", errors.New("constraint violation"))
	s.missions.EXPECT().Upsert(ctx, &missions[2]).Return("shenzhou-23", nil)

	s.publisher.EXPECT().Publish(ctx, &missions[0], true).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &missions[2], true).Return(nil)

	s.weather.EXPECT().Invalidate()
	s.listener.EXPECT().MissionsSynced(ctx)
	s.expectSyncLogged(domain.SyncSuccess, 2)

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, result.Status)
	s.Equal(3, result.Fetched)
	s.Equal(2, result.MissionsUpdated)
	s.Equal(2, result.Published)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "Soyuz MS-29")
}

func (s *SyncServiceTestSuite) TestSync_SourceError() {
	ctx := context.Background()

	s.source.EXPECT().FetchMissions(ctx).Return(nil, errors.New("api error"))
	s.syncLog.EXPECT().Log(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.SyncLogEntry) error {
			s.Equal(domain.SyncError, e.Status)
			s.Require().NotNil(e.ErrorMessage)
			s.Equal("api error", *e.ErrorMessage)
			return nil
		},
	)

	result, err := s.service.Sync(ctx)

	s.Error(err)
	s.Contains(err.Error(), "fetch missions")
	s.Require().NotNil(result)
	s.Equal(domain.SyncError, result.Status)
	s.Equal(0, result.MissionsUpdated)
}

func (s *SyncServiceTestSuite) TestSync_ArtemisIIFallbackCrew() {
	ctx := context.Background()

	missions := []domain.Mission{
		{ID: ArtemisIIID, Name: "Artemis II", Agencies: "NASA", APIID: utils.Ptr("41699701")},
	}
	cachedPatch := utils.Ptr("https://example.org/patch.png")
	existing := &domain.Mission{ID: ArtemisIIID, PatchURL: cachedPatch}

	s.source.EXPECT().FetchMissions(ctx).Return(missions, nil)
	s.missions.EXPECT().Get(ctx, ArtemisIIID).Return(existing, nil)
	s.images.EXPECT().ResolvePatch(ctx, "Artemis II", ArtemisIIID, cachedPatch, nil).Return(cachedPatch)
	s.images.EXPECT().ResolveLogo(ctx, "NASA", nil).Return("/assets/logos/nasa.png")
	s.missions.EXPECT().Upsert(ctx, &missions[0]).Return(ArtemisIIID, nil)

	s.source.EXPECT().FetchCrew(ctx, "41699701").Return([]domain.CrewMember{}, nil)
	s.crew.EXPECT().Replace(ctx, ArtemisIIID, artemisIICrew()).Return(nil)
	s.milestones.EXPECT().Replace(ctx, ArtemisIIID, artemisIIMilestones()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &missions[0], false).Return(nil)

	s.weather.EXPECT().Invalidate()
	s.listener.EXPECT().MissionsSynced(ctx)
	s.expectSyncLogged(domain.SyncSuccess, 1)

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(1, result.CrewUpdated)
	s.Empty(result.Errors)
	s.Equal(cachedPatch, missions[0].PatchURL)
}

func (s *SyncServiceTestSuite) TestSync_UpstreamCrewReplacesStored() {
	ctx := context.Background()

	missions := []domain.Mission{
		{ID: "crew-12", Name: "Crew-12", Agencies: "NASA", APIID: utils.Ptr("abc")},
	}
	crew := []domain.CrewMember{
		{Name: "Jessica Meir", Role: "Commander", Agency: "NASA"},
		{Name: "Jack Hathaway", Role: "Pilot", Agency: "NASA"},
	}

	s.source.EXPECT().FetchMissions(ctx).Return(missions, nil)
	s.missions.EXPECT().Get(ctx, "crew-12").Return(nil, domain.ErrNotFound)
	s.expectImages(1)
	s.missions.EXPECT().Upsert(ctx, &missions[0]).Return("crew-12", nil)
	s.source.EXPECT().FetchCrew(ctx, "abc").Return(crew, nil)
	s.crew.EXPECT().Replace(ctx, "crew-12", crew).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &missions[0], true).Return(nil)

	s.weather.EXPECT().Invalidate()
	s.listener.EXPECT().MissionsSynced(ctx)
	s.expectSyncLogged(domain.SyncSuccess, 1)

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(1, result.CrewUpdated)
}

func (s *SyncServiceTestSuite) TestSync_CrewFetchErrorKeepsStoredCrew() {
	ctx := context.Background()

	missions := []domain.Mission{
		{ID: "crew-12", Name: "Crew-12", Agencies: "NASA", APIID: utils.Ptr("abc")},
	}

	s.source.EXPECT().FetchMissions(ctx).Return(missions, nil)
	s.missions.EXPECT().Get(ctx, "crew-12").Return(nil, domain.ErrNotFound)
	s.expectImages(1)
	s.missions.EXPECT().Upsert(ctx, &missions[0]).Return("crew-12", nil)
	s.source.EXPECT().FetchCrew(ctx, "abc").Return(nil, errors.New("timeout"))
	s.publisher.EXPECT().Publish(ctx, &missions[0], true).Return(nil)

	s.weather.EXPECT().Invalidate()
	s.listener.EXPECT().MissionsSynced(ctx)
	s.expectSyncLogged(domain.SyncSuccess, 1)

	result, err := s.service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(0, result.CrewUpdated)
	s.Empty(result.Errors)
}

func (s *SyncServiceTestSuite) TestSync_PublisherNil() {
	ctx := context.Background()

	service := NewSyncService(
		s.source, s.missions, s.crew, s.milestones, s.syncLog, s.txManager,
		s.images, nil, nil, s.clock, s.logger,
	)

	missions := []domain.Mission{{ID: "crew-12", Name: "Crew-12"}}

	s.source.EXPECT().FetchMissions(ctx).Return(missions, nil)
	s.missions.EXPECT().Get(ctx, "crew-12").Return(nil, domain.ErrNotFound)
	s.expectImages(1)
	s.missions.EXPECT().Upsert(ctx, &missions[0]).Return("crew-12", nil)
	s.expectSyncLogged(domain.SyncSuccess, 1)

	result, err := service.Sync(ctx)

	s.Require().NoError(err)
	s.Equal(1, result.MissionsUpdated)
	s.Equal(0, result.Published)
}

func (s *SyncServiceTestSuite) TestSync_LogFailure() {
	ctx := context.Background()

	s.source.EXPECT().FetchMissions(ctx).Return([]domain.Mission{}, nil)
	s.weather.EXPECT().Invalidate()
	s.listener.EXPECT().MissionsSynced(ctx)
	s.syncLog.EXPECT().Log(ctx, gomock.Any()).Return(errors.New("db down"))

	result, err := s.service.Sync(ctx)

	s.Error(err)
	s.Contains(err.Error(), "log sync")
	s.NotNil(result)
}

func (s *SyncServiceTestSuite) TestEnsureDefaults_SeedsWhenAbsent() {
	ctx := context.Background()

	patch := utils.Ptr("/static/assets/patches/artemis-ii.png")
	s.missions.EXPECT().GetAll(ctx, false).Return([]domain.Mission{{ID: "crew-12"}}, nil)
	s.images.EXPECT().ResolvePatch(ctx, "Artemis II", ArtemisIIID, nil, gomock.Any()).Return(patch)
	s.images.EXPECT().ResolveLogo(ctx, "NASA,CSA", nil).Return("/assets/logos/nasa.png")
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.missions.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Mission) (string, error) {
			s.Equal(ArtemisIIID, m.ID)
			s.Equal("fallback", m.APISource)
			s.Equal(patch, m.PatchURL)
			s.Equal("/assets/logos/nasa.png", *m.AgencyLogoURL)
			return m.ID, nil
		},
	)
	s.crew.EXPECT().Replace(ctx, ArtemisIIID, artemisIICrew()).Return(nil)
	s.milestones.EXPECT().Replace(ctx, ArtemisIIID, artemisIIMilestones()).Return(nil)

	s.NoError(s.service.EnsureDefaults(ctx))
}

func (s *SyncServiceTestSuite) TestEnsureDefaults_SkipsWhenPresent() {
	ctx := context.Background()

	s.missions.EXPECT().GetAll(ctx, false).Return([]domain.Mission{{ID: ArtemisIIID}}, nil)

	s.NoError(s.service.EnsureDefaults(ctx))
}

func (s *SyncServiceTestSuite) TestEnsureDefaults_PropagatesTxError() {
	ctx := context.Background()

	s.missions.EXPECT().GetAll(ctx, false).Return(nil, nil)
	s.images.EXPECT().ResolvePatch(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.images.EXPECT().ResolveLogo(ctx, gomock.Any(), gomock.Any()).Return("")
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.missions.EXPECT().Upsert(ctx, gomock.Any()).Return("", errors.New("boom"))

	err := s.service.EnsureDefaults(ctx)

	s.Error(err)
	s.Contains(err.Error(), "upsert default mission")
}
