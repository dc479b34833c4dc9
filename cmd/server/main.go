package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"artemisops/internal/activity"
	"artemisops/internal/config"
	"artemisops/internal/feed"
	"artemisops/internal/httpapi"
	"artemisops/internal/imagery"
	"artemisops/internal/publisher"
	"artemisops/internal/scheduler"
	"artemisops/internal/service"
	"artemisops/internal/source/iss"
	"artemisops/internal/source/openmeteo"
	"artemisops/internal/source/rss"
	"artemisops/internal/source/spacedevs"
	"artemisops/internal/storage/postgres"
	"artemisops/internal/weather"
	"artemisops/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := migrations.Apply(ctx, db); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Stores
	missionStore := postgres.NewMissionStore(db)
	crewStore := postgres.NewCrewStore(db)
	milestoneStore := postgres.NewMilestoneStore(db)
	syncLogStore := postgres.NewSyncLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Upstream sources
	launches := spacedevs.New(spacedevs.Config{
		BaseURL:        cfg.API.BaseURL,
		SearchTerms:    cfg.Sync.SearchTerms,
		Limit:          cfg.Sync.Limit,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)
	forecasts := openmeteo.New(openmeteo.Config{
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.Weather.Timeout,
	}, logger)
	issClient := iss.New(iss.Config{
		SatelliteURL:   cfg.ISS.SatelliteURL,
		CoordinatesURL: cfg.ISS.CoordinatesURL,
		PositionURL:    cfg.ISS.PositionURL,
		AstrosURL:      cfg.ISS.AstrosURL,
		Timeout:        cfg.ISS.Timeout,
	}, logger)
	feeds := rss.New(cfg.News.Timeout, logger)

	imageryCfg := imagery.DefaultConfig()
	imageryCfg.LocalAssetPrefix = cfg.Imagery.LocalAssetPrefix
	if len(cfg.Imagery.LocalPatches) > 0 {
		patches := maps.Clone(imageryCfg.LocalPatches)
		maps.Copy(patches, cfg.Imagery.LocalPatches)
		imageryCfg.LocalPatches = patches
	}
	resolver := imagery.NewResolver(imageryCfg, launches, launches, logger)

	classifier := activity.NewClassifier(activity.Policy{
		CompletedWindowDays:  cfg.Activity.CompletedWindowDays,
		InProgressWindowDays: cfg.Activity.InProgressWindowDays,
		CompletedStatuses:    cfg.Activity.CompletedStatuses,
		ActiveStatuses:       cfg.Activity.ActiveStatuses,
	})

	// Services
	missionService := service.NewMissionService(
		missionStore, crewStore, milestoneStore, syncLogStore, classifier, nil, logger,
	)
	weatherService := service.NewWeatherService(missionStore, forecasts, service.WeatherConfig{
		WindowDays:   cfg.Weather.AdvisoryWindowDays,
		ForecastDays: cfg.Weather.ForecastDays,
		SummaryDays:  cfg.Weather.SummaryDays,
		CacheTTL:     cfg.Cache.Weather,
		Constraints:  weather.DefaultConstraints(),
	}, nil, logger)
	issService := service.NewISSService(issClient, service.ISSConfig{
		PositionTTL: cfg.Cache.Position,
		CrewTTL:     cfg.Cache.Crew,
		LocationTTL: cfg.Cache.Geocode,
	}, nil, logger)
	newsService := service.NewNewsService(feeds, service.NewsConfig{
		Feeds:    cfg.News.Feeds,
		Limit:    cfg.News.Limit,
		CacheTTL: cfg.Cache.News,
	}, nil, logger)
	syncService := service.NewSyncService(
		launches,
		missionStore,
		crewStore,
		milestoneStore,
		syncLogStore,
		txManager,
		resolver,
		pub,
		weatherService,
		nil,
		logger,
	)

	if err := syncService.EnsureDefaults(ctx); err != nil {
		logger.Error("failed to seed default mission", "error", err)
		os.Exit(1)
	}

	hub := feed.NewHub(missionService, weatherService, logger)
	syncService.SetListener(hub)

	api := httpapi.NewServer(httpapi.Deps{
		Missions:  missionService,
		Weather:   weatherService,
		Syncer:    syncService,
		ISS:       issService,
		News:      newsService,
		Feed:      hub,
		StaticDir: cfg.Server.StaticDir,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
	schedDone := make(chan error, 1)
	go func() { schedDone <- sched.Start(ctx) }()

	go func() {
		logger.Info("starting http server",
			"addr", cfg.Server.Addr,
			"source", launches.Name(),
			"sync_interval", cfg.Sync.Interval,
			"rabbitmq", cfg.RabbitMQ.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if err := <-schedDone; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
