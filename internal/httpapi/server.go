// Package httpapi serves the published REST API, the live feed endpoint and
// the static client.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"artemisops/internal/domain"
	"artemisops/internal/service"
)

type MissionQueries interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Mission, error)
	Detail(ctx context.Context, id string) (*domain.MissionDetail, error)
	Status(ctx context.Context) (*service.Status, error)
}

type WeatherQueries interface {
	MissionWeather(ctx context.Context, missionID string) (*domain.MissionWeather, error)
	LaunchDayWeather(ctx context.Context, missionID string) (*domain.LaunchDayWeather, error)
}

type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

type ISSQueries interface {
	Position(ctx context.Context) (*domain.PositionReport, error)
	Crew(ctx context.Context) (*domain.CrewReport, error)
	Telemetry() domain.Telemetry
	Snapshot(ctx context.Context) *domain.ISSSnapshot
	Location(ctx context.Context, lat, lng float64) *domain.LocationReport
}

type NewsQueries interface {
	Latest(ctx context.Context) ([]domain.NewsItem, error)
}

// Feed is the push channel endpoint.
type Feed interface {
	http.Handler
	Count() int
}

type Deps struct {
	Missions  MissionQueries
	Weather   WeatherQueries
	Syncer    Syncer
	ISS       ISSQueries
	News      NewsQueries
	Feed      Feed
	StaticDir string
	Logger    *slog.Logger
}

type Server struct {
	missions  MissionQueries
	weather   WeatherQueries
	syncer    Syncer
	iss       ISSQueries
	news      NewsQueries
	feed      Feed
	staticDir string
	logger    *slog.Logger
	router    chi.Router
}

func NewServer(d Deps) *Server {
	s := &Server{
		missions:  d.Missions,
		weather:   d.Weather,
		syncer:    d.Syncer,
		iss:       d.ISS,
		news:      d.News,
		feed:      d.Feed,
		staticDir: d.StaticDir,
		logger:    d.Logger.With("component", "http"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/sync", s.handleSync)

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", s.handleListMissions)
			r.Get("/{id}", s.handleGetMission)
			r.Get("/{id}/weather", s.handleMissionWeather)
			r.Get("/{id}/weather/launch-day", s.handleLaunchDayWeather)
		})

		// Single-mission endpoints kept for older clients.
		r.Get("/mission", s.handleDefaultMission)
		r.Get("/crew", s.handleDefaultCrew)

		r.Route("/iss", func(r chi.Router) {
			r.Get("/", s.handleISS)
			r.Get("/position", s.handleISSPosition)
			r.Get("/crew", s.handleISSCrew)
			r.Get("/telemetry", s.handleISSTelemetry)
			r.Get("/location", s.handleISSLocation)
		})

		r.Get("/news", s.handleNews)
	})

	if s.feed != nil {
		r.Handle("/ws", s.feed)
	}

	s.mountStatic(r)

	return r
}

func (s *Server) mountStatic(r chi.Router) {
	if s.staticDir == "" {
		return
	}
	if _, err := os.Stat(s.staticDir); err != nil {
		s.logger.Warn("static directory not found, client not served", "dir", s.staticDir)
		return
	}

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
	r.Handle("/static/*", fs)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
