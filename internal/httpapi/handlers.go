package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"artemisops/internal/domain"
	"artemisops/internal/service"
)

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Get("all") == "true"

	missions, err := s.missions.List(r.Context(), all)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"missions": missions,
		"count":    len(missions),
	})
}

func (s *Server) handleGetMission(w http.ResponseWriter, r *http.Request) {
	d, err := s.missions.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDefaultMission(w http.ResponseWriter, r *http.Request) {
	d, err := s.missions.Detail(r.Context(), service.ArtemisIIID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDefaultCrew(w http.ResponseWriter, r *http.Request) {
	d, err := s.missions.Detail(r.Context(), service.ArtemisIIID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"mission": d.Name,
		"crew":    d.Crew,
	})
}

func (s *Server) handleMissionWeather(w http.ResponseWriter, r *http.Request) {
	mw, err := s.weather.MissionWeather(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mw)
}

func (s *Server) handleLaunchDayWeather(w http.ResponseWriter, r *http.Request) {
	lw, err := s.weather.LaunchDayWeather(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lw)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.logger.Error("manual sync failed", "error", err)
		if result != nil {
			writeJSON(w, http.StatusBadGateway, result)
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.missions.Status(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if s.feed != nil {
		st.Subscribers = s.feed.Count()
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleISS(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.iss.Snapshot(r.Context()))
}

func (s *Server) handleISSPosition(w http.ResponseWriter, r *http.Request) {
	pos, err := s.iss.Position(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}

func (s *Server) handleISSCrew(w http.ResponseWriter, r *http.Request) {
	crew, err := s.iss.Crew(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

func (s *Server) handleISSTelemetry(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.iss.Telemetry())
}

func (s *Server) handleISSLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		writeError(w, http.StatusBadRequest, "lng must be a number between -180 and 180")
		return
	}

	writeJSON(w, http.StatusOK, s.iss.Location(r.Context(), lat, lng))
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.Latest(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

// writeServiceError maps domain sentinels onto HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "upstream data unavailable")
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
