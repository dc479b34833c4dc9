package spacedevs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"artemisops/internal/domain"
)

const (
	SourceID   = "spacedevs"
	SourceName = "The Space Devs Launch Library"
)

var errNotFound = errors.New("resource not found")

// Config holds Space Devs source configuration.
type Config struct {
	BaseURL        string
	SearchTerms    []string
	Limit          int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source implements the launch, crew, patch and agency lookups against Launch Library 2.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	searchTerms    []string
	limit          int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		searchTerms:    cfg.SearchTerms,
		limit:          cfg.Limit,
		maxAttempts:    max(cfg.MaxAttempts, 1),
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchMissions searches launches for every configured term and keeps the ones
// whose name mentions the term. Missions are de-duplicated by slug. The result
// is all or nothing: if any term fails, no missions are returned.
func (s *Source) FetchMissions(ctx context.Context) ([]domain.Mission, error) {
	seen := make(map[string]struct{})
	var missions []domain.Mission

	for _, term := range s.searchTerms {
		q := url.Values{}
		q.Set("search", term)
		q.Set("mode", "detailed")
		q.Set("limit", fmt.Sprint(s.limit))

		var list LaunchList
		if err := s.get(ctx, s.baseURL+"/launch/?"+q.Encode(), &list); err != nil {
			return nil, fmt.Errorf("search launches %q: %w", term, err)
		}

		needle := strings.ToLower(term)
		for _, l := range list.Results {
			if !strings.Contains(strings.ToLower(l.Name), needle) {
				continue
			}
			m := s.transform(l)
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			missions = append(missions, m)
		}

		s.logger.Debug("searched launches",
			"term", term,
			"results", len(list.Results),
			"total", len(missions),
		)
	}

	return missions, nil
}

// FetchCrew returns the launch crew in upstream order.
func (s *Source) FetchCrew(ctx context.Context, launchID string) ([]domain.CrewMember, error) {
	var l Launch
	if err := s.get(ctx, fmt.Sprintf("%s/launch/%s/", s.baseURL, url.PathEscape(launchID)), &l); err != nil {
		return nil, fmt.Errorf("get launch %s: %w", launchID, err)
	}
	if l.Rocket == nil || l.Rocket.SpacecraftStage == nil {
		return nil, nil
	}

	var crew []domain.CrewMember
	for _, a := range l.Rocket.SpacecraftStage.LaunchCrew {
		if a.Astronaut == nil {
			continue
		}
		member := domain.CrewMember{
			Name:      a.Astronaut.Name,
			Role:      "Crew",
			Bio:       a.Astronaut.Bio,
			PhotoURL:  nonEmpty(a.Astronaut.ProfileImage),
			BioURL:    nonEmpty(a.Astronaut.Wiki),
			SortOrder: len(crew),
		}
		if a.Role != nil && a.Role.Role != "" {
			member.Role = a.Role.Role
		}
		if a.Astronaut.Agency != nil {
			member.Agency = a.Astronaut.Agency.Abbrev
		}
		if a.Astronaut.ID != "" {
			id := string(a.Astronaut.ID)
			member.APIID = &id
		}
		crew = append(crew, member)
	}
	return crew, nil
}

// SearchPatches queries the mission patch index, highest priority first.
func (s *Source) SearchPatches(ctx context.Context, query string) ([]domain.PatchCandidate, error) {
	q := url.Values{}
	q.Set("search", query)

	var list PatchList
	if err := s.get(ctx, s.baseURL+"/mission_patch/?"+q.Encode(), &list); err != nil {
		return nil, fmt.Errorf("search patches %q: %w", query, err)
	}

	out := make([]domain.PatchCandidate, 0, len(list.Results))
	for _, p := range list.Results {
		if p.ImageURL == nil || *p.ImageURL == "" {
			continue
		}
		out = append(out, domain.PatchCandidate{Name: p.Name, ImageURL: *p.ImageURL, Priority: p.Priority})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out, nil
}

// AgencyLogo returns the agency's logo, or its image when no logo is published.
// An agency without either yields an empty string and no error.
func (s *Source) AgencyLogo(ctx context.Context, agencyID int) (string, error) {
	var a Agency
	if err := s.get(ctx, fmt.Sprintf("%s/agencies/%d/", s.baseURL, agencyID), &a); err != nil {
		return "", fmt.Errorf("get agency %d: %w", agencyID, err)
	}
	if u := nonEmpty(a.LogoURL); u != nil {
		return *u, nil
	}
	if u := nonEmpty(a.ImageURL); u != nil {
		return *u, nil
	}
	return "", nil
}

func (s *Source) get(ctx context.Context, url string, out any) error {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, url, out)
		if err == nil || errors.Is(err, errNotFound) {
			return err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ArtemisOps/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(l Launch) domain.Mission {
	name := domain.MissionName(l.Name)
	if name == "" {
		name = "Unknown Mission"
	}
	slug := domain.Slugify(name)

	m := domain.Mission{
		ID:         slug,
		Name:       name,
		Slug:       slug,
		LaunchDate: nonEmpty(l.Net),
		Status:     "Unknown",
		Site:       "Unknown",
		ImageURL:   nonEmpty(l.Image),
		APISource:  SourceID,
		IsActive:   true,
	}

	if l.Status != nil {
		if l.Status.Abbrev != "" {
			m.Status = l.Status.Abbrev
		}
		m.StatusDescription = l.Status.Description
	}
	if l.Pad != nil && l.Pad.Location != nil && l.Pad.Location.Name != "" {
		m.Site = l.Pad.Location.Name
	}
	if l.Rocket != nil {
		if l.Rocket.Configuration != nil {
			m.Rocket = l.Rocket.Configuration.Name
		}
		if st := l.Rocket.SpacecraftStage; st != nil {
			if st.Spacecraft != nil && st.Spacecraft.Config != nil {
				m.Spacecraft = st.Spacecraft.Config.Name
			}
			if st.Landing != nil && st.Landing.Location != nil && st.Landing.Location.Name != "" {
				site := st.Landing.Location.Name
				m.LandingSite = &site
			}
		}
	}

	var agencies []string
	if l.Mission != nil {
		if m.Spacecraft == "" {
			m.Spacecraft = l.Mission.Name
		}
		m.MissionType = l.Mission.Type
		m.Description = l.Mission.Description
		for _, a := range l.Mission.Agencies {
			if a.Abbrev != "" {
				agencies = append(agencies, a.Abbrev)
			}
		}
	}
	if len(agencies) == 0 && l.Provider != nil && l.Provider.Abbrev != "" {
		agencies = append(agencies, l.Provider.Abbrev)
	}
	m.Agencies = strings.Join(agencies, ",")

	if l.ID != "" {
		id := string(l.ID)
		m.APIID = &id
	}

	return m
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
