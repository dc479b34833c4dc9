package spacedevs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const launchSearchBody = `{
  "count": 3,
  "results": [
    {
      "id": "41699701-2ef4-4b0c-ac9d-6757820cde87",
      "name": "SLS Block 1 | Artemis II",
      "net": "2026-04-01T12:00:00Z",
      "status": {"abbrev": "Go", "description": "Current T-0 confirmed by official or reliable sources."},
      "pad": {"location": {"name": "Kennedy Space Center, FL, USA"}},
      "rocket": {
        "configuration": {"name": "Space Launch System (SLS)"},
        "spacecraft_stage": {
          "spacecraft": {"name": "Orion CM-003", "spacecraft_config": {"name": "Orion"}},
          "landing": {"landing_location": {"name": "Pacific Ocean"}}
        }
      },
      "mission": {
        "name": "Artemis II",
        "type": "Human Exploration",
        "description": "Crewed lunar flyby.",
        "agencies": [{"id": 44, "abbrev": "NASA"}, {"id": 16, "abbrev": "CSA"}]
      },
      "image": "https://example.com/artemis2.jpg",
      "launch_service_provider": {"id": 44, "abbrev": "NASA"}
    },
    {
      "id": 1234,
      "name": "Falcon 9 | Starlink Group 6-1",
      "net": "2026-02-01T00:00:00Z"
    },
    {
      "id": "c4e1",
      "name": "Artemis III",
      "net": null,
      "status": {"abbrev": "TBD", "description": ""},
      "launch_service_provider": {"id": 44, "abbrev": "NASA"}
    }
  ]
}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSource(t *testing.T, h http.Handler, terms ...string) *Source {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:        srv.URL,
		SearchTerms:    terms,
		Limit:          20,
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, quietLogger())
}

func TestFetchMissions_Transform(t *testing.T) {
	var gotQuery string
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launch/", r.URL.Path)
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, launchSearchBody)
	}), "artemis")

	missions, err := src.FetchMissions(context.Background())
	require.NoError(t, err)
	require.Len(t, missions, 2)
	assert.Contains(t, gotQuery, "mode=detailed")
	assert.Contains(t, gotQuery, "search=artemis")
	assert.Contains(t, gotQuery, "limit=20")

	a2 := missions[0]
	assert.Equal(t, "artemis-ii", a2.ID)
	assert.Equal(t, "artemis-ii", a2.Slug)
	assert.Equal(t, "Artemis II", a2.Name)
	assert.Equal(t, "2026-04-01T12:00:00Z", *a2.LaunchDate)
	assert.Equal(t, "Go", a2.Status)
	assert.Equal(t, "Kennedy Space Center, FL, USA", a2.Site)
	assert.Equal(t, "Space Launch System (SLS)", a2.Rocket)
	assert.Equal(t, "Orion", a2.Spacecraft)
	assert.Equal(t, "Pacific Ocean", *a2.LandingSite)
	assert.Equal(t, "Human Exploration", a2.MissionType)
	assert.Equal(t, "NASA,CSA", a2.Agencies)
	assert.Equal(t, "41699701-2ef4-4b0c-ac9d-6757820cde87", *a2.APIID)
	assert.Equal(t, SourceID, a2.APISource)

	a3 := missions[1]
	assert.Equal(t, "artemis-iii", a3.ID)
	assert.Nil(t, a3.LaunchDate)
	assert.Equal(t, "Unknown", a3.Site)
	assert.Equal(t, "NASA", a3.Agencies, "falls back to the launch provider")
}

func TestFetchMissions_DeduplicatesAcrossTerms(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, launchSearchBody)
	}), "artemis", "artemis ii")

	missions, err := src.FetchMissions(context.Background())
	require.NoError(t, err)
	assert.Len(t, missions, 2)
}

func TestFetchMissions_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, launchSearchBody)
	}), "artemis")

	missions, err := src.FetchMissions(context.Background())
	require.NoError(t, err)
	assert.Len(t, missions, 2)
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchMissions_GivesUp(t *testing.T) {
	var calls atomic.Int32
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}), "artemis")

	_, err := src.FetchMissions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.EqualValues(t, 3, calls.Load())
}

func TestFetchMissions_LaterTermFailureReturnsNothing(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "orion" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, launchSearchBody)
	}), "artemis", "orion")

	missions, err := src.FetchMissions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `search launches "orion"`)
	assert.Nil(t, missions)
}

func TestFetchCrew(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launch/abc/", r.URL.Path)
		fmt.Fprint(w, `{
		  "id": "abc",
		  "rocket": {"spacecraft_stage": {"launch_crew": [
		    {"role": {"role": "Commander"}, "astronaut": {"id": 1, "name": "Reid Wiseman", "agency": {"abbrev": "NASA"}, "profile_image": "https://x/rw.jpg", "bio": "b", "wiki": ""}},
		    {"role": null, "astronaut": null},
		    {"role": {"role": ""}, "astronaut": {"id": 2, "name": "Jeremy Hansen", "agency": {"abbrev": "CSA"}}}
		  ]}}
		}`)
	}))

	crew, err := src.FetchCrew(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, crew, 2)

	assert.Equal(t, "Reid Wiseman", crew[0].Name)
	assert.Equal(t, "Commander", crew[0].Role)
	assert.Equal(t, "NASA", crew[0].Agency)
	assert.Equal(t, "https://x/rw.jpg", *crew[0].PhotoURL)
	assert.Nil(t, crew[0].BioURL)
	assert.Equal(t, "1", *crew[0].APIID)
	assert.Equal(t, 0, crew[0].SortOrder)

	assert.Equal(t, "Crew", crew[1].Role)
	assert.Equal(t, 1, crew[1].SortOrder)
}

func TestFetchCrew_NoSpacecraftStage(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "abc", "rocket": {}}`)
	}))

	crew, err := src.FetchCrew(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, crew)
}

func TestSearchPatches_SortedByPriority(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mission_patch/", r.URL.Path)
		assert.Equal(t, "Artemis II", r.URL.Query().Get("search"))
		fmt.Fprint(w, `{"results": [
		  {"id": 1, "name": "Artemis I", "priority": 10, "image_url": "https://x/a1_patch.png"},
		  {"id": 2, "name": "Artemis II", "priority": 50, "image_url": "https://x/a2_patch.png"},
		  {"id": 3, "name": "Empty", "priority": 99, "image_url": null}
		]}`)
	}))

	patches, err := src.SearchPatches(context.Background(), "Artemis II")
	require.NoError(t, err)
	require.Len(t, patches, 2)
	assert.Equal(t, "Artemis II", patches[0].Name)
	assert.Equal(t, "https://x/a2_patch.png", patches[0].ImageURL)
}

func TestAgencyLogo(t *testing.T) {
	src := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/agencies/44/":
			fmt.Fprint(w, `{"id": 44, "logo_url": "https://x/nasa_logo.png", "image_url": "https://x/nasa.jpg"}`)
		case "/agencies/16/":
			fmt.Fprint(w, `{"id": 16, "logo_url": null, "image_url": "https://x/csa.jpg"}`)
		case "/agencies/1/":
			fmt.Fprint(w, `{"id": 1}`)
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	logo, err := src.AgencyLogo(ctx, 44)
	require.NoError(t, err)
	assert.Equal(t, "https://x/nasa_logo.png", logo)

	logo, err = src.AgencyLogo(ctx, 16)
	require.NoError(t, err)
	assert.Equal(t, "https://x/csa.jpg", logo)

	logo, err = src.AgencyLogo(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, logo)

	_, err = src.AgencyLogo(ctx, 999)
	assert.ErrorIs(t, err, errNotFound)
}

func TestCalculateBackoff(t *testing.T) {
	s := &Source{initialBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, s.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, s.calculateBackoff(4))
}
