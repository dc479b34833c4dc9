package rss

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>NASA Breaking News</title>
    <link>https://www.nasa.gov</link>
    <item>
      <title>Artemis II Crew Enters Quarantine</title>
      <link>https://www.nasa.gov/news/a2-quarantine</link>
      <description>The four astronauts began health stabilization.</description>
      <pubDate>Fri, 02 Jan 2026 15:04:05 +0000</pubDate>
    </item>
    <item>
      <title></title>
      <link>https://www.nasa.gov/news/untitled</link>
    </item>
    <item>
      <title>Undated Item</title>
      <link>https://www.nasa.gov/news/undated</link>
    </item>
  </channel>
</rss>`

func newSource() *Source {
	return New(time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedBody)
	}))
	defer srv.Close()

	items, err := newSource().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Artemis II Crew Enters Quarantine", items[0].Title)
	assert.Equal(t, "NASA Breaking News", items[0].Source)
	require.NotNil(t, items[0].PublishedAt)
	assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), *items[0].PublishedAt)

	assert.Nil(t, items[1].PublishedAt)
}

func TestFetch_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newSource().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, strings.Repeat("a", 3)+"…", truncate("aaaaa", 3))
}
