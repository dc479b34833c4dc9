// Package rss reads space news feeds.
package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"artemisops/internal/domain"
)

const maxSummaryLen = 300

type Source struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

func New(timeout time.Duration, logger *slog.Logger) *Source {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: timeout}
	p.UserAgent = "ArtemisOps/1.0"
	return &Source{
		parser: p,
		logger: logger.With("source", "rss"),
	}
}

// Fetch parses the feed at feedURL. Items without a title or link are dropped.
func (s *Source) Fetch(ctx context.Context, feedURL string) ([]domain.NewsItem, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = feedURL
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || it.Title == "" || it.Link == "" {
			continue
		}
		item := domain.NewsItem{
			Title:   strings.TrimSpace(it.Title),
			Link:    it.Link,
			Summary: truncate(strings.TrimSpace(it.Description), maxSummaryLen),
			Source:  source,
		}
		switch {
		case it.PublishedParsed != nil:
			t := it.PublishedParsed.UTC()
			item.PublishedAt = &t
		case it.UpdatedParsed != nil:
			t := it.UpdatedParsed.UTC()
			item.PublishedAt = &t
		}
		items = append(items, item)
	}

	s.logger.Debug("fetched feed", "url", feedURL, "items", len(items))
	return items, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
