package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"artemisops/internal/cache"
	"artemisops/internal/domain"
)

type NewsConfig struct {
	Feeds    []string
	Limit    int
	CacheTTL time.Duration
}

const newsKey = "latest"

type NewsService struct {
	source FeedSource
	cfg    NewsConfig
	cache  *cache.TTL[string, *[]domain.NewsItem]
	logger *slog.Logger
}

func NewNewsService(source FeedSource, cfg NewsConfig, clock cache.Clock, logger *slog.Logger) *NewsService {
	return &NewsService{
		source: source,
		cfg:    cfg,
		cache:  cache.NewTTL[string, *[]domain.NewsItem](cfg.CacheTTL, clock),
		logger: logger.With("component", "news"),
	}
}

// Latest returns the newest items across every configured feed.
func (s *NewsService) Latest(ctx context.Context) ([]domain.NewsItem, error) {
	items, _, err := tiered(ctx, s.cache, newsKey, s.fetchAll, s.logger)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// fetchAll reads the feeds concurrently. It fails only when no feed answered.
func (s *NewsService) fetchAll(ctx context.Context) (*[]domain.NewsItem, error) {
	results := make([][]domain.NewsItem, len(s.cfg.Feeds))
	errs := make([]error, len(s.cfg.Feeds))

	var wg sync.WaitGroup
	for i, url := range s.cfg.Feeds {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i], errs[i] = s.source.Fetch(ctx, url)
		}(i, url)
	}
	wg.Wait()

	var merged []domain.NewsItem
	ok := 0
	for i, err := range errs {
		if err != nil {
			s.logger.Warn("feed fetch failed", "url", s.cfg.Feeds[i], "error", err)
			continue
		}
		ok++
		merged = append(merged, results[i]...)
	}
	if ok == 0 {
		return nil, domain.ErrUnavailable
	}

	merged = mergeNews(merged, s.cfg.Limit)
	return &merged, nil
}

// mergeNews orders items newest first, undated last, drops repeated links
// and keeps at most limit items.
func mergeNews(items []domain.NewsItem, limit int) []domain.NewsItem {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PublishedAt, items[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	seen := make(map[string]struct{}, len(items))
	out := make([]domain.NewsItem, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.Link]; dup {
			continue
		}
		seen[it.Link] = struct{}{}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
