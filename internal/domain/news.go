package domain

import "time"

type NewsItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Summary     string     `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"published_at"`
	Source      string     `json:"source"`
}
