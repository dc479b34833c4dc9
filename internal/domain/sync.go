package domain

import "time"

type SyncOutcome string

const (
	SyncSuccess SyncOutcome = "success"
	SyncError   SyncOutcome = "error"
)

// SyncLogEntry is an append-only record of one synchronization attempt.
type SyncLogEntry struct {
	ID              int64       `db:"id" json:"id"`
	Source          string      `db:"source" json:"source"`
	Status          SyncOutcome `db:"status" json:"status"`
	MissionsUpdated int         `db:"missions_updated" json:"missions_updated"`
	ErrorMessage    *string     `db:"error_message" json:"error_message"`
	SyncedAt        time.Time   `db:"synced_at" json:"synced_at"`
}

// SyncResult holds the outcome of one sync run.
type SyncResult struct {
	Source          string        `json:"source"`
	Status          SyncOutcome   `json:"status"`
	Fetched         int           `json:"fetched"`
	MissionsUpdated int           `json:"missions_updated"`
	CrewUpdated     int           `json:"crew_updated"`
	Published       int           `json:"published"`
	Errors          []string      `json:"errors"`
	Duration        time.Duration `json:"duration"`
}
