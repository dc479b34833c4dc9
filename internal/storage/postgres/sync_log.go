package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artemisops/internal/domain"
)

type SyncLogStore struct {
	db *sqlx.DB
}

func NewSyncLogStore(db *sqlx.DB) *SyncLogStore {
	return &SyncLogStore{db: db}
}

func (s *SyncLogStore) Log(ctx context.Context, entry *domain.SyncLogEntry) error {
	query := `
		INSERT INTO sync_log (source, status, missions_updated, error_message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, synced_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.Source,
		string(entry.Status),
		entry.MissionsUpdated,
		entry.ErrorMessage,
	).Scan(&entry.ID, &entry.SyncedAt)
	if err != nil {
		return fmt.Errorf("insert sync log: %w", err)
	}
	return nil
}

// LastSuccessful returns the newest successful entry, or domain.ErrNotFound.
func (s *SyncLogStore) LastSuccessful(ctx context.Context) (*domain.SyncLogEntry, error) {
	query := `
		SELECT id, source, status, missions_updated, error_message, synced_at
		FROM sync_log
		WHERE status = 'success'
		ORDER BY synced_at DESC, id DESC
		LIMIT 1`

	var entry domain.SyncLogEntry
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select last sync: %w", err)
	}
	return &entry, nil
}
