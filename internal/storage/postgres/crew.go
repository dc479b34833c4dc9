package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artemisops/internal/domain"
)

type CrewStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewCrewStore(db *sqlx.DB) *CrewStore {
	return &CrewStore{db: db, tx: NewTransactionManager(db)}
}

func (s *CrewStore) GetByMission(ctx context.Context, missionID string) ([]domain.CrewMember, error) {
	query := `
		SELECT id, mission_id, name, role, agency, photo_url, bio, bio_url,
			api_id, sort_order, created_at, updated_at
		FROM crew
		WHERE mission_id = $1
		ORDER BY sort_order ASC, id ASC`

	crew := []domain.CrewMember{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &crew, query, missionID); err != nil {
		return nil, fmt.Errorf("select crew for %s: %w", missionID, err)
	}
	return crew, nil
}

// Replace swaps the mission's whole roster in one transaction. Sort order
// follows slice order.
func (s *CrewStore) Replace(ctx context.Context, missionID string, crew []domain.CrewMember) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		if _, err := exec.ExecContext(ctx, `DELETE FROM crew WHERE mission_id = $1`, missionID); err != nil {
			return fmt.Errorf("delete crew for %s: %w", missionID, err)
		}

		query := `
			INSERT INTO crew (
				mission_id, name, role, agency, photo_url, bio, bio_url, api_id, sort_order
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

		for i, c := range crew {
			_, err := exec.ExecContext(ctx, query,
				missionID, c.Name, c.Role, c.Agency, c.PhotoURL, c.Bio, c.BioURL, c.APIID, i,
			)
			if err != nil {
				return fmt.Errorf("insert crew member %q: %w", c.Name, err)
			}
		}
		return nil
	})
}
