package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artemisops/internal/domain"
)

type MilestoneStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewMilestoneStore(db *sqlx.DB) *MilestoneStore {
	return &MilestoneStore{db: db, tx: NewTransactionManager(db)}
}

func (s *MilestoneStore) GetByMission(ctx context.Context, missionID string) ([]domain.Milestone, error) {
	query := `
		SELECT id, mission_id, title, description, date_label, target_date,
			status, completed_at, sort_order, created_at, updated_at
		FROM milestones
		WHERE mission_id = $1
		ORDER BY sort_order ASC, id ASC`

	milestones := []domain.Milestone{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &milestones, query, missionID); err != nil {
		return nil, fmt.Errorf("select milestones for %s: %w", missionID, err)
	}
	return milestones, nil
}

func (s *MilestoneStore) Replace(ctx context.Context, missionID string, milestones []domain.Milestone) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		if _, err := exec.ExecContext(ctx, `DELETE FROM milestones WHERE mission_id = $1`, missionID); err != nil {
			return fmt.Errorf("delete milestones for %s: %w", missionID, err)
		}

		query := `
			INSERT INTO milestones (
				mission_id, title, description, date_label, target_date, status, completed_at, sort_order
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

		for i, m := range milestones {
			status := m.Status
			if status == "" {
				status = domain.MilestonePending
			}
			_, err := exec.ExecContext(ctx, query,
				missionID, m.Title, m.Description, m.DateLabel, m.TargetDate, string(status), m.CompletedAt, i,
			)
			if err != nil {
				return fmt.Errorf("insert milestone %q: %w", m.Title, err)
			}
		}
		return nil
	})
}
