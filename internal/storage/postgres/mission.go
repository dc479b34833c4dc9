package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"artemisops/internal/domain"
)

const missionColumns = `
	id, name, slug, launch_date, landing_date, landing_site, status,
	status_description, site, rocket, spacecraft, mission_type, description,
	image_url, patch_url, agency_logo_url, agencies, api_source, api_id,
	is_active, created_at, updated_at`

type MissionStore struct {
	db *sqlx.DB
}

func NewMissionStore(db *sqlx.DB) *MissionStore {
	return &MissionStore{db: db}
}

// GetAll returns missions in ascending launch order; undated missions last.
func (s *MissionStore) GetAll(ctx context.Context, activeOnly bool) ([]domain.Mission, error) {
	query := `SELECT` + missionColumns + ` FROM missions`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY launch_date ASC NULLS LAST, id ASC`

	var missions []domain.Mission
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &missions, query); err != nil {
		return nil, fmt.Errorf("select missions: %w", err)
	}
	return missions, nil
}

// Get looks a mission up by id or slug.
func (s *MissionStore) Get(ctx context.Context, idOrSlug string) (*domain.Mission, error) {
	query := `SELECT` + missionColumns + ` FROM missions WHERE id = $1 OR slug = $1 ORDER BY (id = $1) DESC LIMIT 1`

	var m domain.Mission
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m, query, idOrSlug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select mission %s: %w", idOrSlug, err)
	}
	return &m, nil
}

// GetByIDs returns the missions whose id is in ids, keyed by id.
func (s *MissionStore) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Mission, error) {
	if len(ids) == 0 {
		return map[string]domain.Mission{}, nil
	}

	query := `SELECT` + missionColumns + ` FROM missions WHERE id = ANY($1)`

	var missions []domain.Mission
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &missions, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select missions by ids: %w", err)
	}

	out := make(map[string]domain.Mission, len(missions))
	for _, m := range missions {
		out[m.ID] = m
	}
	return out, nil
}

// Upsert inserts the mission or overwrites every field of the existing row.
func (s *MissionStore) Upsert(ctx context.Context, m *domain.Mission) (string, error) {
	query := `
		INSERT INTO missions (
			id, name, slug, launch_date, landing_date, landing_site, status,
			status_description, site, rocket, spacecraft, mission_type, description,
			image_url, patch_url, agency_logo_url, agencies, api_source, api_id, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			launch_date = EXCLUDED.launch_date,
			landing_date = EXCLUDED.landing_date,
			landing_site = EXCLUDED.landing_site,
			status = EXCLUDED.status,
			status_description = EXCLUDED.status_description,
			site = EXCLUDED.site,
			rocket = EXCLUDED.rocket,
			spacecraft = EXCLUDED.spacecraft,
			mission_type = EXCLUDED.mission_type,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			patch_url = EXCLUDED.patch_url,
			agency_logo_url = EXCLUDED.agency_logo_url,
			agencies = EXCLUDED.agencies,
			api_source = EXCLUDED.api_source,
			api_id = EXCLUDED.api_id,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id`

	var id string
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		m.ID,
		m.Name,
		m.Slug,
		m.LaunchDate,
		m.LandingDate,
		m.LandingSite,
		m.Status,
		m.StatusDescription,
		m.Site,
		m.Rocket,
		m.Spacecraft,
		m.MissionType,
		m.Description,
		m.ImageURL,
		m.PatchURL,
		m.AgencyLogoURL,
		m.Agencies,
		m.APISource,
		m.APIID,
		m.IsActive,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert mission %s: %w", m.ID, err)
	}
	return id, nil
}
