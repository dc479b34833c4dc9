package domain

import "time"

// Mission is one tracked spaceflight campaign. LaunchDate and LandingDate
// hold the upstream ISO-8601 text verbatim; use ParseTimestamp to read them.
type Mission struct {
	ID                string    `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Slug              string    `db:"slug" json:"slug"`
	LaunchDate        *string   `db:"launch_date" json:"launch_date"`
	LandingDate       *string   `db:"landing_date" json:"landing_date"`
	LandingSite       *string   `db:"landing_site" json:"landing_site"`
	Status            string    `db:"status" json:"status"`
	StatusDescription string    `db:"status_description" json:"status_description"`
	Site              string    `db:"site" json:"site"`
	Rocket            string    `db:"rocket" json:"rocket"`
	Spacecraft        string    `db:"spacecraft" json:"spacecraft"`
	MissionType       string    `db:"mission_type" json:"mission_type"`
	Description       string    `db:"description" json:"description"`
	ImageURL          *string   `db:"image_url" json:"image_url"`
	PatchURL          *string   `db:"patch_url" json:"patch_url"`
	AgencyLogoURL     *string   `db:"agency_logo_url" json:"agency_logo_url"`
	Agencies          string    `db:"agencies" json:"agencies"` // comma-joined abbreviations, primary first
	APISource         string    `db:"api_source" json:"api_source"`
	APIID             *string   `db:"api_id" json:"api_id"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Launch returns the parsed launch timestamp, if the mission has a usable one.
func (m Mission) Launch() (time.Time, bool) {
	if m.LaunchDate == nil {
		return time.Time{}, false
	}
	return ParseTimestamp(*m.LaunchDate)
}

// Landing returns the parsed landing timestamp, if any.
func (m Mission) Landing() (time.Time, bool) {
	if m.LandingDate == nil {
		return time.Time{}, false
	}
	return ParseTimestamp(*m.LandingDate)
}

type CrewMember struct {
	ID        int64     `db:"id" json:"id"`
	MissionID string    `db:"mission_id" json:"mission_id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Agency    string    `db:"agency" json:"agency"`
	PhotoURL  *string   `db:"photo_url" json:"photo_url"`
	Bio       string    `db:"bio" json:"bio"`
	BioURL    *string   `db:"bio_url" json:"bio_url"`
	APIID     *string   `db:"api_id" json:"api_id"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneActive    MilestoneStatus = "active"
	MilestoneCompleted MilestoneStatus = "completed"
)

type Milestone struct {
	ID          int64           `db:"id" json:"id"`
	MissionID   string          `db:"mission_id" json:"mission_id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	DateLabel   string          `db:"date_label" json:"date_label"`
	TargetDate  *string         `db:"target_date" json:"target_date"`
	Status      MilestoneStatus `db:"status" json:"status"`
	CompletedAt *time.Time      `db:"completed_at" json:"completed_at"`
	SortOrder   int             `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// MissionDetail is a mission together with its crew and milestones.
type MissionDetail struct {
	Mission
	Crew       []CrewMember `json:"crew"`
	Milestones []Milestone  `json:"milestones"`
}

// PatchCandidate is one result of an upstream patch search.
type PatchCandidate struct {
	Name     string
	ImageURL string
	Priority int
}
