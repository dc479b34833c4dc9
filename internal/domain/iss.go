package domain

import "time"

type ISSPosition struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AltitudeKM  *float64 `json:"altitude_km"`
	VelocityKMH *float64 `json:"velocity_kmh"`
	Visibility  *string  `json:"visibility"`
	FootprintKM *float64 `json:"footprint_km"`
	Timestamp   int64    `json:"timestamp"`
	Source      string   `json:"source"`
}

type Astronaut struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

type ISSCrew struct {
	Count        int         `json:"count"`
	Crew         []Astronaut `json:"crew"`
	TotalInSpace int         `json:"total_in_space"`
	Source       string      `json:"source"`
}

type Location struct {
	Location    string  `json:"location"`
	CountryCode string  `json:"country_code"`
	TimezoneID  *string `json:"timezone_id"`
	Source      string  `json:"source"`
}

// CacheInfo describes where a served value came from.
type CacheInfo struct {
	Cached          bool     `json:"cached"`
	Stale           bool     `json:"stale,omitempty"`
	CacheAgeSeconds *float64 `json:"cache_age_seconds,omitempty"`
}

type PositionReport struct {
	ISSPosition
	CacheInfo
}

type CrewReport struct {
	ISSCrew
	CacheInfo
}

type LocationReport struct {
	Location
	CacheInfo
}

// Telemetry is decoded client-side; the server only reports where it comes from.
type Telemetry struct {
	ConnectionStatus string `json:"connection_status"`
	Source           string `json:"source"`
	Note             string `json:"note"`
}

type ISSSnapshot struct {
	Position      *PositionReport `json:"position,omitempty"`
	PositionError string          `json:"position_error,omitempty"`
	Crew          *CrewReport     `json:"crew,omitempty"`
	CrewError     string          `json:"crew_error,omitempty"`
	Telemetry     Telemetry       `json:"telemetry"`
	Timestamp     time.Time       `json:"timestamp"`
}
