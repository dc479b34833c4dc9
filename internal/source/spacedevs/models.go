package spacedevs

import (
	"encoding/json"
	"strings"
)

// LaunchList is the paginated launch search response.
type LaunchList struct {
	Count   int      `json:"count"`
	Results []Launch `json:"results"`
}

type Launch struct {
	ID       apiID         `json:"id"`
	Name     string        `json:"name"`
	Net      *string       `json:"net"`
	Status   *LaunchStatus `json:"status"`
	Pad      *Pad          `json:"pad"`
	Rocket   *Rocket       `json:"rocket"`
	Mission  *MissionInfo  `json:"mission"`
	Image    *string       `json:"image"`
	Provider *AgencyRef    `json:"launch_service_provider"`
}

type LaunchStatus struct {
	Abbrev      string `json:"abbrev"`
	Description string `json:"description"`
}

type Pad struct {
	Location *Location `json:"location"`
}

type Location struct {
	Name string `json:"name"`
}

type Rocket struct {
	Configuration   *RocketConfig    `json:"configuration"`
	SpacecraftStage *SpacecraftStage `json:"spacecraft_stage"`
}

type RocketConfig struct {
	Name string `json:"name"`
}

type SpacecraftStage struct {
	LaunchCrew []CrewAssignment `json:"launch_crew"`
	Spacecraft *Spacecraft      `json:"spacecraft"`
	Landing    *Landing         `json:"landing"`
}

type Spacecraft struct {
	Name   string            `json:"name"`
	Config *SpacecraftConfig `json:"spacecraft_config"`
}

type SpacecraftConfig struct {
	Name string `json:"name"`
}

type Landing struct {
	Location *Location `json:"landing_location"`
}

type CrewAssignment struct {
	Role      *CrewRole  `json:"role"`
	Astronaut *Astronaut `json:"astronaut"`
}

type CrewRole struct {
	Role string `json:"role"`
}

type Astronaut struct {
	ID           apiID      `json:"id"`
	Name         string     `json:"name"`
	Agency       *AgencyRef `json:"agency"`
	ProfileImage *string    `json:"profile_image"`
	Bio          string     `json:"bio"`
	Wiki         *string    `json:"wiki"`
}

type MissionInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Agencies    []AgencyRef `json:"agencies"`
}

type AgencyRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// Agency is the agency detail response.
type Agency struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	LogoURL  *string `json:"logo_url"`
	ImageURL *string `json:"image_url"`
}

type PatchList struct {
	Results []Patch `json:"results"`
}

type Patch struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Priority int     `json:"priority"`
	ImageURL *string `json:"image_url"`
}

// apiID accepts identifiers sent either as JSON strings or numbers.
type apiID string

func (id *apiID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = apiID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = apiID(strings.TrimSpace(n.String()))
	return nil
}
