package service

import "artemisops/internal/domain"

// ArtemisIIID is the mission that ships with a built-in roster and timeline.
const ArtemisIIID = "artemis-ii"

func strPtr(s string) *string { return &s }

func defaultArtemisII() domain.Mission {
	return domain.Mission{
		ID:                ArtemisIIID,
		Name:              "Artemis II",
		Slug:              ArtemisIIID,
		LaunchDate:        strPtr("2026-02-06T12:00:00Z"),
		Status:            "Go",
		StatusDescription: "Artemis II is in final preparations for humanity's return to lunar orbit.",
		Site:              "Kennedy Space Center, FL",
		Rocket:            "SLS Block 1",
		Spacecraft:        "Orion",
		MissionType:       "Human Exploration",
		Description:       "First crewed Artemis mission, sending four astronauts around the Moon.",
		ImageURL:          strPtr("https://www.nasa.gov/wp-content/uploads/2023/04/52790983768-79132211b6-k-2.jpg"),
		Agencies:          "NASA,CSA",
		APISource:         "fallback",
		IsActive:          true,
	}
}

func artemisIICrew() []domain.CrewMember {
	return []domain.CrewMember{
		{
			Name:     "Reid Wiseman",
			Role:     "Commander",
			Agency:   "NASA",
			PhotoURL: strPtr("https://www.nasa.gov/wp-content/uploads/2023/03/jsc2013e090068.jpg"),
			Bio:      "NASA astronaut and U.S. Navy Captain. Previously flew on Expedition 41 aboard the ISS in 2014.",
			BioURL:   strPtr("https://www.nasa.gov/people/reid-wiseman/"),
		},
		{
			Name:     "Victor Glover",
			Role:     "Pilot",
			Agency:   "NASA",
			PhotoURL: strPtr("https://www.nasa.gov/wp-content/uploads/2023/03/jsc2018e038718.jpg"),
			Bio:      "NASA astronaut and U.S. Navy Captain. Pilot of SpaceX Crew-1 and ISS Expedition 64 crew member.",
			BioURL:   strPtr("https://www.nasa.gov/people/victor-j-glover/"),
		},
		{
			Name:     "Christina Koch",
			Role:     "Mission Specialist",
			Agency:   "NASA",
			PhotoURL: strPtr("https://www.nasa.gov/wp-content/uploads/2023/03/jsc2018e038864.jpg"),
			Bio:      "NASA astronaut and electrical engineer. Holds record for longest single spaceflight by a woman (328 days).",
			BioURL:   strPtr("https://www.nasa.gov/people/christina-h-koch/"),
		},
		{
			Name:     "Jeremy Hansen",
			Role:     "Mission Specialist",
			Agency:   "CSA",
			PhotoURL: strPtr("https://www.asc-csa.gc.ca/images/recherche/tiles/5eed17e3-4a8f-46f5-8317-f372c3b79ece.jpg"),
			Bio:      "Canadian Space Agency astronaut and former CF-18 fighter pilot. First Canadian to fly to the Moon.",
			BioURL:   strPtr("https://www.asc-csa.gc.ca/eng/astronauts/canadian/active/bio-jeremy-hansen.asp"),
		},
	}
}

func artemisIIMilestones() []domain.Milestone {
	return []domain.Milestone{
		{DateLabel: "Dec 2025", Title: "Flight Readiness Review", Description: "Final comprehensive review of all mission systems", Status: domain.MilestoneCompleted},
		{DateLabel: "Jan 2, 2026", Title: "Crew Quarantine Begins", Description: "Flight crew enters health stabilization program", Status: domain.MilestoneCompleted},
		{DateLabel: "Jan 17, 2026", Title: "Rollout to Pad 39B", Description: "SLS transported from VAB to launch complex", Status: domain.MilestoneActive},
		{DateLabel: "Jan 27, 2026", Title: "Wet Dress Rehearsal", Description: "Full countdown simulation with propellant loading", Status: domain.MilestonePending},
		{DateLabel: "T-6:40:00", Title: "Cryo Loading", Description: "Begin loading liquid hydrogen and oxygen", Status: domain.MilestonePending},
		{DateLabel: "T-2:35:00", Title: "Crew Ingress", Description: "Four astronauts board Orion spacecraft", Status: domain.MilestonePending},
		{DateLabel: "T-00:00", Title: "LIFTOFF", Description: "RS-25 engines and SRBs ignite", Status: domain.MilestonePending},
	}
}
