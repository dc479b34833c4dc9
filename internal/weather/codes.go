package weather

type condition struct {
	desc     string
	severity string
}

// wmoCodes describes WMO weather interpretation codes.
var wmoCodes = map[int]condition{
	0:  {"Clear sky", "good"},
	1:  {"Mainly clear", "good"},
	2:  {"Partly cloudy", "good"},
	3:  {"Overcast", "marginal"},
	45: {"Fog", "marginal"},
	48: {"Depositing rime fog", "bad"},
	51: {"Light drizzle", "marginal"},
	53: {"Moderate drizzle", "bad"},
	55: {"Dense drizzle", "bad"},
	61: {"Slight rain", "marginal"},
	63: {"Moderate rain", "bad"},
	65: {"Heavy rain", "bad"},
	71: {"Slight snow", "bad"},
	73: {"Moderate snow", "bad"},
	75: {"Heavy snow", "bad"},
	77: {"Snow grains", "bad"},
	80: {"Slight rain showers", "marginal"},
	81: {"Moderate rain showers", "bad"},
	82: {"Violent rain showers", "bad"},
	85: {"Slight snow showers", "bad"},
	86: {"Heavy snow showers", "bad"},
	95: {"Thunderstorm", "bad"},
	96: {"Thunderstorm with hail", "bad"},
	99: {"Thunderstorm with heavy hail", "bad"},
}

func describe(code *int) condition {
	if code == nil {
		return condition{"Unknown", "unknown"}
	}
	if c, ok := wmoCodes[*code]; ok {
		return c
	}
	return condition{"Unknown", "unknown"}
}

func isThunderstorm(code *int) bool {
	return code != nil && (*code == 95 || *code == 96 || *code == 99)
}
