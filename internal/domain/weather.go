package domain

// Site is a known launch or recovery location.
type Site struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Forecast holds the daily and hourly columns returned by the weather adapter.
// Columns are index-aligned with their Time slice; missing values are nil.
type Forecast struct {
	Daily  DailyColumns
	Hourly HourlyColumns
}

type DailyColumns struct {
	Time             []string
	WeatherCode      []*int
	TemperatureMax   []*float64
	TemperatureMin   []*float64
	PrecipitationSum []*float64
	WindSpeedMax     []*float64
	WindGustsMax     []*float64
}

type HourlyColumns struct {
	Time             []string
	Temperature      []*float64
	RelativeHumidity []*float64
	Precipitation    []*float64
	WeatherCode      []*int
	WindSpeed        []*float64
	WindGusts        []*float64
	CloudCover       []*float64
}

type WeatherStatus string

const (
	WeatherGo       WeatherStatus = "go"
	WeatherMarginal WeatherStatus = "marginal"
	WeatherNoGo     WeatherStatus = "no-go"
	WeatherUnknown  WeatherStatus = "unknown"
)

type Conditions struct {
	Code        *int     `json:"code"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	TempHighC   *float64 `json:"temperature_high_c"`
	TempLowC    *float64 `json:"temperature_low_c"`
	TempHighF   *float64 `json:"temperature_high_f"`
	TempLowF    *float64 `json:"temperature_low_f"`
	PrecipMM    *float64 `json:"precipitation_mm"`
	WindKMH     *float64 `json:"wind_speed_kmh"`
	WindMPH     *float64 `json:"wind_speed_mph"`
	GustKMH     *float64 `json:"wind_gust_kmh"`
	GustMPH     *float64 `json:"wind_gust_mph"`
}

// Advisory is the go / marginal / no-go assessment for one date at one site.
type Advisory struct {
	Status     WeatherStatus `json:"status"`
	Message    string        `json:"message"`
	Date       string        `json:"date,omitempty"`
	DaysUntil  int           `json:"days_until"`
	Conditions *Conditions   `json:"conditions,omitempty"`
	Issues     []string      `json:"issues,omitempty"`
}

type DayForecast struct {
	Date        string   `json:"date"`
	DayName     string   `json:"day_name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	TempHighC   *float64 `json:"temp_high_c"`
	TempLowC    *float64 `json:"temp_low_c"`
	PrecipMM    *float64 `json:"precipitation_mm"`
	WindKMH     *float64 `json:"wind_kmh"`
}

type SiteWeather struct {
	Site     string        `json:"site"`
	Lat      float64       `json:"lat"`
	Lon      float64       `json:"lon"`
	Analysis *Advisory     `json:"analysis,omitempty"`
	Forecast []DayForecast `json:"forecast,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// MissionWeather is the weather report for a mission's launch and landing.
type MissionWeather struct {
	MissionID   string       `json:"mission_id"`
	Launch      *SiteWeather `json:"launch"`
	Landing     *SiteWeather `json:"landing"`
	ShouldFetch bool         `json:"should_fetch"`
	Reason      string       `json:"reason,omitempty"`
}

type HourConditions struct {
	Time        string   `json:"time"`
	Description string   `json:"description"`
	TempC       *float64 `json:"temperature_c"`
	Humidity    *float64 `json:"relative_humidity"`
	PrecipMM    *float64 `json:"precipitation_mm"`
	WindKMH     *float64 `json:"wind_speed_kmh"`
	GustKMH     *float64 `json:"wind_gust_kmh"`
	CloudCover  *float64 `json:"cloud_cover"`
}

// LaunchDayWeather is the hour-by-hour view for a launch happening today.
type LaunchDayWeather struct {
	MissionID   string           `json:"mission_id"`
	IsLaunchDay bool             `json:"is_launch_day"`
	HoursUntil  *float64         `json:"hours_until,omitempty"`
	Site        string           `json:"site,omitempty"`
	Analysis    *Advisory        `json:"analysis,omitempty"`
	Hourly      []HourConditions `json:"hourly,omitempty"`
	Reason      string           `json:"reason,omitempty"`
}
