// Package weather turns a site forecast into a launch go / marginal / no-go advisory.
package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"artemisops/internal/domain"
)

// Constraints are simplified launch commit criteria.
type Constraints struct {
	MaxWindKMH  float64
	MaxGustKMH  float64
	MaxPrecipMM float64
	BadCodes    map[int]struct{}
}

func DefaultConstraints() Constraints {
	bad := []int{48, 53, 55, 63, 65, 71, 73, 75, 77, 81, 82, 85, 86, 95, 96, 99}
	set := make(map[int]struct{}, len(bad))
	for _, c := range bad {
		set[c] = struct{}{}
	}
	return Constraints{
		MaxWindKMH:  48,
		MaxGustKMH:  64,
		MaxPrecipMM: 0.1,
		BadCodes:    set,
	}
}

const dateLayout = "2006-01-02"

// Analyze assesses the forecast for the calendar day (UTC) of target.
func Analyze(f *domain.Forecast, target, now time.Time, c Constraints) domain.Advisory {
	if f == nil || len(f.Daily.Time) == 0 {
		return domain.Advisory{Status: domain.WeatherUnknown, Message: "Weather data unavailable"}
	}

	day := target.UTC().Format(dateLayout)
	idx := -1
	for i, d := range f.Daily.Time {
		if d == day {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Advisory{
			Status:    domain.WeatherUnknown,
			Message:   "Launch date outside forecast range",
			DaysUntil: DaysUntil(target, now),
		}
	}

	code := intAt(f.Daily.WeatherCode, idx)
	high := floatAt(f.Daily.TemperatureMax, idx)
	low := floatAt(f.Daily.TemperatureMin, idx)
	precip := floatAt(f.Daily.PrecipitationSum, idx)
	wind := floatAt(f.Daily.WindSpeedMax, idx)
	gust := floatAt(f.Daily.WindGustsMax, idx)
	cond := describe(code)

	var issues []string
	if code != nil {
		if _, bad := c.BadCodes[*code]; bad {
			issues = append(issues, "Weather: "+cond.desc)
		}
	}
	if wind != nil && *wind > c.MaxWindKMH {
		issues = append(issues, fmt.Sprintf("High winds: %.0f km/h", *wind))
	}
	if gust != nil && *gust > c.MaxGustKMH {
		issues = append(issues, fmt.Sprintf("Strong gusts: %.0f km/h", *gust))
	}
	if precip != nil && *precip > c.MaxPrecipMM {
		issues = append(issues, fmt.Sprintf("Precipitation: %.1f mm", *precip))
	}

	adv := domain.Advisory{
		Date:      day,
		DaysUntil: DaysUntil(target, now),
		Issues:    issues,
		Conditions: &domain.Conditions{
			Code:        code,
			Description: cond.desc,
			Severity:    cond.severity,
			TempHighC:   high,
			TempLowC:    low,
			TempHighF:   celsiusToF(high),
			TempLowF:    celsiusToF(low),
			PrecipMM:    precip,
			WindKMH:     wind,
			WindMPH:     kmhToMPH(wind),
			GustKMH:     gust,
			GustMPH:     kmhToMPH(gust),
		},
	}

	switch {
	case len(issues) == 0:
		adv.Status = domain.WeatherGo
		adv.Message = "Weather conditions favorable for launch"
	case len(issues) == 1 && !isThunderstorm(code):
		adv.Status = domain.WeatherMarginal
		adv.Message = "Weather conditions marginal: " + strings.Join(issues, ", ")
	default:
		adv.Status = domain.WeatherNoGo
		adv.Message = "Weather conditions unfavorable: " + strings.Join(issues, ", ")
	}
	return adv
}

// Summary returns up to days entries of the daily forecast.
func Summary(f *domain.Forecast, days int) []domain.DayForecast {
	if f == nil {
		return nil
	}
	n := min(days, len(f.Daily.Time))
	out := make([]domain.DayForecast, 0, n)
	for i := 0; i < n; i++ {
		date := f.Daily.Time[i]
		cond := describe(intAt(f.Daily.WeatherCode, i))
		entry := domain.DayForecast{
			Date:        date,
			Description: cond.desc,
			Severity:    cond.severity,
			TempHighC:   floatAt(f.Daily.TemperatureMax, i),
			TempLowC:    floatAt(f.Daily.TemperatureMin, i),
			PrecipMM:    floatAt(f.Daily.PrecipitationSum, i),
			WindKMH:     floatAt(f.Daily.WindSpeedMax, i),
		}
		if t, err := time.Parse(dateLayout, date); err == nil {
			entry.DayName = t.Format("Mon")
		}
		out = append(out, entry)
	}
	return out
}

// Hourly returns the hourly conditions that fall on the UTC calendar day of target.
func Hourly(f *domain.Forecast, target time.Time) []domain.HourConditions {
	if f == nil {
		return nil
	}
	day := target.UTC().Format(dateLayout)
	var out []domain.HourConditions
	for i, ts := range f.Hourly.Time {
		if !strings.HasPrefix(ts, day) {
			continue
		}
		out = append(out, domain.HourConditions{
			Time:        ts,
			Description: describe(intAt(f.Hourly.WeatherCode, i)).desc,
			TempC:       floatAt(f.Hourly.Temperature, i),
			Humidity:    floatAt(f.Hourly.RelativeHumidity, i),
			PrecipMM:    floatAt(f.Hourly.Precipitation, i),
			WindKMH:     floatAt(f.Hourly.WindSpeed, i),
			GustKMH:     floatAt(f.Hourly.WindGusts, i),
			CloudCover:  floatAt(f.Hourly.CloudCover, i),
		})
	}
	return out
}

// InWindow reports whether event lies between now and now+days.
func InWindow(event, now time.Time, days int) bool {
	delta := event.Sub(now)
	return delta >= 0 && delta <= time.Duration(days)*24*time.Hour
}

// DaysUntil is the whole number of days until event, never negative.
func DaysUntil(event, now time.Time) int {
	d := int(math.Floor(event.Sub(now).Hours() / 24))
	return max(d, 0)
}

func HoursUntil(event, now time.Time) float64 {
	return event.Sub(now).Hours()
}

// SameDay reports whether event falls on the current UTC calendar day.
func SameDay(event, now time.Time) bool {
	return event.UTC().Format(dateLayout) == now.UTC().Format(dateLayout)
}

func intAt(col []*int, i int) *int {
	if i < len(col) {
		return col[i]
	}
	return nil
}

func floatAt(col []*float64, i int) *float64 {
	if i < len(col) {
		return col[i]
	}
	return nil
}

func celsiusToF(c *float64) *float64 {
	if c == nil {
		return nil
	}
	f := math.Round((*c*9/5+32)*10) / 10
	return &f
}

func kmhToMPH(v *float64) *float64 {
	if v == nil {
		return nil
	}
	mph := math.Round(*v*0.621371*10) / 10
	return &mph
}
