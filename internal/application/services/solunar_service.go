package services

import (
	"math"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

const (
	synodicMonth = 29.530588 // days per lunation
	lunarDay     = 24.8412   // hours between successive upper transits
)

// Reference new moon: 2000-01-06 18:14 UTC
var referenceNewMoon = time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

// SolunarService computes solunar activity tables locally. Transits are
// approximated from lunar age and the location's longitude, which is
// accurate to within roughly half an hour; good enough for planning a
// morning on the water.
type SolunarService struct{}

// NewSolunarService creates a new solunar service
func NewSolunarService() *SolunarService {
	return &SolunarService{}
}

// Forecast computes the solunar table for one day at a coordinate. Major
// periods bracket the lunar transits, minor periods bracket moonrise and
// moonset.
func (s *SolunarService) Forecast(date time.Time, coords entities.Coordinates) *entities.SolunarForecast {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	age := moonAge(day)

	// Upper transit lags solar noon by ~50 minutes per day of lunar age
	solarNoon := 12.0 - coords.Longitude/15.0
	transitHour := math.Mod(solarNoon+age*(lunarDay-24.0), 24.0)
	if transitHour < 0 {
		transitHour += 24
	}

	upper := day.Add(time.Duration(transitHour * float64(time.Hour)))
	lower := upper.Add(time.Duration(lunarDay / 2 * float64(time.Hour)))
	moonrise := upper.Add(-time.Duration(lunarDay / 4 * float64(time.Hour)))
	moonset := upper.Add(time.Duration(lunarDay / 4 * float64(time.Hour)))

	return &entities.SolunarForecast{
		Date:      day,
		MoonPhase: phaseName(age),
		MoonAge:   age,
		MajorPeriods: []entities.SolunarPeriod{
			periodAround(upper, time.Hour),
			periodAround(lower, time.Hour),
		},
		MinorPeriods: []entities.SolunarPeriod{
			periodAround(moonrise, 30*time.Minute),
			periodAround(moonset, 30*time.Minute),
		},
		DayRating: dayRating(age),
	}
}

// moonAge returns days since the last new moon
func moonAge(t time.Time) float64 {
	days := t.Sub(referenceNewMoon).Hours() / 24
	age := math.Mod(days, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}
	return age
}

func phaseName(age float64) string {
	switch {
	case age < 1.85:
		return "new_moon"
	case age < 5.54:
		return "waxing_crescent"
	case age < 9.23:
		return "first_quarter"
	case age < 12.92:
		return "waxing_gibbous"
	case age < 16.61:
		return "full_moon"
	case age < 20.30:
		return "waning_gibbous"
	case age < 23.99:
		return "last_quarter"
	case age < 27.68:
		return "waning_crescent"
	default:
		return "new_moon"
	}
}

// dayRating scores activity 1-5; new and full moons fish best
func dayRating(age float64) int {
	distNew := math.Min(age, synodicMonth-age)
	distFull := math.Abs(age - synodicMonth/2)
	dist := math.Min(distNew, distFull)

	switch {
	case dist < 1:
		return 5
	case dist < 2.5:
		return 4
	case dist < 4.5:
		return 3
	case dist < 6:
		return 2
	default:
		return 1
	}
}

func periodAround(center time.Time, half time.Duration) entities.SolunarPeriod {
	return entities.SolunarPeriod{
		Start: center.Add(-half),
		End:   center.Add(half),
	}
}
