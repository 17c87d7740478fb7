package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weathermap.app/internal/ports"
)

const maxAreaWetness = 100

// Snapshot is the current weather at the selected coordinates
type Snapshot struct {
	Place                 string
	Country               string
	Temperature           float64
	Description           string
	Humidity              float64
	PrecipitationLastHour float64
	AreaWetness           int
	CloudCover            float64
	WindSpeed             float64
	Coordinates           ports.Coordinates
	Timestamp             time.Time
}

// DailyForecast is the representative forecast entry of one calendar day
type DailyForecast struct {
	Day         string
	Date        time.Time
	Description string
	Temperature float64
}

// AreaWetness is a display heuristic, not a physical quantity:
// min(100, round(precipitation*10 + humidity/2)), never below 0.
func AreaWetness(precipitationMM, humidity float64) int {
	v := roundHalfUp(precipitationMM*10 + humidity/2)
	if v > maxAreaWetness {
		return maxAreaWetness
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// NewSnapshot derives a snapshot from upstream conditions
func NewSnapshot(c *ports.CurrentConditions) *Snapshot {
	precipitation := 0.0
	if c.PrecipitationLastHour != nil {
		precipitation = *c.PrecipitationLastHour
	}

	return &Snapshot{
		Place:                 c.Place,
		Country:               c.Country,
		Temperature:           c.Temperature,
		Description:           c.Description,
		Humidity:              c.Humidity,
		PrecipitationLastHour: precipitation,
		AreaWetness:           AreaWetness(precipitation, c.Humidity),
		CloudCover:            c.CloudCover,
		WindSpeed:             c.WindSpeed,
		Coordinates:           c.Coordinates,
		Timestamp:             c.Timestamp,
	}
}

// IsValid validates snapshot data
func (s *Snapshot) IsValid() error {
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// LocationLabel returns "Place, CC", leaving out whatever the upstream did not name
func (s *Snapshot) LocationLabel() string {
	switch {
	case s.Place != "" && s.Country != "":
		return s.Place + ", " + s.Country
	case s.Place != "":
		return s.Place
	case s.Country != "":
		return s.Country
	default:
		return s.Coordinates.String()
	}
}

// GroupDaily picks one forecast slot per calendar day in loc. The slot at hour 12
// wins; a day without a noon slot keeps its first slot. Days are returned in the
// order they first appear, at most limit of them.
func GroupDaily(slots []ports.ForecastSlot, loc *time.Location, limit int) []DailyForecast {
	if loc == nil {
		loc = time.UTC
	}

	order := make([]string, 0, limit)
	chosen := make(map[string]ports.ForecastSlot)

	for _, slot := range slots {
		local := slot.Time.In(loc)
		key := local.Format(time.DateOnly)

		if _, seen := chosen[key]; !seen {
			order = append(order, key)
			chosen[key] = slot
			continue
		}
		if local.Hour() == 12 {
			chosen[key] = slot
		}
	}

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	days := make([]DailyForecast, 0, len(order))
	for _, key := range order {
		slot := chosen[key]
		local := slot.Time.In(loc)
		days = append(days, DailyForecast{
			Day:         local.Format("Mon"),
			Date:        time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
			Description: slot.Description,
			Temperature: slot.Temperature,
		})
	}
	return days
}

// roundHalfUp rounds .5 towards +Inf, the way the page always displayed numbers
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
