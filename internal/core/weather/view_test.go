package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathermap.app/internal/ports"
)

func TestCurrentView_Metric(t *testing.T) {
	s := &Snapshot{
		Place:       "London",
		Country:     "GB",
		Temperature: 14.5,
		Description: "light rain",
		Humidity:    78,
		AreaWetness: 39,
		CloudCover:  75,
		WindSpeed:   4.12,
	}

	view := CurrentView(s, "metric")

	assert.Equal(t, ports.CurrentWeatherView{
		Location:    "London, GB",
		Temperature: "15°C",
		Description: "light rain",
		Humidity:    "78%",
		AreaWetness: "39%",
		CloudCover:  "75%",
		WindSpeed:   "4.12 m/s",
	}, view)
}

func TestCurrentView_NegativeHalfRoundsUp(t *testing.T) {
	view := CurrentView(&Snapshot{Temperature: -2.5, Description: "snow"}, "metric")
	assert.Equal(t, "-2°C", view.Temperature)
}

func TestCurrentView_OtherUnits(t *testing.T) {
	s := &Snapshot{Temperature: 59.2, Description: "clear sky", WindSpeed: 3}

	assert.Equal(t, "59°F", CurrentView(s, "imperial").Temperature)
	assert.Equal(t, "3 mph", CurrentView(s, "imperial").WindSpeed)
	assert.Equal(t, "59K", CurrentView(s, "standard").Temperature)
	assert.Equal(t, "59°C", CurrentView(s, "unknown").Temperature)
}

func TestForecastView(t *testing.T) {
	days := []DailyForecast{
		{Day: "Mon", Date: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), Description: "few clouds", Temperature: 17.4},
		{Day: "Tue", Date: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), Description: "rain", Temperature: 12.5},
	}

	views := ForecastView(days, "metric")

	require.Len(t, views, 2)
	assert.Equal(t, ports.ForecastDayView{Day: "Mon", Date: "2024-05-06", Description: "few clouds", Temperature: "17°C"}, views[0])
	assert.Equal(t, "13°C", views[1].Temperature)
}
