package weather

import (
	"fmt"
	"strconv"
	"time"

	"weathermap.app/internal/ports"
)

type unitSymbols struct {
	temperature string
	speed       string
}

var symbolsByUnits = map[string]unitSymbols{
	"metric":   {temperature: "°C", speed: "m/s"},
	"imperial": {temperature: "°F", speed: "mph"},
	"standard": {temperature: "K", speed: "m/s"},
}

func symbolsFor(units string) unitSymbols {
	if s, ok := symbolsByUnits[units]; ok {
		return s
	}
	return symbolsByUnits["metric"]
}

// CurrentView formats a snapshot for the current weather panel
func CurrentView(s *Snapshot, units string) ports.CurrentWeatherView {
	sym := symbolsFor(units)
	return ports.CurrentWeatherView{
		Location:    s.LocationLabel(),
		Temperature: formatTemperature(s.Temperature, sym),
		Description: s.Description,
		Humidity:    formatNumber(s.Humidity) + "%",
		AreaWetness: strconv.Itoa(s.AreaWetness) + "%",
		CloudCover:  formatNumber(s.CloudCover) + "%",
		WindSpeed:   formatNumber(s.WindSpeed) + " " + sym.speed,
	}
}

// ForecastView formats daily entries for the forecast list
func ForecastView(days []DailyForecast, units string) []ports.ForecastDayView {
	sym := symbolsFor(units)
	views := make([]ports.ForecastDayView, 0, len(days))
	for _, d := range days {
		views = append(views, ports.ForecastDayView{
			Day:         d.Day,
			Date:        d.Date.Format(time.DateOnly),
			Description: d.Description,
			Temperature: formatTemperature(d.Temperature, sym),
		})
	}
	return views
}

func formatTemperature(t float64, sym unitSymbols) string {
	return fmt.Sprintf("%d%s", int(roundHalfUp(t)), sym.temperature)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
