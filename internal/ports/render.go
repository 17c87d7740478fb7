package ports

import "context"

// CurrentWeatherView is the formatted content of the current weather panel
type CurrentWeatherView struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Humidity    string `json:"humidity"`
	AreaWetness string `json:"areaWetness"`
	CloudCover  string `json:"cloudCover"`
	WindSpeed   string `json:"windSpeed"`
}

// ForecastDayView is one item of the forecast list
type ForecastDayView struct {
	Day         string `json:"day"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Temperature string `json:"temperature"`
}

// OverlayView is the single weather tile layer drawn over the base map
type OverlayView struct {
	Layer       string  `json:"layer"`
	TileURL     string  `json:"tileUrl"`
	Opacity     float64 `json:"opacity"`
	Attribution string  `json:"attribution"`
}

// LayerToggleView is the state of one layer toggle button
type LayerToggleView struct {
	Layer  string `json:"layer"`
	Active bool   `json:"active"`
}

// MapView is the full state of the map widget
type MapView struct {
	Center          Coordinates       `json:"center"`
	Zoom            int               `json:"zoom"`
	BaseTileURL     string            `json:"baseTileUrl"`
	BaseAttribution string            `json:"baseAttribution"`
	Overlay         *OverlayView      `json:"overlay,omitempty"`
	Toggles         []LayerToggleView `json:"toggles"`
}

// LegendView is the legend of the active layer
type LegendView struct {
	Layer     string `json:"layer"`
	Title     string `json:"title"`
	Gradient  string `json:"gradient"`
	LowLabel  string `json:"lowLabel"`
	HighLabel string `json:"highLabel"`
}

// AlertView is a user-facing message
type AlertView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Renderer writes view models into the page. Every call replaces the previous
// content of its region.
type Renderer interface {
	RenderCurrentWeather(ctx context.Context, view CurrentWeatherView) error
	RenderForecast(ctx context.Context, days []ForecastDayView) error
	RenderMap(ctx context.Context, view MapView) error
	RenderLegend(ctx context.Context, view LegendView) error
	Alert(ctx context.Context, alert AlertView) error
}
