package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"weathermap.app/internal/ports"
)

// Event types sent to the page; each names the region it replaces
const (
	EventCurrentWeather = "current"
	EventForecast       = "forecast"
	EventMap            = "map"
	EventLegend         = "legend"
	EventAlert          = "alert"
)

// replayOrder is the order retained regions are replayed to a new page
var replayOrder = []string{EventMap, EventLegend, EventCurrentWeather, EventForecast}

// Event is the JSON frame written to the websocket
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Renderer implements the Renderer port by broadcasting events through a Hub.
// Alerts are delivered to connected pages only and never replayed.
type Renderer struct {
	hub *Hub
}

func NewRenderer(hub *Hub) *Renderer {
	return &Renderer{hub: hub}
}

func (r *Renderer) RenderCurrentWeather(ctx context.Context, view ports.CurrentWeatherView) error {
	return r.emit(ctx, EventCurrentWeather, view, true)
}

func (r *Renderer) RenderForecast(ctx context.Context, days []ports.ForecastDayView) error {
	if days == nil {
		days = []ports.ForecastDayView{}
	}
	return r.emit(ctx, EventForecast, days, true)
}

func (r *Renderer) RenderMap(ctx context.Context, view ports.MapView) error {
	return r.emit(ctx, EventMap, view, true)
}

func (r *Renderer) RenderLegend(ctx context.Context, view ports.LegendView) error {
	return r.emit(ctx, EventLegend, view, true)
}

func (r *Renderer) Alert(ctx context.Context, alert ports.AlertView) error {
	return r.emit(ctx, EventAlert, alert, false)
}

func (r *Renderer) emit(ctx context.Context, region string, payload interface{}, retain bool) error {
	data, err := json.Marshal(Event{Type: region, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", region, err)
	}
	if err := r.hub.publish(ctx, message{region: region, data: data, retain: retain}); err != nil {
		return fmt.Errorf("publish %s event: %w", region, err)
	}
	return nil
}
