package viewer

import (
	"sync"

	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/ports"
)

const overlayAttribution = "Weather data © OpenWeatherMap"

// TileURLFunc builds the {z}/{x}/{y} template the widget loads overlay tiles from
type TileURLFunc func(spec layers.Spec) string

// UpstreamTiles points the widget straight at the tile server
func UpstreamTiles(baseURL, apiKey string) TileURLFunc {
	return func(spec layers.Spec) string {
		return spec.TileTemplate(baseURL, apiKey)
	}
}

// ProxiedTiles routes overlay tiles through the local tile proxy
func ProxiedTiles(prefix string) TileURLFunc {
	return func(spec layers.Spec) string {
		return prefix + "/" + spec.Layer.String() + "/{z}/{x}/{y}.png"
	}
}

type MapOptions struct {
	Center          ports.Coordinates
	Zoom            int
	BaseTileURL     string
	BaseAttribution string
	OverlayOpacity  float64
	TileURL         TileURLFunc
}

// MapController owns the map widget state: its center, the base layer and the
// weather overlay. There is never more than one overlay.
type MapController struct {
	mu       sync.RWMutex
	opts     MapOptions
	center   ports.Coordinates
	overlays []ports.OverlayView
	active   layers.Layer
}

func NewMapController(opts MapOptions) *MapController {
	if opts.TileURL == nil {
		opts.TileURL = ProxiedTiles("/tiles")
	}
	return &MapController{
		opts:   opts,
		center: opts.Center,
		active: layers.Clouds,
	}
}

// SetView recenters the map; the zoom level stays fixed
func (m *MapController) SetView(center ports.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
}

// ReplaceOverlay removes the current overlay and adds the one for l
func (m *MapController) ReplaceOverlay(l layers.Layer) {
	spec := layers.Lookup(l)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.overlays = m.overlays[:0]
	m.overlays = append(m.overlays, ports.OverlayView{
		Layer:       spec.Layer.String(),
		TileURL:     m.opts.TileURL(spec),
		Opacity:     m.opts.OverlayOpacity,
		Attribution: overlayAttribution,
	})
	m.active = spec.Layer
}

// OverlayCount reports how many overlays are on the map
func (m *MapController) OverlayCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.overlays)
}

func (m *MapController) Center() ports.Coordinates {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.center
}

// View returns the map widget state. Exactly one toggle is active.
func (m *MapController) View() ports.MapView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	view := ports.MapView{
		Center:          m.center,
		Zoom:            m.opts.Zoom,
		BaseTileURL:     m.opts.BaseTileURL,
		BaseAttribution: m.opts.BaseAttribution,
		Toggles:         toggles(m.active),
	}
	if len(m.overlays) > 0 {
		overlay := m.overlays[len(m.overlays)-1]
		view.Overlay = &overlay
	}
	return view
}

// SetActive marks l as the selected toggle without touching the overlay
func (m *MapController) SetActive(l layers.Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = layers.Lookup(l).Layer
}

func toggles(active layers.Layer) []ports.LayerToggleView {
	all := layers.All()
	views := make([]ports.LayerToggleView, 0, len(all))
	for _, l := range all {
		views = append(views, ports.LayerToggleView{Layer: l.String(), Active: l == active})
	}
	return views
}

// LegendView returns the legend for l
func LegendView(l layers.Layer) ports.LegendView {
	spec := layers.Lookup(l)
	return ports.LegendView{
		Layer:     spec.Layer.String(),
		Title:     spec.Legend.Title,
		Gradient:  spec.Legend.CSS(),
		LowLabel:  spec.Legend.LowLabel,
		HighLabel: spec.Legend.HighLabel,
	}
}
