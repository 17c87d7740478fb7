package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/ports"
)

func TestMapController_InitialView(t *testing.T) {
	m := NewMapController(MapOptions{Center: newYork, Zoom: 10, OverlayOpacity: 0.7})

	view := m.View()

	assert.Equal(t, newYork, view.Center)
	assert.Equal(t, 10, view.Zoom)
	assert.Nil(t, view.Overlay)
	require.Len(t, view.Toggles, 3)
	assert.True(t, view.Toggles[0].Active)
	assert.Equal(t, "clouds", view.Toggles[0].Layer)
}

func TestMapController_ReplaceOverlayNeverStacks(t *testing.T) {
	m := NewMapController(MapOptions{Center: newYork, Zoom: 10, OverlayOpacity: 0.7})

	for i := 0; i < 10; i++ {
		m.ReplaceOverlay(layers.All()[i%3])
		assert.Equal(t, 1, m.OverlayCount())
	}

	assert.Equal(t, "clouds", m.View().Overlay.Layer)
}

func TestMapController_SetViewKeepsZoom(t *testing.T) {
	m := NewMapController(MapOptions{Center: newYork, Zoom: 10})

	m.SetView(ports.Coordinates{Latitude: 35.68, Longitude: 139.69})

	assert.Equal(t, 35.68, m.Center().Latitude)
	assert.Equal(t, 10, m.View().Zoom)
}

func TestTileURLFuncs(t *testing.T) {
	humidity := layers.Lookup(layers.Humidity)

	assert.Equal(t, "/tiles/humidity/{z}/{x}/{y}.png", ProxiedTiles("/tiles")(humidity))
	assert.Equal(t,
		"https://tile.openweathermap.org/map/precipitation_new/{z}/{x}/{y}.png?appid=k",
		UpstreamTiles("https://tile.openweathermap.org/map/", "k")(humidity))
}

func TestMapController_DefaultsToProxiedTiles(t *testing.T) {
	m := NewMapController(MapOptions{OverlayOpacity: 0.7})

	m.ReplaceOverlay(layers.Precipitation)

	assert.Equal(t, "/tiles/precipitation/{z}/{x}/{y}.png", m.View().Overlay.TileURL)
}

func TestLegendView(t *testing.T) {
	legend := LegendView(layers.Humidity)

	assert.Equal(t, "Humidity", legend.Title)
	assert.Equal(t, "Low", legend.LowLabel)
	assert.Equal(t, "High", legend.HighLabel)
	assert.Contains(t, legend.Gradient, "#253494")
}
