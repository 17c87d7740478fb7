// Package layers holds the catalogue of weather overlay layers: the upstream tile
// path each one is drawn from and the legend shown while it is active.
package layers

import (
	"fmt"
	"net/url"
	"strings"

	"weathermap.app/pkg/errors"
)

// Layer names one selectable weather overlay
type Layer string

const (
	Clouds        Layer = "clouds"
	Precipitation Layer = "precipitation"
	Humidity      Layer = "humidity"
)

// All returns the layers in toggle order
func All() []Layer {
	return []Layer{Clouds, Precipitation, Humidity}
}

// Parse converts a user-supplied name into a Layer
func Parse(name string) (Layer, error) {
	l := Layer(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := catalogue[l]; !ok {
		return "", errors.NewValidationError(fmt.Sprintf("unknown layer %q", name))
	}
	return l, nil
}

// IsValid reports whether l is part of the catalogue
func (l Layer) IsValid() bool {
	_, ok := catalogue[l]
	return ok
}

func (l Layer) String() string {
	return string(l)
}

// Legend describes the colour scale drawn next to the map
type Legend struct {
	Title     string   `json:"title"`
	Gradient  []string `json:"gradient"`
	LowLabel  string   `json:"lowLabel"`
	HighLabel string   `json:"highLabel"`
}

// CSS renders the gradient as a left-to-right CSS background
func (g Legend) CSS() string {
	return "linear-gradient(to right, " + strings.Join(g.Gradient, ", ") + ")"
}

// Spec is everything the map needs to draw one layer
type Spec struct {
	Layer    Layer
	TilePath string
	Legend   Legend
	// Proxy marks a layer drawn from another variable's tiles
	Proxy bool
}

// OpenWeatherMap has no humidity tiles; humidity reuses precipitation_new.
var catalogue = map[Layer]Spec{
	Clouds: {
		Layer:    Clouds,
		TilePath: "clouds_new",
		Legend: Legend{
			Title:     "Cloud Cover",
			Gradient:  []string{"#ffffff", "#cccccc", "#888888", "#444444"},
			LowLabel:  "Clear",
			HighLabel: "Overcast",
		},
	},
	Precipitation: {
		Layer:    Precipitation,
		TilePath: "precipitation_new",
		Legend: Legend{
			Title:     "Precipitation",
			Gradient:  []string{"#ffffff", "#87ceeb", "#1e90ff", "#0000ff", "#000080"},
			LowLabel:  "None",
			HighLabel: "Heavy",
		},
	},
	Humidity: {
		Layer:    Humidity,
		TilePath: "precipitation_new",
		Legend: Legend{
			Title:     "Humidity",
			Gradient:  []string{"#ffffcc", "#a1dab4", "#41b6c4", "#2c7fb8", "#253494"},
			LowLabel:  "Low",
			HighLabel: "High",
		},
		Proxy: true,
	},
}

// Lookup returns the spec of a layer; unknown layers fall back to clouds
func Lookup(l Layer) Spec {
	if spec, ok := catalogue[l]; ok {
		return spec
	}
	return catalogue[Clouds]
}

// TileTemplate returns the upstream {z}/{x}/{y} URL template for the layer
func (s Spec) TileTemplate(baseURL, apiKey string) string {
	return fmt.Sprintf("%s/%s/{z}/{x}/{y}.png?appid=%s",
		strings.TrimRight(baseURL, "/"), s.TilePath, url.QueryEscape(apiKey))
}

// TileURL returns the upstream URL of a single tile
func (s Spec) TileURL(baseURL, apiKey string, z, x, y int) string {
	return fmt.Sprintf("%s/%s/%d/%d/%d.png?appid=%s",
		strings.TrimRight(baseURL, "/"), s.TilePath, z, x, y, url.QueryEscape(apiKey))
}
