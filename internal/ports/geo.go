package ports

import (
	"context"
	"fmt"
)

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// Place is one geocoding candidate
type Place struct {
	Name        string
	Country     string
	State       string
	Coordinates Coordinates
}

// Geocoder resolves free text to ranked candidate places
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
}
