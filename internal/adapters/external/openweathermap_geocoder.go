package external

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weathermap.app/internal/ports"
)

const defaultGeoBaseURL = "https://api.openweathermap.org/geo/1.0"

// OpenWeatherMapGeocoder implements Geocoder port with the direct geocoding API
type OpenWeatherMapGeocoder struct {
	apiKey  string
	baseURL string
	http    upstream
}

type OpenWeatherMapGeocoderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmPlace struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

func NewOpenWeatherMapGeocoder(params OpenWeatherMapGeocoderParams) *OpenWeatherMapGeocoder {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultGeoBaseURL
	}

	return &OpenWeatherMapGeocoder{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: upstream{
			service: "OpenWeatherMap geocoding",
			client:  newHTTPClient(params.Client, params.Timeout),
			logger:  params.Logger,
		},
	}
}

// Search returns up to limit places matching query, best match first
func (g *OpenWeatherMapGeocoder) Search(ctx context.Context, query string, limit int) ([]ports.Place, error) {
	if limit < 1 {
		limit = 1
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("appid", g.apiKey)

	var results []owmPlace
	if err := g.http.getJSON(ctx, g.baseURL+"/direct?"+q.Encode(), &results); err != nil {
		return nil, err
	}

	places := make([]ports.Place, 0, len(results))
	for _, r := range results {
		places = append(places, ports.Place{
			Name:        r.Name,
			Country:     r.Country,
			State:       r.State,
			Coordinates: ports.Coordinates{Latitude: r.Lat, Longitude: r.Lon},
		})
	}
	return places, nil
}
