package external

import (
	"context"
	"io"
	"net/http"
	"time"

	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

const (
	defaultTileBaseURL = "https://tile.openweathermap.org/map"
	maxTileBytes       = 1 << 20
	maxZoom            = 22
)

// OpenWeatherMapTileSource fetches weather overlay tiles for the tile proxy
type OpenWeatherMapTileSource struct {
	apiKey  string
	baseURL string
	http    upstream
}

type OpenWeatherMapTileSourceParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

func NewOpenWeatherMapTileSource(params OpenWeatherMapTileSourceParams) *OpenWeatherMapTileSource {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultTileBaseURL
	}

	return &OpenWeatherMapTileSource{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		http: upstream{
			service: "OpenWeatherMap tiles",
			client:  newHTTPClient(params.Client, params.Timeout),
			logger:  params.Logger,
		},
	}
}

// FetchTile downloads one tile of layer; humidity is served from precipitation tiles
func (s *OpenWeatherMapTileSource) FetchTile(ctx context.Context, layer string, z, x, y int) (*ports.Tile, error) {
	l, err := layers.Parse(layer)
	if err != nil {
		return nil, err
	}
	if z < 0 || z > maxZoom || x < 0 || y < 0 || x >= 1<<z || y >= 1<<z {
		return nil, errors.NewValidationError("tile coordinates out of range")
	}

	body, err := s.http.get(ctx, layers.Lookup(l).TileURL(s.baseURL, s.apiKey, z, x, y))
	if err != nil {
		return nil, err
	}
	defer s.http.close(body)

	data, err := io.ReadAll(io.LimitReader(body, maxTileBytes))
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read tile", err)
	}

	return &ports.Tile{Data: data, ContentType: http.DetectContentType(data)}, nil
}
