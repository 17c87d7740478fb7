package infrastructure

import (
	"time"

	"weathermap.app/internal/config"
	"weathermap.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config           *config.Config
	forecastLocation *time.Location
}

// NewConfigProviderAdapter creates a new config provider adapter. The forecast
// timezone is resolved once so a bad FORECAST_TIMEZONE fails at startup.
func NewConfigProviderAdapter(cfg *config.Config) (*ConfigProviderAdapter, error) {
	loc, err := cfg.Weather.Location()
	if err != nil {
		return nil, err
	}

	return &ConfigProviderAdapter{
		config:           cfg,
		forecastLocation: loc,
	}, nil
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:      c.config.Weather.EnableCache,
		CacheTTL:         c.config.Weather.CacheTTL(),
		Units:            c.config.Weather.Units,
		ForecastDays:     c.config.Weather.ForecastDays,
		ForecastLocation: c.forecastLocation,
	}
}

// GetMapConfig returns map widget configuration
func (c *ConfigProviderAdapter) GetMapConfig() ports.MapConfig {
	m := c.config.Map
	return ports.MapConfig{
		DefaultCenter: ports.Coordinates{
			Latitude:  m.DefaultLatitude,
			Longitude: m.DefaultLongitude,
		},
		Zoom:            m.Zoom,
		BaseTileURL:     m.BaseTileURL,
		BaseAttribution: m.BaseAttribution,
		OverlayOpacity:  m.OverlayOpacity,
		DefaultLayer:    m.DefaultLayer,
		TileBaseURL:     c.config.Weather.TileBaseURL,
		ProxyTiles:      m.ProxyTiles,
	}
}
