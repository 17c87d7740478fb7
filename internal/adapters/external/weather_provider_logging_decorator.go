package external

import (
	"context"
	"time"

	"weathermap.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
// and upstream call metrics
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, coords ports.Coordinates) (*ports.CurrentConditions, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", "weather"),
		ports.F("coordinates", coords.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	conditions, err := d.provider.GetCurrentWeather(ctx, coords)
	duration := time.Since(startTime)
	d.metrics.RecordUpstreamCall("weather", err == nil, duration)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("endpoint", "weather"),
			ports.F("coordinates", coords.String()),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", "weather"),
		ports.F("coordinates", coords.String()),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("place", conditions.Place),
		ports.F("temperature", conditions.Temperature),
		ports.F("humidity", conditions.Humidity),
		ports.F("description", conditions.Description))

	return conditions, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, coords ports.Coordinates) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", "forecast"),
		ports.F("coordinates", coords.String()),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, coords)
	duration := time.Since(startTime)
	d.metrics.RecordUpstreamCall("forecast", err == nil, duration)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("endpoint", "forecast"),
			ports.F("coordinates", coords.String()),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", "forecast"),
		ports.F("coordinates", coords.String()),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("slots", len(forecast.Slots)))

	return forecast, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// GeocoderLoggingDecorator decorates the geocoder with logging and metrics
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger, metrics ports.MetricsCollector) ports.Geocoder {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// Search wraps the geocoding call with structured logging
func (d *GeocoderLoggingDecorator) Search(ctx context.Context, query string, limit int) ([]ports.Place, error) {
	d.logger.Info("Geocoding request started",
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	places, err := d.geocoder.Search(ctx, query, limit)
	duration := time.Since(startTime)
	d.metrics.RecordUpstreamCall("geocode", err == nil, duration)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("results", len(places)))

	return places, nil
}

// TileSourceMetricsDecorator records tile fetches and logs failures only
type TileSourceMetricsDecorator struct {
	source  ports.TileSource
	logger  ports.Logger
	metrics ports.MetricsCollector
}

func NewTileSourceMetricsDecorator(source ports.TileSource, logger ports.Logger, metrics ports.MetricsCollector) ports.TileSource {
	return &TileSourceMetricsDecorator{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

func (d *TileSourceMetricsDecorator) FetchTile(ctx context.Context, layer string, z, x, y int) (*ports.Tile, error) {
	startTime := time.Now()
	tile, err := d.source.FetchTile(ctx, layer, z, x, y)
	d.metrics.RecordUpstreamCall("tile", err == nil, time.Since(startTime))

	if err != nil {
		d.logger.Warn("Tile request failed",
			ports.F("layer", layer),
			ports.F("tile", []int{z, x, y}),
			ports.F("error", err.Error()))
		return nil, err
	}
	return tile, nil
}
