package weather

import (
	"context"
	"fmt"
	"time"

	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

const (
	kindCurrent  = "current"
	kindForecast = "forecast"
)

type UseCase struct {
	provider ports.WeatherProvider
	cache    ports.WeatherCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Cache           ports.WeatherCache
	Config          ports.ConfigProvider
	Logger          ports.Logger
	Metrics         ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		provider: deps.WeatherProvider,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Units returns the unit system requested from the upstream
func (uc *UseCase) Units() string {
	return uc.config.GetWeatherConfig().Units
}

// GetCurrentWeather retrieves current conditions for coords and derives the snapshot
func (uc *UseCase) GetCurrentWeather(ctx context.Context, coords ports.Coordinates) (*Snapshot, error) {
	cfg := uc.config.GetWeatherConfig()
	key := cacheKey(kindCurrent, coords, cfg.Units)

	if cfg.EnableCache {
		if cached, err := uc.cache.GetCurrent(ctx, key); err == nil && cached != nil {
			uc.metrics.RecordCacheHit(kindCurrent)
			uc.logger.Debug("Current weather found in cache", ports.F("coordinates", coords.String()))
			return uc.snapshot(cached)
		}
		uc.metrics.RecordCacheMiss(kindCurrent)
	}

	conditions, err := uc.provider.GetCurrentWeather(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("get current weather at %s: %w", coords, err)
	}

	if cfg.EnableCache {
		if cacheErr := uc.cache.SetCurrent(ctx, key, conditions, cfg.CacheTTL); cacheErr != nil {
			uc.logger.Warn("Failed to cache current weather",
				ports.F("coordinates", coords.String()),
				ports.F("error", cacheErr))
		}
	}

	return uc.snapshot(conditions)
}

func (uc *UseCase) snapshot(conditions *ports.CurrentConditions) (*Snapshot, error) {
	s := NewSnapshot(conditions)
	if err := s.IsValid(); err != nil {
		return nil, errors.NewExternalAPIError("invalid current weather from provider", err)
	}
	return s, nil
}

// GetForecast retrieves the 3-hour forecast for coords and reduces it to daily entries
func (uc *UseCase) GetForecast(ctx context.Context, coords ports.Coordinates) ([]DailyForecast, error) {
	cfg := uc.config.GetWeatherConfig()
	key := cacheKey(kindForecast, coords, cfg.Units)

	var forecast *ports.ForecastData
	if cfg.EnableCache {
		if cached, err := uc.cache.GetForecast(ctx, key); err == nil && cached != nil {
			uc.metrics.RecordCacheHit(kindForecast)
			forecast = cached
		} else {
			uc.metrics.RecordCacheMiss(kindForecast)
		}
	}

	if forecast == nil {
		fetched, err := uc.provider.GetForecast(ctx, coords)
		if err != nil {
			return nil, fmt.Errorf("get forecast at %s: %w", coords, err)
		}
		forecast = fetched

		if cfg.EnableCache {
			if cacheErr := uc.cache.SetForecast(ctx, key, forecast, cfg.CacheTTL); cacheErr != nil {
				uc.logger.Warn("Failed to cache forecast",
					ports.F("coordinates", coords.String()),
					ports.F("error", cacheErr))
			}
		}
	}

	loc := cfg.ForecastLocation
	if loc == nil {
		loc = time.FixedZone("", forecast.UTCOffsetSeconds)
	}

	days := GroupDaily(forecast.Slots, loc, cfg.ForecastDays)
	uc.logger.Debug("Forecast grouped into days",
		ports.F("coordinates", coords.String()),
		ports.F("slots", len(forecast.Slots)),
		ports.F("days", len(days)))
	return days, nil
}

// cacheKey rounds to two decimals (about 1km) so nearby clicks share entries
func cacheKey(kind string, coords ports.Coordinates, units string) string {
	return fmt.Sprintf("weather:%s:%.2f:%.2f:%s", kind, coords.Latitude, coords.Longitude, units)
}
