package external

import (
	"context"
	"encoding/json"
	"time"

	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

// WeatherCacheAdapter bridges generic CacheProvider to weather-specific WeatherCache
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider) ports.WeatherCache {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

func (w *WeatherCacheAdapter) GetCurrent(ctx context.Context, key string) (*ports.CurrentConditions, error) {
	var conditions ports.CurrentConditions
	if err := w.get(ctx, key, &conditions); err != nil {
		return nil, err
	}
	return &conditions, nil
}

func (w *WeatherCacheAdapter) SetCurrent(ctx context.Context, key string, conditions *ports.CurrentConditions, ttl time.Duration) error {
	if conditions == nil {
		return errors.NewValidationError("current conditions cannot be nil")
	}
	return w.set(ctx, key, conditions, ttl)
}

func (w *WeatherCacheAdapter) GetForecast(ctx context.Context, key string) (*ports.ForecastData, error) {
	var forecast ports.ForecastData
	if err := w.get(ctx, key, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (w *WeatherCacheAdapter) SetForecast(ctx context.Context, key string, forecast *ports.ForecastData, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}
	return w.set(ctx, key, forecast, ttl)
}

func (w *WeatherCacheAdapter) get(ctx context.Context, key string, target interface{}) error {
	data, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errors.NewExternalAPIError("failed to deserialize cached weather", err)
	}
	return nil
}

func (w *WeatherCacheAdapter) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize weather for cache", err)
	}
	return w.cacheProvider.Set(ctx, key, data, ttl)
}
