package ports

import (
	"context"
	"time"
)

// CurrentConditions represents current weather as returned by the upstream
type CurrentConditions struct {
	Place       string
	Country     string
	Temperature float64
	Description string
	Humidity    float64
	// PrecipitationLastHour is nil when the upstream reports no rain volume
	PrecipitationLastHour *float64
	CloudCover            float64
	WindSpeed             float64
	Coordinates           Coordinates
	Timestamp             time.Time
}

// ForecastSlot is one 3-hour forecast entry
type ForecastSlot struct {
	Time        time.Time
	Description string
	Temperature float64
}

// ForecastData is the time-ordered list of forecast slots for a place
type ForecastData struct {
	Place            string
	UTCOffsetSeconds int
	Slots            []ForecastSlot
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, coords Coordinates) (*CurrentConditions, error)
	GetForecast(ctx context.Context, coords Coordinates) (*ForecastData, error)
	GetProviderName() string
}

// WeatherCache defines the contract for caching weather responses
type WeatherCache interface {
	GetCurrent(ctx context.Context, key string) (*CurrentConditions, error)
	SetCurrent(ctx context.Context, key string, conditions *CurrentConditions, ttl time.Duration) error
	GetForecast(ctx context.Context, key string) (*ForecastData, error)
	SetForecast(ctx context.Context, key string, forecast *ForecastData, ttl time.Duration) error
}
