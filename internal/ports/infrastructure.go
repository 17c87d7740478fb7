package ports

import (
	"time"
)

// WeatherConfig represents weather retrieval configuration
type WeatherConfig struct {
	EnableCache  bool
	CacheTTL     time.Duration
	Units        string
	ForecastDays int
	// ForecastLocation groups forecast days; nil means the place's own offset
	ForecastLocation *time.Location
}

// MapConfig represents map widget configuration
type MapConfig struct {
	DefaultCenter   Coordinates
	Zoom            int
	BaseTileURL     string
	BaseAttribution string
	OverlayOpacity  float64
	DefaultLayer    string
	TileBaseURL     string
	ProxyTiles      bool
}

// AppConfig represents application configuration
type AppConfig struct {
	BaseURL string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetMapConfig() MapConfig
	GetAppConfig() AppConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordUpstreamCall(endpoint string, success bool, duration time.Duration)
	RecordStaleResponse(kind string)
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
}
