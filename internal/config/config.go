package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weathermap.app/internal/core/layers"
	"weathermap.app/pkg/errors"
	"weathermap.app/pkg/validation"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
	maxZoom            = 19
	maxForecastDays    = 5

	// ForecastTimezoneLocation groups forecast days by the timezone reported for the place itself
	ForecastTimezoneLocation = "location"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig  `split_words:"true"`
	Weather    WeatherConfig `split_words:"true"`
	Map        MapConfig     `split_words:"true"`
	Cache      CacheConfig   `split_words:"true"`
	Logging    LoggingConfig `split_words:"true"`
	AppBaseURL string        `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey                string `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	DataBaseURL           string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoBaseURL            string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	TileBaseURL           string `envconfig:"OPENWEATHERMAP_TILE_BASE_URL" default:"https://tile.openweathermap.org/map"`
	Units                 string `envconfig:"WEATHER_UNITS" default:"metric"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT" default:"10"`
	EnableCache           bool   `envconfig:"WEATHER_ENABLE_CACHE" default:"false"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	CacheTTLMinutes       int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	ForecastDays          int    `envconfig:"FORECAST_DAYS" default:"5"`
	ForecastTimezone      string `envconfig:"FORECAST_TIMEZONE" default:"Local"`
}

// RequestTimeout returns the upstream HTTP client timeout
func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the response cache TTL
func (w WeatherConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLMinutes) * time.Minute
}

// Location resolves the timezone used to group forecast entries into days.
// A nil location means the place's own UTC offset is used.
func (w WeatherConfig) Location() (*time.Location, error) {
	if strings.EqualFold(w.ForecastTimezone, ForecastTimezoneLocation) {
		return nil, nil
	}
	loc, err := time.LoadLocation(w.ForecastTimezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("unknown FORECAST_TIMEZONE %q", w.ForecastTimezone), err)
	}
	return loc, nil
}

type MapConfig struct {
	DefaultLatitude  float64 `envconfig:"MAP_DEFAULT_LAT" default:"40.7128"`
	DefaultLongitude float64 `envconfig:"MAP_DEFAULT_LON" default:"-74.0060"`
	Zoom             int     `envconfig:"MAP_ZOOM" default:"10"`
	BaseTileURL      string  `envconfig:"MAP_BASE_TILE_URL" default:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"`
	BaseAttribution  string  `envconfig:"MAP_BASE_ATTRIBUTION" default:"© OpenStreetMap contributors"`
	OverlayOpacity   float64 `envconfig:"MAP_OVERLAY_OPACITY" default:"0.7"`
	DefaultLayer     string  `envconfig:"MAP_DEFAULT_LAYER" default:"clouds"`
	ProxyTiles       bool    `envconfig:"MAP_PROXY_TILES" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weathermap:"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Map.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := validateHTTPURL("APP_URL", c.AppBaseURL); err != nil {
		return err
	}
	return nil
}

func validateHTTPURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	if err := validateHTTPURL("OPENWEATHERMAP_API_BASE_URL", w.DataBaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("OPENWEATHERMAP_GEO_BASE_URL", w.GeoBaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("OPENWEATHERMAP_TILE_BASE_URL", w.TileBaseURL); err != nil {
		return err
	}

	validUnits := []string{"metric", "imperial", "standard"}
	unitsOK := false
	for _, u := range validUnits {
		if w.Units == u {
			unitsOK = true
			break
		}
	}
	if !unitsOK {
		return errors.NewConfigurationError(
			fmt.Sprintf("WEATHER_UNITS must be one of: %s", strings.Join(validUnits, ", ")), nil)
	}

	if w.RequestTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT must be at least 1 second", nil)
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.ForecastDays < 1 || w.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("FORECAST_DAYS must be between 1 and 5", nil)
	}
	if _, err := w.Location(); err != nil {
		return err
	}
	return nil
}

func (m *MapConfig) Validate() error {
	if !validation.IsValidLatitude(m.DefaultLatitude) {
		return errors.NewConfigurationError("MAP_DEFAULT_LAT must be between -90 and 90", nil)
	}
	if !validation.IsValidLongitude(m.DefaultLongitude) {
		return errors.NewConfigurationError("MAP_DEFAULT_LON must be between -180 and 180", nil)
	}
	if m.Zoom < 0 || m.Zoom > maxZoom {
		return errors.NewConfigurationError("MAP_ZOOM must be between 0 and 19", nil)
	}
	if m.OverlayOpacity <= 0 || m.OverlayOpacity > 1 {
		return errors.NewConfigurationError("MAP_OVERLAY_OPACITY must be in (0, 1]", nil)
	}
	if !strings.Contains(m.BaseTileURL, "{z}") || !strings.Contains(m.BaseTileURL, "{x}") || !strings.Contains(m.BaseTileURL, "{y}") {
		return errors.NewConfigurationError("MAP_BASE_TILE_URL must contain {z}, {x} and {y}", nil)
	}
	if _, err := layers.Parse(m.DefaultLayer); err != nil {
		return errors.NewConfigurationError("MAP_DEFAULT_LAYER is not a known layer", err)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
