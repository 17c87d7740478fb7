package infrastructure

import (
	"context"

	"weathermap.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// WeatherAPIHealthChecker reports whether a weather provider is wired
type WeatherAPIHealthChecker struct {
	weatherProvider ports.WeatherProvider
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(weatherProvider ports.WeatherProvider) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{weatherProvider: weatherProvider}
}

// Check does not call the upstream; every probe would spend API quota
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if w.weatherProvider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	status.Details["provider"] = w.weatherProvider.GetProviderName()
	return status
}

// pinger is implemented by cache backends that can verify connectivity
type pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker pings the response cache when the backend supports it
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	stats     ports.CacheMetrics
	cacheType string
	enabled   bool
}

// CacheHealthCheckerConfig holds the configuration for creating a cache health checker
type CacheHealthCheckerConfig struct {
	Cache     ports.CacheProvider
	Stats     ports.CacheMetrics
	CacheType string
	Enabled   bool
}

func NewCacheHealthChecker(cfg CacheHealthCheckerConfig) *CacheHealthChecker {
	return &CacheHealthChecker{
		cache:     cfg.Cache,
		stats:     cfg.Stats,
		cacheType: cfg.CacheType,
		enabled:   cfg.Enabled,
	}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if !c.enabled {
		status.Status = statusDisabled
		return status
	}

	if p, ok := c.cache.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	if c.stats != nil {
		stats := c.stats.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hit_ratio"] = stats.HitRatio
	}

	return status
}

// ClientCounter is implemented by the render stream hub
type ClientCounter interface {
	ClientCount() int
}

// RenderStreamHealthChecker reports the number of connected viewer pages
type RenderStreamHealthChecker struct {
	clients ClientCounter
}

func NewRenderStreamHealthChecker(clients ClientCounter) *RenderStreamHealthChecker {
	return &RenderStreamHealthChecker{clients: clients}
}

func (r *RenderStreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if r.clients == nil {
		return ports.HealthStatus{
			Component: "renderStream",
			Status:    statusUnhealthy,
			Error:     "render stream is not running",
		}
	}
	return ports.HealthStatus{
		Component: "renderStream",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"clients": r.clients.ClientCount(),
		},
	}
}
