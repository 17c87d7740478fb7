package infrastructure

import (
	"context"

	"weathermap.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       []ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherAPIChecker   ports.HealthChecker
	CacheChecker        ports.HealthChecker
	RenderStreamChecker ports.HealthChecker
	ConfigProvider      ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker; nil checkers are skipped
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	s := &SystemHealthChecker{configProvider: config.ConfigProvider}
	for _, c := range []ports.HealthChecker{config.WeatherAPIChecker, config.CacheChecker, config.RenderStreamChecker} {
		if c != nil {
			s.checkers = append(s.checkers, c)
		}
	}
	return s
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
	}

	if s.configProvider != nil {
		mapCfg := s.configProvider.GetMapConfig()
		weatherCfg := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"appBaseURL":   s.configProvider.GetAppConfig().BaseURL,
				"defaultLayer": mapCfg.DefaultLayer,
				"units":        weatherCfg.Units,
				"cacheEnabled": weatherCfg.EnableCache,
			},
		}
	}

	return results
}

// Healthy reports whether no component is unhealthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
