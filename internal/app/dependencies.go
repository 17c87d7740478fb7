package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"weathermap.app/internal/adapters/external"
	"weathermap.app/internal/adapters/infrastructure"
	"weathermap.app/internal/adapters/realtime"
	"weathermap.app/internal/config"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/logger"
)

// DependencyContainer builds the adapters behind every port
type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	hub     *realtime.Hub
	metrics *infrastructure.PrometheusMetricsCollector
	// cacheType is the backend actually in use
	cacheType config.CacheType
	closers   []io.Closer
}

// DependencyOptions overrides parts of the default wiring
type DependencyOptions struct {
	// LogWriter receives console logs; defaults to stderr
	LogWriter io.Writer
	// HTTPClient is shared by every upstream adapter
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	appLogger, err := c.initializeLogger(opts.LogWriter)
	if err != nil {
		return err
	}

	configProvider, err := infrastructure.NewConfigProviderAdapter(c.config)
	if err != nil {
		return fmt.Errorf("create config provider: %w", err)
	}

	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	// Upstream request logging can be switched off; metrics are always recorded
	var upstreamLogger ports.Logger = infrastructure.NopLogger{}
	if c.config.Weather.EnableLogging {
		upstreamLogger = appLogger
	}

	weatherCfg := c.config.Weather
	provider := external.NewWeatherProviderLoggingDecorator(
		external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
			APIKey:  weatherCfg.APIKey,
			BaseURL: weatherCfg.DataBaseURL,
			Units:   weatherCfg.Units,
			Timeout: weatherCfg.RequestTimeout(),
			Client:  opts.HTTPClient,
			Logger:  appLogger,
		}),
		upstreamLogger,
		c.metrics,
	)

	geocoder := external.NewGeocoderLoggingDecorator(
		external.NewOpenWeatherMapGeocoder(external.OpenWeatherMapGeocoderParams{
			APIKey:  weatherCfg.APIKey,
			BaseURL: weatherCfg.GeoBaseURL,
			Timeout: weatherCfg.RequestTimeout(),
			Client:  opts.HTTPClient,
			Logger:  appLogger,
		}),
		upstreamLogger,
		c.metrics,
	)

	tiles := external.NewTileSourceMetricsDecorator(
		external.NewOpenWeatherMapTileSource(external.OpenWeatherMapTileSourceParams{
			APIKey:  weatherCfg.APIKey,
			BaseURL: weatherCfg.TileBaseURL,
			Timeout: weatherCfg.RequestTimeout(),
			Client:  opts.HTTPClient,
			Logger:  appLogger,
		}),
		upstreamLogger,
		c.metrics,
	)

	// A disabled cache never dials Redis
	cacheCfg := c.config.Cache
	if !weatherCfg.EnableCache {
		cacheCfg.Type = config.CacheTypeMemory
	}
	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&cacheCfg)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	cacheMetrics, _ := cacheProvider.(ports.CacheMetrics)
	c.cacheType = cacheCfg.Type

	appLogger.Info("Cache provider initialized",
		ports.F("type", cacheCfg.Type.String()),
		ports.F("enabled", weatherCfg.EnableCache))

	c.hub = realtime.NewHub(appLogger)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		WeatherCache:    external.NewWeatherCacheAdapter(cacheProvider),
		Geocoder:        geocoder,
		TileSource:      tiles,

		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		Renderer: realtime.NewRenderer(c.hub),

		ConfigProvider: configProvider,
		Logger:         appLogger,
		Metrics:        c.metrics,
	}

	appLogger.Debug("Ports initialized")
	return nil
}

// initializeLogger installs the tint console handler as the slog default and
// adds the JSON file logger when LOG_FILE_PATH is set
func (c *DependencyContainer) initializeLogger(w io.Writer) (ports.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	console := logger.New(w, logger.ParseLevel(c.config.Logging.Level))
	slog.SetDefault(console)

	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(console)
	if c.config.Logging.FilePath == "" {
		return appLogger, nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath)
	if err != nil {
		slog.Warn("Failed to create file logger, logging to console only", "error", err)
		return appLogger, nil
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", c.config.Logging.FilePath)

	return infrastructure.MultiLogger{appLogger, fileLogger}, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Hub returns the render stream hub
func (c *DependencyContainer) Hub() *realtime.Hub {
	return c.hub
}

// CacheType returns the cache backend in use
func (c *DependencyContainer) CacheType() config.CacheType {
	return c.cacheType
}

// Metrics returns the Prometheus collector backing the MetricsCollector port
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes the cache connection and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
