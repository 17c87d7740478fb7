package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathermap.app/internal/adapters/api"
	"weathermap.app/internal/adapters/infrastructure"
	"weathermap.app/internal/config"
	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/core/location"
	"weathermap.app/internal/core/viewer"
	"weathermap.app/internal/core/weather"
	"weathermap.app/internal/ports"
)

// tilePrefix is where the API adapter mounts the overlay tile proxy
const tilePrefix = "/tiles"

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase  *weather.UseCase
	locationUseCase *location.UseCase
	controller      *viewer.Controller

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports     *ports.ApplicationPorts
	cancelHub context.CancelFunc
	hubDone   chan struct{}
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg, DependencyOptions{})
}

// NewApplicationWithConfig wires an application around an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config, opts DependencyOptions) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.WeatherCache,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Geocoder: a.ports.Geocoder,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	mapCfg := a.ports.ConfigProvider.GetMapConfig()
	tileURL := viewer.ProxiedTiles(tilePrefix)
	if !mapCfg.ProxyTiles {
		tileURL = viewer.UpstreamTiles(mapCfg.TileBaseURL, a.config.Weather.APIKey)
	}

	initialLayer, err := layers.Parse(mapCfg.DefaultLayer)
	if err != nil {
		return fmt.Errorf("parse default layer: %w", err)
	}

	controller, err := viewer.NewController(viewer.ControllerDependencies{
		Locations: a.locationUseCase,
		Weather:   a.weatherUseCase,
		Map: viewer.NewMapController(viewer.MapOptions{
			Center:          mapCfg.DefaultCenter,
			Zoom:            mapCfg.Zoom,
			BaseTileURL:     mapCfg.BaseTileURL,
			BaseAttribution: mapCfg.BaseAttribution,
			OverlayOpacity:  mapCfg.OverlayOpacity,
			TileURL:         tileURL,
		}),
		Renderer:     a.ports.Renderer,
		Logger:       a.ports.Logger,
		Metrics:      a.ports.Metrics,
		InitialLayer: initialLayer,
	})
	if err != nil {
		return fmt.Errorf("create viewer controller: %w", err)
	}
	a.controller = controller

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	weatherCfg := a.ports.ConfigProvider.GetWeatherConfig()
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider),
		CacheChecker: infrastructure.NewCacheHealthChecker(infrastructure.CacheHealthCheckerConfig{
			Cache:     a.ports.CacheProvider,
			Stats:     a.ports.CacheMetrics,
			CacheType: a.deps.CacheType().String(),
			Enabled:   weatherCfg.EnableCache,
		}),
		RenderStreamChecker: infrastructure.NewRenderStreamHealthChecker(a.deps.Hub()),
		ConfigProvider:      a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Controller:          a.controller,
		TileSource:          a.ports.TileSource,
		RenderStream:        a.deps.Hub(),
		SystemHealthChecker: systemHealthChecker,
		MetricsHandler:      a.deps.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// StartBackground runs the render hub and paints the initial view. It
// returns once the hub is accepting events; the initial weather load
// continues in the background.
func (a *Application) StartBackground(ctx context.Context) {
	hubCtx, cancel := context.WithCancel(context.Background())
	a.cancelHub = cancel
	a.hubDone = make(chan struct{})

	go func() {
		defer close(a.hubDone)
		a.deps.Hub().Run(hubCtx)
	}()

	go func() {
		if err := a.controller.Load(ctx); err != nil {
			slog.Warn("Initial load failed", "error", err)
		}
	}()
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.StartBackground(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port, "url", a.config.AppBaseURL)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.controller.Close()

	if a.cancelHub != nil {
		a.cancelHub()
		select {
		case <-a.hubDone:
		case <-ctx.Done():
			slog.Warn("Render hub did not stop in time")
		}
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetController returns the viewer controller for testing
func (a *Application) GetController() *viewer.Controller {
	return a.controller
}
