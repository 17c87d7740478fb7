// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to viewer actions
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathermap.app/internal/core/location"
	"weathermap.app/internal/core/viewer"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	controller     ViewerController
	tiles          ports.TileSource
	stream         RenderStream
	health         ports.SystemHealthChecker
	metricsHandler http.Handler
}

// ViewerController is the application state the handlers drive
type ViewerController interface {
	State() viewer.State
	Search(ctx context.Context, query string) error
	ClickMap(ctx context.Context, coords ports.Coordinates) error
	UseDevicePosition(ctx context.Context, pos location.DevicePosition) error
	SelectLayer(ctx context.Context, name string) error
}

// RenderStream upgrades a request into a render event subscription
type RenderStream interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Controller          ViewerController
	TileSource          ports.TileSource
	RenderStream        RenderStream
	SystemHealthChecker ports.SystemHealthChecker
	MetricsHandler      http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	RegisterValidators()

	server := &HTTPServerAdapter{
		router:         gin.Default(),
		config:         opts.Config,
		controller:     opts.Controller,
		tiles:          opts.TileSource,
		stream:         opts.RenderStream,
		health:         opts.SystemHealthChecker,
		metricsHandler: opts.MetricsHandler,
	}

	if err := server.setupRoutes(); err != nil {
		return nil, err
	}
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("viewer controller is required")
	}
	if opts.TileSource == nil {
		return errors.NewValidationError("tile source is required")
	}
	if opts.RenderStream == nil {
		return errors.NewValidationError("render stream is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() error {
	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.GET("/layers", s.getLayers)
		api.POST("/search", s.search)
		api.POST("/location", s.selectLocation)
		api.POST("/geolocation", s.geolocation)
		api.POST("/layer", s.selectLayer)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/tiles/:layer/:z/:x/:y", s.getTile)
	s.router.GET("/ws", s.renderStream)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	return s.setupStaticFiles()
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
