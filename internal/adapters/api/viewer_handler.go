package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/core/location"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

// SearchRequest represents a free text location search
type SearchRequest struct {
	Query string `json:"query" form:"query" binding:"required"`
}

// LocationRequest represents a map click
type LocationRequest struct {
	Lat *float64 `json:"lat" form:"lat" binding:"required,latitude"`
	Lon *float64 `json:"lon" form:"lon" binding:"required,longitude"`
}

// GeolocationRequest is what the browser's geolocation API reported
type GeolocationRequest struct {
	Supported bool     `json:"supported" form:"supported"`
	Lat       *float64 `json:"lat" form:"lat" binding:"omitempty,latitude"`
	Lon       *float64 `json:"lon" form:"lon" binding:"omitempty,longitude"`
	Error     string   `json:"error" form:"error"`
}

// LayerRequest selects the active overlay
type LayerRequest struct {
	Layer string `json:"layer" form:"layer" binding:"required,layer"`
}

// LayerResponse is one entry of the layer catalogue
type LayerResponse struct {
	Layer    string        `json:"layer"`
	TilePath string        `json:"tilePath"`
	Proxy    bool          `json:"proxy"`
	Legend   layers.Legend `json:"legend"`
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller.State())
}

// getLayers handles GET /api/layers requests
func (s *HTTPServerAdapter) getLayers(c *gin.Context) {
	all := layers.All()
	response := make([]LayerResponse, 0, len(all))
	for _, l := range all {
		spec := layers.Lookup(l)
		response = append(response, LayerResponse{
			Layer:    spec.Layer.String(),
			TilePath: spec.TilePath,
			Proxy:    spec.Proxy,
			Legend:   spec.Legend,
		})
	}
	c.JSON(http.StatusOK, response)
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Search binding error", "error", err)
		s.handleError(c, errors.NewValidationError("query is required"))
		return
	}

	if err := s.controller.Search(c.Request.Context(), req.Query); err != nil {
		slog.Debug("Search failed", "query", req.Query, "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.State())
}

// selectLocation handles POST /api/location requests
func (s *HTTPServerAdapter) selectLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Location binding error", "error", err)
		s.handleError(c, errors.NewValidationError("lat and lon must be valid coordinates"))
		return
	}

	coords := ports.Coordinates{Latitude: *req.Lat, Longitude: *req.Lon}
	if err := s.controller.ClickMap(c.Request.Context(), coords); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.State())
}

// geolocation handles POST /api/geolocation requests
func (s *HTTPServerAdapter) geolocation(c *gin.Context) {
	var req GeolocationRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Geolocation binding error", "error", err)
		s.handleError(c, errors.NewValidationError("lat and lon must be valid coordinates"))
		return
	}

	pos := location.DevicePosition{Supported: req.Supported, Error: req.Error}
	if req.Lat != nil && req.Lon != nil {
		pos.Coordinates = &ports.Coordinates{Latitude: *req.Lat, Longitude: *req.Lon}
	}

	if err := s.controller.UseDevicePosition(c.Request.Context(), pos); err != nil {
		slog.Debug("Device position rejected", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.State())
}

// selectLayer handles POST /api/layer requests
func (s *HTTPServerAdapter) selectLayer(c *gin.Context) {
	var req LayerRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Layer binding error", "error", err)
		s.handleError(c, errors.NewValidationError("layer must be one of: clouds, precipitation, humidity"))
		return
	}

	if err := s.controller.SelectLayer(c.Request.Context(), req.Layer); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.controller.State())
}

// renderStream handles GET /ws requests
func (s *HTTPServerAdapter) renderStream(c *gin.Context) {
	if err := s.stream.Serve(c.Writer, c.Request); err != nil {
		slog.Warn("Render stream connection failed", "error", err)
	}
}
