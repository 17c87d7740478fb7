// Package viewer is the application state of the weather map: the selected
// coordinates, the active layer and the fencing that keeps late responses for
// an abandoned location off the page.
package viewer

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/core/location"
	"weathermap.app/internal/core/weather"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
	"weathermap.app/pkg/validation"
)

const (
	kindCurrent  = "current"
	kindForecast = "forecast"
	kindLocation = "location"
)

// LocationResolver resolves user input to coordinates
type LocationResolver interface {
	Search(ctx context.Context, query string) (*ports.Place, error)
	FromDevice(ctx context.Context, pos location.DevicePosition) (ports.Coordinates, error)
}

// WeatherFetcher retrieves current conditions and the daily forecast
type WeatherFetcher interface {
	GetCurrentWeather(ctx context.Context, coords ports.Coordinates) (*weather.Snapshot, error)
	GetForecast(ctx context.Context, coords ports.Coordinates) ([]weather.DailyForecast, error)
	Units() string
}

// State is a snapshot of the controller
type State struct {
	Coordinates ports.Coordinates `json:"coordinates"`
	Place       string            `json:"place,omitempty"`
	Layer       layers.Layer      `json:"layer"`
	Generation  uint64            `json:"generation"`
	Map         ports.MapView     `json:"map"`
}

type Controller struct {
	locations LocationResolver
	weather   WeatherFetcher
	mapView   *MapController
	renderer  ports.Renderer
	logger    ports.Logger
	metrics   ports.MetricsCollector

	// mu also serializes rendering so a generation check and the render it
	// guards cannot interleave with a newer commit
	mu         sync.Mutex
	coords     ports.Coordinates
	place      string
	layer      layers.Layer
	generation uint64
	cancel     context.CancelFunc
	// ticket is the latest location intent; only it may commit
	ticket uint64
}

type ControllerDependencies struct {
	Locations    LocationResolver
	Weather      WeatherFetcher
	Map          *MapController
	Renderer     ports.Renderer
	Logger       ports.Logger
	Metrics      ports.MetricsCollector
	InitialLayer layers.Layer
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Locations == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Map == nil {
		return nil, errors.NewValidationError("map controller is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewValidationError("renderer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	layer := deps.InitialLayer
	if !layer.IsValid() {
		layer = layers.Clouds
	}
	deps.Map.SetActive(layer)

	return &Controller{
		locations: deps.Locations,
		weather:   deps.Weather,
		mapView:   deps.Map,
		renderer:  deps.Renderer,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		coords:    deps.Map.Center(),
		layer:     layer,
	}, nil
}

// State returns the current controller state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Coordinates: c.coords,
		Place:       c.place,
		Layer:       c.layer,
		Generation:  c.generation,
		Map:         c.mapView.View(),
	}
}

// Load paints the initial map and legend and fetches weather for the map center
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.render("map", func() error { return c.renderer.RenderMap(ctx, c.mapView.View()) })
	c.render("legend", func() error { return c.renderer.RenderLegend(ctx, LegendView(c.layer)) })
	c.mu.Unlock()

	return c.changeLocation(ctx, c.takeTicket(), c.mapView.Center(), "", false)
}

// Search geocodes query and moves the map to the first match. A blank query
// does nothing. A failed search raises an alert and leaves the state alone.
func (c *Controller) Search(ctx context.Context, query string) error {
	if !validation.IsNotEmpty(query) {
		return errors.NewValidationError("search query is empty")
	}
	ticket := c.takeTicket()

	place, err := c.locations.Search(ctx, query)
	if err != nil {
		if !errors.IsValidationError(err) {
			c.alertIfLatest(ctx, ticket, err)
		}
		return err
	}

	return c.changeLocation(ctx, ticket, place.Coordinates, place.Name, true)
}

// ClickMap selects the clicked point without moving the map
func (c *Controller) ClickMap(ctx context.Context, coords ports.Coordinates) error {
	return c.changeLocation(ctx, c.takeTicket(), coords, "", false)
}

// UseDevicePosition moves the map to the browser-reported position. On failure
// the previous coordinates stay in effect.
func (c *Controller) UseDevicePosition(ctx context.Context, pos location.DevicePosition) error {
	ticket := c.takeTicket()

	coords, err := c.locations.FromDevice(ctx, pos)
	if err != nil {
		c.alertIfLatest(ctx, ticket, err)
		return err
	}

	return c.changeLocation(ctx, ticket, coords, "", true)
}

// SelectLayer swaps the overlay for name and repaints the legend
func (c *Controller) SelectLayer(ctx context.Context, name string) error {
	l, err := layers.Parse(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.layer = l
	c.mapView.ReplaceOverlay(l)
	c.render("map", func() error { return c.renderer.RenderMap(ctx, c.mapView.View()) })
	c.render("legend", func() error { return c.renderer.RenderLegend(ctx, LegendView(l)) })

	c.logger.Debug("Layer selected", ports.F("layer", l.String()))
	return nil
}

// Close cancels in-flight retrievals
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) takeTicket() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticket++
	return c.ticket
}

// changeLocation commits coords as a new generation and fetches current
// weather and forecast for it concurrently. It returns once both settled.
func (c *Controller) changeLocation(ctx context.Context, ticket uint64, coords ports.Coordinates, place string, recenter bool) error {
	c.mu.Lock()
	if ticket != c.ticket {
		c.mu.Unlock()
		c.metrics.RecordStaleResponse(kindLocation)
		c.logger.Info("Location change superseded by a newer request",
			ports.F("coordinates", coords.String()))
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}
	genCtx, cancel := context.WithCancel(ctx)
	c.generation++
	gen := c.generation
	c.cancel = cancel
	c.coords = coords
	c.place = place

	if recenter {
		c.mapView.SetView(coords)
		c.render("map", func() error { return c.renderer.RenderMap(ctx, c.mapView.View()) })
	}
	c.mu.Unlock()

	c.logger.Info("Location selected",
		ports.F("coordinates", coords.String()),
		ports.F("generation", gen))

	var g errgroup.Group
	g.Go(func() error {
		c.fetchCurrent(genCtx, gen, coords)
		return nil
	})
	g.Go(func() error {
		c.fetchForecast(genCtx, gen, coords)
		return nil
	})
	err := g.Wait()

	c.mu.Lock()
	if gen == c.generation {
		c.cancel = nil
	}
	c.mu.Unlock()
	cancel()

	return err
}

func (c *Controller) fetchCurrent(ctx context.Context, gen uint64, coords ports.Coordinates) {
	snapshot, err := c.weather.GetCurrentWeather(ctx, coords)
	if err != nil {
		c.logFetchError(ctx, kindCurrent, coords, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.discard(kindCurrent, gen, coords)
		return
	}

	if c.place == "" {
		c.place = snapshot.LocationLabel()
	}
	view := weather.CurrentView(snapshot, c.weather.Units())
	c.render("current weather", func() error { return c.renderer.RenderCurrentWeather(ctx, view) })

	c.mapView.ReplaceOverlay(c.layer)
	c.render("map", func() error { return c.renderer.RenderMap(ctx, c.mapView.View()) })
	c.render("legend", func() error { return c.renderer.RenderLegend(ctx, LegendView(c.layer)) })
}

func (c *Controller) fetchForecast(ctx context.Context, gen uint64, coords ports.Coordinates) {
	days, err := c.weather.GetForecast(ctx, coords)
	if err != nil {
		c.logFetchError(ctx, kindForecast, coords, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.discard(kindForecast, gen, coords)
		return
	}

	views := weather.ForecastView(days, c.weather.Units())
	c.render("forecast", func() error { return c.renderer.RenderForecast(ctx, views) })
}

// discard must be called with mu held
func (c *Controller) discard(kind string, gen uint64, coords ports.Coordinates) {
	c.metrics.RecordStaleResponse(kind)
	c.logger.Debug("Discarding response for abandoned location",
		ports.F("kind", kind),
		ports.F("coordinates", coords.String()),
		ports.F("generation", gen))
}

func (c *Controller) logFetchError(ctx context.Context, kind string, coords ports.Coordinates, err error) {
	if ctx.Err() != nil {
		c.logger.Debug("Retrieval cancelled",
			ports.F("kind", kind),
			ports.F("coordinates", coords.String()))
		return
	}
	c.logger.Error("Weather retrieval failed",
		ports.F("kind", kind),
		ports.F("coordinates", coords.String()),
		ports.F("error", err))
}

func (c *Controller) alertIfLatest(ctx context.Context, ticket uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.ticket {
		c.logger.Debug("Dropping alert for superseded request", ports.F("error", err))
		return
	}

	alert := ports.AlertView{Kind: alertKind(err), Message: errors.UserMessage(err)}
	c.render("alert", func() error { return c.renderer.Alert(ctx, alert) })
}

// render must be called with mu held
func (c *Controller) render(region string, fn func() error) {
	if err := fn(); err != nil {
		c.logger.Warn("Failed to render", ports.F("region", region), ports.F("error", err))
	}
}

func alertKind(err error) string {
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return "not_found"
	case errors.GeolocationError:
		return "geolocation"
	default:
		return "error"
	}
}
