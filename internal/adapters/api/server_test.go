package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathermap.app/internal/core/layers"
	"weathermap.app/internal/core/location"
	"weathermap.app/internal/core/viewer"
	"weathermap.app/internal/core/weather"
	"weathermap.app/internal/mocks"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

var (
	newYork = ports.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	london  = ports.Coordinates{Latitude: 51.5, Longitude: -0.12}
)

type stubStream struct {
	served int
}

func (s *stubStream) Serve(w http.ResponseWriter, r *http.Request) error {
	s.served++
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

type stubHealth map[string]ports.HealthStatus

func (s stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus { return s }

type apiHarness struct {
	router   *gin.Engine
	geocoder *mocks.Geocoder
	provider *mocks.WeatherProvider
	renderer *mocks.Renderer
	tiles    *mocks.TileSource
	stream   *stubStream
	ctl      *viewer.Controller
}

func allowLogging(l *mocks.Logger) {
	fields := []interface{}{mock.Anything, mock.Anything, mock.Anything, mock.Anything}
	for n := 0; n <= len(fields); n++ {
		l.EXPECT().Debug(mock.Anything, fields[:n]...).Maybe()
		l.EXPECT().Info(mock.Anything, fields[:n]...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields[:n]...).Maybe()
		l.EXPECT().Error(mock.Anything, fields[:n]...).Maybe()
	}
}

func newAPIHarness(t *testing.T, health stubHealth) *apiHarness {
	gin.SetMode(gin.TestMode)

	h := &apiHarness{
		geocoder: mocks.NewGeocoder(t),
		provider: mocks.NewWeatherProvider(t),
		renderer: mocks.NewRenderer(t),
		tiles:    mocks.NewTileSource(t),
		stream:   &stubStream{},
	}

	logger := mocks.NewLogger(t)
	allowLogging(logger)

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordStaleResponse(mock.Anything).Maybe()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		Units:            "metric",
		ForecastDays:     5,
		ForecastLocation: time.UTC,
	}).Maybe()

	h.renderer.EXPECT().RenderMap(mock.Anything, mock.Anything).Return(nil).Maybe()
	h.renderer.EXPECT().RenderLegend(mock.Anything, mock.Anything).Return(nil).Maybe()
	h.renderer.EXPECT().RenderCurrentWeather(mock.Anything, mock.Anything).Return(nil).Maybe()
	h.renderer.EXPECT().RenderForecast(mock.Anything, mock.Anything).Return(nil).Maybe()

	weatherUC, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: h.provider,
		Cache:           mocks.NewWeatherCache(t),
		Config:          config,
		Logger:          logger,
		Metrics:         metrics,
	})
	require.NoError(t, err)

	locationUC, err := location.NewUseCase(location.UseCaseDependencies{
		Geocoder: h.geocoder,
		Logger:   logger,
	})
	require.NoError(t, err)

	h.ctl, err = viewer.NewController(viewer.ControllerDependencies{
		Locations: locationUC,
		Weather:   weatherUC,
		Map: viewer.NewMapController(viewer.MapOptions{
			Center:          newYork,
			Zoom:            10,
			BaseTileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			BaseAttribution: "© OpenStreetMap contributors",
			OverlayOpacity:  0.7,
		}),
		Renderer:     h.renderer,
		Logger:       logger,
		Metrics:      metrics,
		InitialLayer: layers.Clouds,
	})
	require.NoError(t, err)
	t.Cleanup(h.ctl.Close)

	if health == nil {
		health = stubHealth{"weatherAPI": {Component: "weatherAPI", Status: "healthy"}}
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 8080},
		Controller:          h.ctl,
		TileSource:          h.tiles,
		RenderStream:        h.stream,
		SystemHealthChecker: health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("weathermap_stale_responses_total 0\n"))
		}),
	})
	require.NoError(t, err)
	h.router = server.GetRouter()
	return h
}

func (h *apiHarness) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *apiHarness) expectWeather(coords ports.Coordinates, place string) {
	h.provider.EXPECT().GetCurrentWeather(mock.Anything, coords).Return(&ports.CurrentConditions{
		Place:       place,
		Country:     "GB",
		Temperature: 11.6,
		Description: "light rain",
		Humidity:    80,
		CloudCover:  90,
		WindSpeed:   5.1,
		Coordinates: coords,
	}, nil).Once()
	h.provider.EXPECT().GetForecast(mock.Anything, coords).Return(&ports.ForecastData{}, nil).Once()
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) viewer.State {
	t.Helper()
	var state viewer.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetState(t *testing.T) {
	h := newAPIHarness(t, nil)

	w := h.do(http.MethodGet, "/api/state", "")

	assert.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, newYork, state.Coordinates)
	assert.Equal(t, layers.Clouds, state.Layer)
	assert.Equal(t, 10, state.Map.Zoom)
}

func TestGetLayers(t *testing.T) {
	h := newAPIHarness(t, nil)

	w := h.do(http.MethodGet, "/api/layers", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []LayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "clouds", resp[0].Layer)
	assert.Equal(t, "precipitation_new", resp[2].TilePath)
	assert.True(t, resp[2].Proxy)
	assert.Equal(t, "Humidity", resp[2].Legend.Title)
}

func TestSearch_Success(t *testing.T) {
	h := newAPIHarness(t, nil)
	h.geocoder.EXPECT().Search(mock.Anything, "London", 1).Return([]ports.Place{{
		Name: "London", Country: "GB", Coordinates: london,
	}}, nil).Once()
	h.expectWeather(london, "London")

	w := h.do(http.MethodPost, "/api/search", `{"query":"London"}`)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, london, state.Coordinates)
	assert.Equal(t, london, state.Map.Center)
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(h *apiHarness)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing_query",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "query is required",
		},
		{
			name:       "blank_query",
			body:       `{"query":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "search query is empty",
		},
		{
			name: "not_found",
			body: `{"query":"Atlantis"}`,
			setup: func(h *apiHarness) {
				h.geocoder.EXPECT().Search(mock.Anything, "Atlantis", 1).Return(nil, nil).Once()
				h.renderer.EXPECT().Alert(mock.Anything, ports.AlertView{Kind: "not_found", Message: location.MsgNotFound}).Return(nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  location.MsgNotFound,
		},
		{
			name: "upstream_failure",
			body: `{"query":"London"}`,
			setup: func(h *apiHarness) {
				h.geocoder.EXPECT().Search(mock.Anything, "London", 1).
					Return(nil, errors.NewExternalAPIError("geocoding failed", nil)).Once()
				h.renderer.EXPECT().Alert(mock.Anything, ports.AlertView{Kind: "error", Message: location.MsgSearchFailed}).Return(nil).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  location.MsgSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAPIHarness(t, nil)
			if tt.setup != nil {
				tt.setup(h)
			}

			w := h.do(http.MethodPost, "/api/search", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w))
			assert.Equal(t, newYork, h.ctl.State().Coordinates)
		})
	}
}

func TestSelectLocation(t *testing.T) {
	h := newAPIHarness(t, nil)
	h.expectWeather(london, "London")

	w := h.do(http.MethodPost, "/api/location", `{"lat":51.5,"lon":-0.12}`)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, london, state.Coordinates)
	assert.Equal(t, newYork, state.Map.Center)
}

func TestSelectLocation_ZeroCoordinatesAreValid(t *testing.T) {
	h := newAPIHarness(t, nil)
	origin := ports.Coordinates{}
	h.expectWeather(origin, "Null Island")

	w := h.do(http.MethodPost, "/api/location", `{"lat":0,"lon":0}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelectLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing_lon", body: `{"lat":51.5}`},
		{name: "latitude_out_of_range", body: `{"lat":91,"lon":0}`},
		{name: "longitude_out_of_range", body: `{"lat":0,"lon":-181}`},
		{name: "not_json", body: `lat=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAPIHarness(t, nil)

			w := h.do(http.MethodPost, "/api/location", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, newYork, h.ctl.State().Coordinates)
		})
	}
}

func TestGeolocation(t *testing.T) {
	t.Run("success_recenters", func(t *testing.T) {
		h := newAPIHarness(t, nil)
		h.expectWeather(london, "London")

		w := h.do(http.MethodPost, "/api/geolocation", `{"supported":true,"lat":51.5,"lon":-0.12}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, london, decodeState(t, w).Map.Center)
	})

	t.Run("unsupported", func(t *testing.T) {
		h := newAPIHarness(t, nil)
		h.renderer.EXPECT().Alert(mock.Anything, ports.AlertView{Kind: "geolocation", Message: location.MsgGeolocationUnsupported}).Return(nil).Once()

		w := h.do(http.MethodPost, "/api/geolocation", `{"supported":false}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, location.MsgGeolocationUnsupported, decodeError(t, w))
		assert.Equal(t, newYork, h.ctl.State().Coordinates)
	})

	t.Run("denied", func(t *testing.T) {
		h := newAPIHarness(t, nil)
		h.renderer.EXPECT().Alert(mock.Anything, ports.AlertView{Kind: "geolocation", Message: location.MsgGeolocationFailed}).Return(nil).Once()

		w := h.do(http.MethodPost, "/api/geolocation", `{"supported":true,"error":"User denied Geolocation"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, location.MsgGeolocationFailed, decodeError(t, w))
	})

	t.Run("invalid_coordinates", func(t *testing.T) {
		h := newAPIHarness(t, nil)

		w := h.do(http.MethodPost, "/api/geolocation", `{"supported":true,"lat":123,"lon":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSelectLayer(t *testing.T) {
	h := newAPIHarness(t, nil)

	w := h.do(http.MethodPost, "/api/layer", `{"layer":"precipitation"}`)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, layers.Precipitation, state.Layer)
	require.NotNil(t, state.Map.Overlay)
	assert.Equal(t, "/tiles/precipitation/{z}/{x}/{y}.png", state.Map.Overlay.TileURL)

	active := 0
	for _, toggle := range state.Map.Toggles {
		if toggle.Active {
			active++
			assert.Equal(t, "precipitation", toggle.Layer)
		}
	}
	assert.Equal(t, 1, active)
}

func TestSelectLayer_Unknown(t *testing.T) {
	h := newAPIHarness(t, nil)

	w := h.do(http.MethodPost, "/api/layer", `{"layer":"temperature"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, layers.Clouds, h.ctl.State().Layer)
}

func TestGetTile(t *testing.T) {
	h := newAPIHarness(t, nil)
	png := []byte("\x89PNG\r\n\x1a\n")
	h.tiles.EXPECT().FetchTile(mock.Anything, "humidity", 5, 10, 12).
		Return(&ports.Tile{Data: png, ContentType: "image/png"}, nil).Once()

	w := h.do(http.MethodGet, "/tiles/humidity/5/10/12.png", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, tileCacheControl, w.Header().Get("Cache-Control"))
	assert.Equal(t, png, w.Body.Bytes())
}

func TestGetTile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(h *apiHarness)
		wantStatus int
	}{
		{
			name:       "non_numeric_coordinates",
			path:       "/tiles/clouds/a/1/1.png",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_layer",
			path: "/tiles/temperature/1/1/1.png",
			setup: func(h *apiHarness) {
				h.tiles.EXPECT().FetchTile(mock.Anything, "temperature", 1, 1, 1).
					Return(nil, errors.NewValidationError("unknown layer")).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "upstream_failure",
			path: "/tiles/clouds/1/1/1.png",
			setup: func(h *apiHarness) {
				h.tiles.EXPECT().FetchTile(mock.Anything, "clouds", 1, 1, 1).
					Return(nil, errors.NewExternalAPIError("tile server returned 500", nil)).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAPIHarness(t, nil)
			if tt.setup != nil {
				tt.setup(h)
			}

			w := h.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newAPIHarness(t, nil)

		w := h.do(http.MethodGet, "/api/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Contains(t, resp.Components, "weatherAPI")
	})

	t.Run("degraded", func(t *testing.T) {
		h := newAPIHarness(t, stubHealth{
			"cache": {Component: "cache", Status: "unhealthy", Error: "connection refused"},
		})

		w := h.do(http.MethodGet, "/api/health", "")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := newAPIHarness(t, nil)

	w := h.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weathermap_stale_responses_total")
}

func TestRenderStreamEndpoint(t *testing.T) {
	h := newAPIHarness(t, nil)

	h.do(http.MethodGet, "/ws", "")

	assert.Equal(t, 1, h.stream.served)
}

func TestStaticFiles(t *testing.T) {
	h := newAPIHarness(t, nil)

	index := h.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, index.Code)
	assert.True(t, strings.HasPrefix(index.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, index.Body.String(), "/static/app.js")

	script := h.do(http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, script.Code)
	assert.Contains(t, script.Body.String(), "/api/search")
}
