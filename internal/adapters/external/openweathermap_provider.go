package external

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

const (
	defaultDataBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultUnits       = "metric"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	units   string
	http    upstream
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Units   string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmCondition struct {
	Description string `json:"description"`
}

type owmCurrentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []owmCondition `json:"weather"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultDataBaseURL
	}
	units := params.Units
	if units == "" {
		units = defaultUnits
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   units,
		http: upstream{
			service: "OpenWeatherMap",
			client:  newHTTPClient(params.Client, params.Timeout),
			logger:  params.Logger,
		},
	}
}

func (p *OpenWeatherMapProviderAdapter) endpoint(path string, coords ports.Coordinates) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("appid", p.apiKey)
	q.Set("units", p.units)
	return p.baseURL + "/" + path + "?" + q.Encode()
}

// GetCurrentWeather retrieves current conditions at coords
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, coords ports.Coordinates) (*ports.CurrentConditions, error) {
	var apiResp owmCurrentResponse
	if err := p.http.getJSON(ctx, p.endpoint("weather", coords), &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Weather) == 0 {
		return nil, errors.NewExternalAPIError("OpenWeatherMap response has no weather condition", nil)
	}

	var rain *float64
	if apiResp.Rain != nil {
		rain = apiResp.Rain.OneHour
	}

	timestamp := time.Now()
	if apiResp.Dt > 0 {
		timestamp = time.Unix(apiResp.Dt, 0)
	}

	return &ports.CurrentConditions{
		Place:                 apiResp.Name,
		Country:               apiResp.Sys.Country,
		Temperature:           apiResp.Main.Temp,
		Description:           apiResp.Weather[0].Description,
		Humidity:              apiResp.Main.Humidity,
		PrecipitationLastHour: rain,
		CloudCover:            apiResp.Clouds.All,
		WindSpeed:             apiResp.Wind.Speed,
		Coordinates:           coords,
		Timestamp:             timestamp,
	}, nil
}

// GetForecast retrieves the 3-hour forecast at coords
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, coords ports.Coordinates) (*ports.ForecastData, error) {
	var apiResp owmForecastResponse
	if err := p.http.getJSON(ctx, p.endpoint("forecast", coords), &apiResp); err != nil {
		return nil, err
	}

	slots := make([]ports.ForecastSlot, 0, len(apiResp.List))
	for _, entry := range apiResp.List {
		if len(entry.Weather) == 0 {
			return nil, errors.NewExternalAPIError("OpenWeatherMap forecast entry has no weather condition", nil)
		}
		slots = append(slots, ports.ForecastSlot{
			Time:        time.Unix(entry.Dt, 0).UTC(),
			Description: entry.Weather[0].Description,
			Temperature: entry.Main.Temp,
		})
	}

	return &ports.ForecastData{
		Place:            apiResp.City.Name,
		UTCOffsetSeconds: apiResp.City.Timezone,
		Slots:            slots,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
