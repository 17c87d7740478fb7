package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weathermap.app/internal/mocks"
	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

var london = ports.Coordinates{Latitude: 51.5, Longitude: -0.12}

type useCaseMocks struct {
	provider *mocks.WeatherProvider
	cache    *mocks.WeatherCache
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	metrics  *mocks.MetricsCollector
}

func newUseCaseMocks(t *testing.T) *useCaseMocks {
	m := &useCaseMocks{
		provider: mocks.NewWeatherProvider(t),
		cache:    mocks.NewWeatherCache(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
		metrics:  mocks.NewMetricsCollector(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *useCaseMocks) useCase(t *testing.T) *UseCase {
	uc, err := NewUseCase(UseCaseDependencies{
		WeatherProvider: m.provider,
		Cache:           m.cache,
		Config:          m.config,
		Logger:          m.logger,
		Metrics:         m.metrics,
	})
	require.NoError(t, err)
	return uc
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	m := newUseCaseMocks(t)

	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{"NoProvider", UseCaseDependencies{Cache: m.cache, Config: m.config, Logger: m.logger, Metrics: m.metrics}},
		{"NoCache", UseCaseDependencies{WeatherProvider: m.provider, Config: m.config, Logger: m.logger, Metrics: m.metrics}},
		{"NoConfig", UseCaseDependencies{WeatherProvider: m.provider, Cache: m.cache, Logger: m.logger, Metrics: m.metrics}},
		{"NoLogger", UseCaseDependencies{WeatherProvider: m.provider, Cache: m.cache, Config: m.config, Metrics: m.metrics}},
		{"NoMetrics", UseCaseDependencies{WeatherProvider: m.provider, Cache: m.cache, Config: m.config, Logger: m.logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_GetCurrentWeather_NoCache(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{Units: "metric"})
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, london).Return(&ports.CurrentConditions{
		Place:       "London",
		Country:     "GB",
		Temperature: 12.3,
		Description: "overcast clouds",
		Humidity:    80,
		Coordinates: london,
	}, nil).Once()

	snapshot, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	require.NoError(t, err)
	assert.Equal(t, "London, GB", snapshot.LocationLabel())
	assert.Equal(t, 40, snapshot.AreaWetness)
	assert.Equal(t, 0.0, snapshot.PrecipitationLastHour)
}

func TestUseCase_GetCurrentWeather_CacheMissThenStore(t *testing.T) {
	m := newUseCaseMocks(t)
	conditions := &ports.CurrentConditions{Place: "London", Description: "clear sky", Humidity: 50}

	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache: true,
		CacheTTL:    10 * time.Minute,
		Units:       "metric",
	})
	m.cache.EXPECT().GetCurrent(mock.Anything, "weather:current:51.50:-0.12:metric").
		Return((*ports.CurrentConditions)(nil), errors.NewNotFoundError("cache miss"))
	m.metrics.EXPECT().RecordCacheMiss("current").Once()
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, london).Return(conditions, nil)
	m.cache.EXPECT().SetCurrent(mock.Anything, "weather:current:51.50:-0.12:metric", conditions, 10*time.Minute).Return(nil)

	snapshot, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	require.NoError(t, err)
	assert.Equal(t, 25, snapshot.AreaWetness)
}

func TestUseCase_GetCurrentWeather_CacheHit(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{EnableCache: true, Units: "metric"})
	m.cache.EXPECT().GetCurrent(mock.Anything, mock.Anything).
		Return(&ports.CurrentConditions{Place: "London", Description: "mist", Humidity: 90}, nil)
	m.metrics.EXPECT().RecordCacheHit("current").Once()

	snapshot, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	require.NoError(t, err)
	assert.Equal(t, "mist", snapshot.Description)
	m.provider.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
}

func TestUseCase_GetCurrentWeather_CacheWriteFailureIsNotFatal(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{EnableCache: true, Units: "metric"})
	m.cache.EXPECT().GetCurrent(mock.Anything, mock.Anything).Return(nil, nil)
	m.metrics.EXPECT().RecordCacheMiss("current")
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, london).
		Return(&ports.CurrentConditions{Description: "rain", Humidity: 70}, nil)
	m.cache.EXPECT().SetCurrent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.NewExternalAPIError("redis down", nil))

	_, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	assert.NoError(t, err)
}

func TestUseCase_GetCurrentWeather_ProviderError(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{Units: "metric"})
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, london).
		Return(nil, errors.NewExternalAPIError("weather API returned status 500", nil))

	snapshot, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	assert.Nil(t, snapshot)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "51.5000,-0.1200")
}

func TestUseCase_GetCurrentWeather_MissingConditionIsRejected(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{Units: "metric"})
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, london).
		Return(&ports.CurrentConditions{Place: "London", Humidity: 60}, nil)

	snapshot, err := m.useCase(t).GetCurrentWeather(context.Background(), london)

	assert.Nil(t, snapshot)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestUseCase_GetForecast_GroupsInPlaceOffset(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{Units: "metric", ForecastDays: 5})

	// 3-hourly from 2024-05-06 00:00 UTC for six days, place offset UTC+3
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	m.provider.EXPECT().GetForecast(mock.Anything, london).Return(&ports.ForecastData{
		Place:            "Kyiv",
		UTCOffsetSeconds: 3 * 3600,
		Slots:            slotsFor(start, 6),
	}, nil)

	days, err := m.useCase(t).GetForecast(context.Background(), london)

	require.NoError(t, err)
	require.Len(t, days, 5)
	// local noon is 09:00 UTC
	assert.Equal(t, "day0-h09", days[0].Description)
	assert.Equal(t, "Mon", days[0].Day)
}

func TestUseCase_GetForecast_ConfiguredLocation(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		Units:            "metric",
		ForecastDays:     3,
		ForecastLocation: time.UTC,
	})
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	m.provider.EXPECT().GetForecast(mock.Anything, london).Return(&ports.ForecastData{
		UTCOffsetSeconds: 3 * 3600,
		Slots:            slotsFor(start, 6),
	}, nil)

	days, err := m.useCase(t).GetForecast(context.Background(), london)

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "day0-h12", days[0].Description)
}

func TestUseCase_GetForecast_CacheHit(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache:      true,
		Units:            "metric",
		ForecastDays:     5,
		ForecastLocation: time.UTC,
	})
	m.cache.EXPECT().GetForecast(mock.Anything, "weather:forecast:51.50:-0.12:metric").Return(&ports.ForecastData{
		Slots: slotsFor(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), 2),
	}, nil)
	m.metrics.EXPECT().RecordCacheHit("forecast").Once()

	days, err := m.useCase(t).GetForecast(context.Background(), london)

	require.NoError(t, err)
	assert.Len(t, days, 2)
	m.provider.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything)
}

func TestUseCase_GetForecast_ProviderError(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{EnableCache: true, Units: "metric"})
	m.cache.EXPECT().GetForecast(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	m.metrics.EXPECT().RecordCacheMiss("forecast")
	m.provider.EXPECT().GetForecast(mock.Anything, london).Return(nil, context.Canceled)

	days, err := m.useCase(t).GetForecast(context.Background(), london)

	assert.Nil(t, days)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUseCase_Units(t *testing.T) {
	m := newUseCaseMocks(t)
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{Units: "imperial"})

	assert.Equal(t, "imperial", m.useCase(t).Units())
}
