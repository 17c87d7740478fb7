package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathermap.app/pkg/errors"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapGeocoder {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenWeatherMapGeocoder(OpenWeatherMapGeocoderParams{
		APIKey:  "geo-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})
}

func TestOpenWeatherMapGeocoder_Search(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "geo-key", r.URL.Query().Get("appid"))

		writeJSON(t, w, http.StatusOK, `[
			{"name": "New York", "lat": 40.7127281, "lon": -74.0060152, "country": "US", "state": "New York"}
		]`)
	})

	places, err := geocoder.Search(context.Background(), "New York", 1)

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "New York", places[0].Name)
	assert.Equal(t, "US", places[0].Country)
	assert.Equal(t, "New York", places[0].State)
	assert.Equal(t, 40.7127281, places[0].Coordinates.Latitude)
	assert.Equal(t, -74.0060152, places[0].Coordinates.Longitude)
}

func TestOpenWeatherMapGeocoder_Search_NoResults(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[]`)
	})

	places, err := geocoder.Search(context.Background(), "Xyzzyville", 0)

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestOpenWeatherMapGeocoder_Search_Failures(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusServiceUnavailable, `{}`)
		})
		_, err := geocoder.Search(context.Background(), "Paris", 1)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("Decode", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"cod": 400}`)
		})
		_, err := geocoder.Search(context.Background(), "Paris", 1)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		geocoder := NewOpenWeatherMapGeocoder(OpenWeatherMapGeocoderParams{
			APIKey:  "geo-key",
			BaseURL: "http://127.0.0.1:1",
			Logger:  setupLoggerMock(t),
		})
		_, err := geocoder.Search(context.Background(), "Paris", 1)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}
