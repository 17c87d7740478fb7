package infrastructure

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector_UpstreamCalls(t *testing.T) {
	m := NewPrometheusMetricsCollector()

	m.RecordUpstreamCall("weather", true, 120*time.Millisecond)
	m.RecordUpstreamCall("weather", false, 2*time.Second)
	m.RecordUpstreamCall("forecast", true, 80*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("weather", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("weather", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("forecast", "success")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.upstreamLatency))
}

func TestPrometheusMetricsCollector_StaleResponses(t *testing.T) {
	m := NewPrometheusMetricsCollector()

	m.RecordStaleResponse("current")
	m.RecordStaleResponse("current")
	m.RecordStaleResponse("forecast")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.staleResponses.WithLabelValues("current")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleResponses.WithLabelValues("forecast")))
}

func TestPrometheusMetricsCollector_CacheHitRatio(t *testing.T) {
	m := NewPrometheusMetricsCollector()

	m.RecordCacheHit("current")
	m.RecordCacheHit("current")
	m.RecordCacheHit("current")
	m.RecordCacheMiss("current")
	m.RecordCacheMiss("forecast")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("current")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("current")))
	assert.InDelta(t, 0.75, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("current")), 1e-9)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("forecast")))
}

func TestPrometheusMetricsCollector_ConcurrentRecording(t *testing.T) {
	m := NewPrometheusMetricsCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				m.RecordCacheHit("current")
			} else {
				m.RecordCacheMiss("current")
			}
		}(i)
	}
	wg.Wait()

	assert.InDelta(t, 0.5, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("current")), 1e-9)
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	m.RecordStaleResponse("location")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `weathermap_stale_responses_total{kind="location"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestPrometheusMetricsCollector_IndependentRegistries(t *testing.T) {
	first := NewPrometheusMetricsCollector()
	second := NewPrometheusMetricsCollector()

	first.RecordStaleResponse("current")

	assert.Equal(t, 1.0, testutil.ToFloat64(first.staleResponses.WithLabelValues("current")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.staleResponses.WithLabelValues("current")))
	assert.NotSame(t, first.Registry(), second.Registry())
}
