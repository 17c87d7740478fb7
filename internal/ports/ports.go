package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherCache    WeatherCache
	Geocoder        Geocoder
	TileSource      TileSource

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Rendering
	Renderer Renderer

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
