// Command mock-owm serves canned OpenWeatherMap responses. Point the viewer at it with
//
//	OPENWEATHERMAP_API_BASE_URL=http://localhost:8081/data/2.5
//	OPENWEATHERMAP_GEO_BASE_URL=http://localhost:8081/geo/1.0
//	OPENWEATHERMAP_TILE_BASE_URL=http://localhost:8081/map
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"weathermap.app/internal/fakeowm"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock OpenWeatherMap server starting", "port", port)
	if err := fakeowm.New(nil).Router().Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
