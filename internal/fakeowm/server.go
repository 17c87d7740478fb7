// Package fakeowm serves an OpenWeatherMap-shaped API with canned data for
// local runs and end-to-end tests.
package fakeowm

import (
	"encoding/base64"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Place is one city the fake geocoder knows about
type Place struct {
	Name        string
	Country     string
	State       string
	Lat         float64
	Lon         float64
	Temperature float64
	Humidity    float64
	// RainLastHour is omitted from responses when zero
	RainLastHour float64
	Clouds       float64
	WindSpeed    float64
	Description  string
	Timezone     int
}

// Places is the default catalogue
var Places = []Place{
	{Name: "London", Country: "GB", State: "England", Lat: 51.5073, Lon: -0.1276, Temperature: 11.6, Humidity: 80, RainLastHour: 0.4, Clouds: 90, WindSpeed: 5.1, Description: "light rain", Timezone: 3600},
	{Name: "Paris", Country: "FR", State: "Ile-de-France", Lat: 48.8566, Lon: 2.3522, Temperature: 18, Humidity: 68, Clouds: 20, WindSpeed: 3.2, Description: "few clouds", Timezone: 7200},
	{Name: "New York", Country: "US", State: "New York", Lat: 40.7128, Lon: -74.006, Temperature: 22.4, Humidity: 55, Clouds: 0, WindSpeed: 4.6, Description: "clear sky", Timezone: -14400},
	{Name: "Kyiv", Country: "UA", Lat: 50.4501, Lon: 30.5234, Temperature: 9.3, Humidity: 91, RainLastHour: 6, Clouds: 100, WindSpeed: 7.8, Description: "heavy intensity rain", Timezone: 10800},
}

// QueryServerError makes the geocoder answer 500
const QueryServerError = "servererror"

// maxMatchDistance is how far (in degrees) a coordinate may be from a place and still report it
const maxMatchDistance = 0.5

// transparentPNG is a 1x1 transparent tile
var transparentPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

// Server is the fake upstream
type Server struct {
	places []Place
	now    func() time.Time
}

func New(places []Place) *Server {
	if places == nil {
		places = Places
	}
	return &Server{places: places, now: time.Now}
}

// Router mounts the data API under /data/2.5, geocoding under /geo/1.0 and
// tiles under /map
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("/", requireAppID)
	authed.GET("/data/2.5/weather", s.weather)
	authed.GET("/data/2.5/forecast", s.forecast)
	authed.GET("/geo/1.0/direct", s.direct)
	authed.GET("/map/:layer/:z/:x/:y", s.tile)
	return r
}

func requireAppID(c *gin.Context) {
	if c.Query("appid") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"cod":     401,
			"message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		})
		return
	}
	c.Next()
}

func coordinates(c *gin.Context) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude or longitude"})
		return 0, 0, false
	}
	return lat, lon, true
}

// nearest returns the closest known place, or a generic place at the point
func (s *Server) nearest(lat, lon float64) Place {
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range s.places {
		d := math.Hypot(p.Lat-lat, p.Lon-lon)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 && bestDist <= maxMatchDistance {
		return s.places[best]
	}
	return Place{
		Lat:         lat,
		Lon:         lon,
		Temperature: 15,
		Humidity:    60,
		Clouds:      40,
		WindSpeed:   3,
		Description: "scattered clouds",
	}
}

func (s *Server) weather(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	p := s.nearest(lat, lon)

	body := gin.H{
		"coord":   gin.H{"lat": lat, "lon": lon},
		"weather": []gin.H{{"description": p.Description}},
		"main":    gin.H{"temp": p.Temperature, "humidity": p.Humidity},
		"wind":    gin.H{"speed": p.WindSpeed},
		"clouds":  gin.H{"all": p.Clouds},
		"dt":      s.now().Unix(),
		"sys":     gin.H{"country": p.Country},
		"name":    p.Name,
	}
	if p.RainLastHour > 0 {
		body["rain"] = gin.H{"1h": p.RainLastHour}
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) forecast(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	p := s.nearest(lat, lon)

	start := s.now().UTC().Truncate(3 * time.Hour)
	list := make([]gin.H, 0, 40)
	for i := 0; i < 40; i++ {
		at := start.Add(time.Duration(i*3) * time.Hour)
		list = append(list, gin.H{
			"dt":      at.Unix(),
			"main":    gin.H{"temp": p.Temperature + 3*math.Sin(float64(i)/8*2*math.Pi)},
			"weather": []gin.H{{"description": p.Description}},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"list": list,
		"city": gin.H{"name": p.Name, "country": p.Country, "timezone": p.Timezone},
	})
}

func (s *Server) direct(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == QueryServerError {
		c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal server error"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	name := strings.TrimSpace(strings.SplitN(q, ",", 2)[0])
	results := make([]gin.H, 0, limit)
	for _, p := range s.places {
		if strings.ToLower(p.Name) != name {
			continue
		}
		results = append(results, gin.H{
			"name":    p.Name,
			"lat":     p.Lat,
			"lon":     p.Lon,
			"country": p.Country,
			"state":   p.State,
		})
		if len(results) == limit {
			break
		}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) tile(c *gin.Context) {
	switch c.Param("layer") {
	case "clouds_new", "precipitation_new":
	default:
		c.JSON(http.StatusNotFound, gin.H{"cod": 404, "message": "layer not found"})
		return
	}
	c.Data(http.StatusOK, "image/png", transparentPNG)
}
