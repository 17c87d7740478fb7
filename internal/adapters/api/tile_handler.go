package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"weathermap.app/pkg/errors"
)

const tileCacheControl = "public, max-age=600"

// getTile handles GET /tiles/:layer/:z/:x/:y requests. The upstream API key
// never reaches the browser.
func (s *HTTPServerAdapter) getTile(c *gin.Context) {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(strings.TrimSuffix(c.Param("y"), ".png"))
	if errZ != nil || errX != nil || errY != nil {
		s.handleError(c, errors.NewValidationError("tile coordinates must be integers"))
		return
	}

	tile, err := s.tiles.FetchTile(c.Request.Context(), c.Param("layer"), z, x, y)
	if err != nil {
		switch {
		case errors.IsValidationError(err), errors.IsNotFoundError(err):
			s.handleError(c, err)
		default:
			slog.Debug("Tile fetch failed", "layer", c.Param("layer"), "z", z, "x", x, "y", y, "error", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Tile unavailable"})
		}
		return
	}

	c.Header("Cache-Control", tileCacheControl)
	c.Data(http.StatusOK, tile.ContentType, tile.Data)
}
