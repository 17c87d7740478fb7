package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weathermap.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := errorStatus(err)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.GeolocationError:
		return http.StatusUnprocessableEntity, appErr.Message
	case errorspkg.ExternalAPIError:
		if appErr.Message == "" {
			return http.StatusServiceUnavailable, "External service unavailable"
		}
		return http.StatusServiceUnavailable, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
