// Package location turns user input into coordinates: free-text searches go
// through the geocoder, device positions come from the browser.
package location

import (
	"context"

	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
	"weathermap.app/pkg/validation"
)

const (
	MsgNotFound               = "Location not found. Please try again."
	MsgSearchFailed           = "Error finding location. Please try again."
	MsgGeolocationUnsupported = "Geolocation is not supported by this browser."
	MsgGeolocationFailed      = "Unable to get your current location. Using default location."
)

// DevicePosition is what the browser reported for a geolocation request
type DevicePosition struct {
	Supported   bool
	Coordinates *ports.Coordinates
	// Error is the browser's reason when no position was obtained
	Error string
}

type UseCase struct {
	geocoder ports.Geocoder
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Geocoder ports.Geocoder
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		geocoder: deps.Geocoder,
		logger:   deps.Logger,
	}, nil
}

// Search resolves query to the best-ranked place. A blank query is rejected
// before anything is fetched.
func (uc *UseCase) Search(ctx context.Context, query string) (*ports.Place, error) {
	q, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("search query is empty")
	}

	places, err := uc.geocoder.Search(ctx, q, 1)
	if err != nil {
		uc.logger.Error("Geocoding failed", ports.F("query", q), ports.F("error", err))
		return nil, errors.NewExternalAPIError(MsgSearchFailed, err)
	}

	if len(places) == 0 {
		uc.logger.Info("Geocoding returned no results", ports.F("query", q))
		return nil, errors.NewNotFoundError(MsgNotFound)
	}

	place := places[0]
	uc.logger.Debug("Location resolved",
		ports.F("query", q),
		ports.F("place", place.Name),
		ports.F("coordinates", place.Coordinates.String()))
	return &place, nil
}

// FromDevice accepts the browser-reported position
func (uc *UseCase) FromDevice(_ context.Context, pos DevicePosition) (ports.Coordinates, error) {
	if !pos.Supported {
		return ports.Coordinates{}, errors.NewGeolocationError(MsgGeolocationUnsupported, nil)
	}

	if pos.Coordinates == nil {
		var cause error
		if pos.Error != "" {
			cause = errors.New(errors.GeolocationError, pos.Error)
		}
		uc.logger.Warn("Device position unavailable", ports.F("reason", pos.Error))
		return ports.Coordinates{}, errors.NewGeolocationError(MsgGeolocationFailed, cause)
	}

	c := *pos.Coordinates
	if !validation.IsValidLatitude(c.Latitude) || !validation.IsValidLongitude(c.Longitude) {
		return ports.Coordinates{}, errors.NewValidationError("device position is out of range")
	}
	return c, nil
}
