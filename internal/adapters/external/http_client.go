// Package external provides adapters for the OpenWeatherMap APIs and the
// response cache backends.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"weathermap.app/internal/ports"
	"weathermap.app/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(client HTTPClient, timeout time.Duration) HTTPClient {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// upstream is the request plumbing shared by the OpenWeatherMap adapters
type upstream struct {
	service string
	client  HTTPClient
	logger  ports.Logger
}

// get issues a GET bound to ctx and returns the response body when the status is 200
func (u upstream) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("failed to build %s request", u.service), err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", u.service), err)
	}

	if resp.StatusCode != http.StatusOK {
		u.close(resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("%s returned status %d", u.service, resp.StatusCode))
		}
		return nil, errors.NewExternalAPIError(fmt.Sprintf("%s returned status %d", u.service, resp.StatusCode), nil)
	}

	return resp.Body, nil
}

// getJSON decodes a 200 response into target
func (u upstream) getJSON(ctx context.Context, url string, target interface{}) error {
	body, err := u.get(ctx, url)
	if err != nil {
		return err
	}
	defer u.close(body)

	if err := json.NewDecoder(body).Decode(target); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", u.service), err)
	}
	return nil
}

func (u upstream) close(body io.Closer) {
	if closeErr := body.Close(); closeErr != nil {
		u.logger.Warn("Failed to close response body",
			ports.F("service", u.service),
			ports.F("error", closeErr))
	}
}
