package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/terminarz/terminarz/internal/domain/providers"
	"github.com/terminarz/terminarz/pkg/retry"
)

const (
	ipAPIURL           = "http://ip-api.com/json/"
	defaultHTTPTimeout = 8 * time.Second
)

// IPAPIProvider approximates the caller's origin from their public IP via
// the ip-api.com lookup service. Unlike the registry client it retries,
// since failures here are transient and carry no user-input meaning.
type IPAPIProvider struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewIPAPIProvider creates a new IP-based origin provider.
func NewIPAPIProvider() *IPAPIProvider {
	return NewIPAPIProviderWithOptions(ipAPIURL, nil)
}

// NewIPAPIProviderWithOptions allows overriding base URL and HTTP client
// (used for tests).
func NewIPAPIProviderWithOptions(baseURL string, httpClient *http.Client) *IPAPIProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = ipAPIURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &IPAPIProvider{
		baseURL:    baseURL,
		httpClient: httpClient,
		retryCfg:   retry.DefaultConfig(),
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves the caller's coordinate from their public IP.
func (p *IPAPIProvider) Locate(ctx context.Context) (*providers.Coordinates, error) {
	var coords *providers.Coordinates

	err := retry.Do(ctx, p.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build geolocation request: %w", err)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("geolocation request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("geolocation request returned status %d", resp.StatusCode)
		}

		var payload ipAPIResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode geolocation response: %w", err)
		}

		if payload.Status != "success" {
			if payload.Message != "" {
				return fmt.Errorf("geolocation lookup failed: %s", payload.Message)
			}
			return fmt.Errorf("geolocation lookup failed: %s", payload.Status)
		}

		coords = &providers.Coordinates{
			Latitude:  payload.Lat,
			Longitude: payload.Lon,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return coords, nil
}
