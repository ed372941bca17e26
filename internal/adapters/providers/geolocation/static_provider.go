package geolocation

import (
	"context"
	"fmt"

	"github.com/terminarz/terminarz/internal/domain/providers"
)

// StaticProvider returns a fixed coordinate, for callers that already know
// where they are (and for tests).
type StaticProvider struct {
	coords providers.Coordinates
}

// NewStaticProvider creates a provider pinned to the given coordinate.
func NewStaticProvider(latitude, longitude float64) *StaticProvider {
	return &StaticProvider{
		coords: providers.Coordinates{Latitude: latitude, Longitude: longitude},
	}
}

// Locate returns the configured coordinate. A zero coordinate counts as
// unconfigured and resolves to an error, matching a denied geolocation
// request.
func (p *StaticProvider) Locate(ctx context.Context) (*providers.Coordinates, error) {
	if p.coords.Latitude == 0 && p.coords.Longitude == 0 {
		return nil, fmt.Errorf("no static origin configured")
	}
	c := p.coords
	return &c, nil
}
