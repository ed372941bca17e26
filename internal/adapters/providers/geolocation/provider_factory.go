package geolocation

import (
	"github.com/terminarz/terminarz/internal/domain/providers"
	"github.com/terminarz/terminarz/pkg/config"
)

// FromConfig selects an origin provider. Returns nil for "none": geolocation
// is optional and every consumer degrades gracefully without it.
func FromConfig(cfg config.GeolocationConfig) providers.OriginProvider {
	switch cfg.Provider {
	case "ipapi":
		return NewIPAPIProvider()
	case "static":
		return NewStaticProvider(cfg.Latitude, cfg.Longitude)
	default:
		return nil
	}
}
