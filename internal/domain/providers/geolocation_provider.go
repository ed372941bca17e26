package providers

import (
	"context"
)

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// OriginProvider resolves the caller's current coordinate. It is a one-shot
// capability acquired once per session, independent of search invocations;
// it may fail or be denied, and every consumer must degrade gracefully when
// no origin is available.
type OriginProvider interface {
	Locate(ctx context.Context) (*Coordinates, error)
}
