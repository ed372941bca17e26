package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(52.2297, 21.0122, 52.2297, 21.0122))
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{52.2297, 21.0122, 50.0647, 19.9450},
		{54.3520, 18.6466, 51.1079, 17.0385},
		{-33.8688, 151.2093, 40.7128, -74.0060},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_WarsawToKrakow(t *testing.T) {
	// Known reference distance, about 252 km.
	km := RoundKm(Distance(52.2297, 21.0122, 50.0647, 19.9450))
	assert.InDelta(t, 252.0, km, 1.0)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 252.0, RoundKm(252.04))
	assert.Equal(t, 252.1, RoundKm(252.05))
	assert.Equal(t, 0.0, RoundKm(0.0))
}
