package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(28.6, 77.2, 28.6, 77.2)
	assert.Equal(t, 0.0, d)
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Connaught Place to India Gate, New Delhi: roughly 2.2 km.
	d := HaversineDistance(28.6315, 77.2167, 28.6129, 77.2295)
	assert.InDelta(t, 2400, d, 300)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := HaversineDistance(-6.2088, 106.8456, 28.6139, 77.2090)
	d2 := HaversineDistance(28.6139, 77.2090, -6.2088, 106.8456)
	assert.Equal(t, d1, d2)
}

func TestHaversineDistance_SmallOffset(t *testing.T) {
	// One degree of latitude is ~111 km, so 0.001 degrees is ~111 m.
	d := HaversineDistance(28.6, 77.2, 28.601, 77.2)
	assert.InDelta(t, 111.2, d, 1.0)
}
