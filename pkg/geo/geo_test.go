package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(28.6139, 77.2090, 28.6139, 77.2090))
	assert.Equal(t, 0.0, DistanceMeters(0, 0, 0, 0))
	assert.Equal(t, 0.0, DistanceMeters(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(28.6139, 77.2090, 28.5355, 77.3910)
	d2 := DistanceMeters(28.5355, 77.3910, 28.6139, 77.2090)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceMeters_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.2 km everywhere on the sphere.
	d := DistanceMeters(28.0, 77.0, 29.0, 77.0)
	assert.InDelta(t, 111195.0, d, 111195.0*0.01)
}

func TestDistanceMeters_KnownNeighborhoodDistance(t *testing.T) {
	// Connaught Place to India Gate, roughly 2.2 km.
	d := DistanceMeters(28.6315, 77.2167, 28.6129, 77.2295)
	assert.Greater(t, d, 2000.0)
	assert.Less(t, d, 2700.0)
}
