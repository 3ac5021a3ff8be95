package gridconv

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean radius of the sphere used by Distance.
const EarthRadiusKm = 6366.707

// Distance returns the great-circle distance in kilometers between a and b,
// using the spherical law of cosines on a sphere of radius EarthRadiusKm.
func Distance(a, b s2.LatLng) float64 {
	latA := a.Lat.Radians()
	latB := b.Lat.Radians()
	dLng := b.Lng.Radians() - a.Lng.Radians()

	// sin(latA)sin(latB) + cos(latA)cos(latB)cos(dLng), arranged to give
	// exactly 1 for identical points
	c := math.Cos(latA-latB) - math.Cos(latA)*math.Cos(latB)*(1-math.Cos(dLng))
	// rounding can push antipodal points just outside [-1, 1]
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * EarthRadiusKm
}
