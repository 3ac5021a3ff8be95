package gridconv_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/tzneal/gridconv"
)

func TestDistanceIdentical(t *testing.T) {
	for _, geo := range []s2.LatLng{
		s2.LatLngFromDegrees(0, 0),
		s2.LatLngFromDegrees(52.6576, 1.7174),
		s2.LatLngFromDegrees(90, 0),
		s2.LatLngFromDegrees(-90, 45),
		s2.LatLngFromDegrees(-33.123456789, 151.987654321),
	} {
		if d := gridconv.Distance(geo, geo); d != 0 {
			t.Errorf("%s: expected zero distance, got %g", geo, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := s2.LatLngFromDegrees(51.5, -0.1)
	b := s2.LatLngFromDegrees(55.95, -3.19)
	if gridconv.Distance(a, b) != gridconv.Distance(b, a) {
		t.Errorf("expected a symmetric distance, got %f and %f", gridconv.Distance(a, b), gridconv.Distance(b, a))
	}
}

func TestDistanceKnown(t *testing.T) {
	tcs := []struct {
		a, b     s2.LatLng
		expected float64
	}{
		{s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(0, 1), gridconv.EarthRadiusKm * math.Pi / 180},
		{s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(90, 0), gridconv.EarthRadiusKm * math.Pi / 2},
		{s2.LatLngFromDegrees(0, 0), s2.LatLngFromDegrees(0, 180), gridconv.EarthRadiusKm * math.Pi},
		{s2.LatLngFromDegrees(45, 10), s2.LatLngFromDegrees(-45, -170), gridconv.EarthRadiusKm * math.Pi},
	}
	for _, tc := range tcs {
		d := gridconv.Distance(tc.a, tc.b)
		if math.IsNaN(d) || math.Abs(d-tc.expected) > 1e-3 {
			t.Errorf("%s to %s: expected %f km, got %f", tc.a, tc.b, tc.expected, d)
		}
	}
}
