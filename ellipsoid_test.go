package gridconv

import (
	"math"
	"testing"
)

func TestEllipsoidEccentricity(t *testing.T) {
	tcs := []struct {
		e        Ellipsoid
		expected float64
	}{
		{Airy1830, 0.00667054},
		{GRS80, 0.00669438},
		{WGS84, 0.00669438},
	}
	for _, tc := range tcs {
		if math.Abs(tc.e.EccentricitySquared-tc.expected) > 1e-8 {
			t.Errorf("%+v: expected eccentricity squared %g", tc.e, tc.expected)
		}
	}
	if DefaultEllipsoid != Airy1830 {
		t.Errorf("expected Airy 1830 as the default ellipsoid")
	}
}

func TestTrigHelpers(t *testing.T) {
	x := 0.7
	if math.Abs(sinSquared(x)+math.Pow(math.Cos(x), 2)-1) > 1e-15 {
		t.Errorf("sin²x + cos²x != 1")
	}
	if math.Abs(tanSquared(x)+1-sec(x)*sec(x)) > 1e-14 {
		t.Errorf("tan²x + 1 != sec²x")
	}
}

func TestMeridionalArcAtOrigin(t *testing.T) {
	o, err := NewOSGB(NationalGrid)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if m := o.meridionalArc(o.phi0); m != 0 {
		t.Errorf("expected zero arc at the true origin, got %g", m)
	}
	u, err := NewUTM(UniversalTransverseMercator)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if m := u.meridionalArc(0); m != 0 {
		t.Errorf("expected zero arc at the equator, got %g", m)
	}
}
