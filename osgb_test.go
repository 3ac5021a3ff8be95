package gridconv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/gridconv"
)

// worked example from the Ordnance Survey guide to coordinate systems
var (
	osExampleLatLng = s2.LatLngFromDegrees(52+39.0/60+27.2531/3600, 1+43.0/60+4.5177/3600)
	osExampleRef    = gridconv.OSRef{Easting: 651409.903, Northing: 313177.270}
)

func TestOSGBFromGeodetic(t *testing.T) {
	ref := gridconv.ToOSRef(osExampleLatLng)
	const epsilon = 0.02 // meters
	if math.Abs(ref.Easting-osExampleRef.Easting) > epsilon {
		t.Errorf("got Easting %f, expected %f", ref.Easting, osExampleRef.Easting)
	}
	if math.Abs(ref.Northing-osExampleRef.Northing) > epsilon {
		t.Errorf("got Northing %f, expected %f", ref.Northing, osExampleRef.Northing)
	}
}

func TestOSGBToGeodetic(t *testing.T) {
	geo, err := osExampleRef.LatLng()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	const epsilon = 1e-6 // degrees
	if math.Abs(geo.Lat.Degrees()-osExampleLatLng.Lat.Degrees()) > epsilon ||
		math.Abs(geo.Lng.Degrees()-osExampleLatLng.Lng.Degrees()) > epsilon {
		t.Errorf("expected %s, got %s", osExampleLatLng, geo)
	}
}

func TestOSGBRoundTrip(t *testing.T) {
	osgb, err := gridconv.NewOSGB(gridconv.NationalGrid)
	if err != nil {
		t.Fatalf("error creating OSGB converter: %s", err)
	}
	const inc = 0.25
	const epsilon = 1e-5
	for lat := 49.0; lat <= 61; lat += inc {
		for lng := -7.0; lng <= 2; lng += inc {
			geo := s2.LatLngFromDegrees(lat, lng)
			ref := osgb.ConvertFromGeodetic(geo)
			geo2, err := osgb.ConvertToGeodetic(ref)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %s (%s)", geo, err)
			}
			if math.Abs(geo2.Lat.Degrees()-lat) > epsilon || math.Abs(geo2.Lng.Degrees()-lng) > epsilon {
				t.Fatalf("expected %s, got %s via %s", geo, geo2, ref)
			}
		}
	}
}

func TestOSGBNorfolkRoundTrip(t *testing.T) {
	geo := s2.LatLngFromDegrees(52.6576, 1.7174)
	ref := gridconv.ToOSRef(geo)
	if ref.Easting < 651000 || ref.Easting > 652000 || ref.Northing < 313000 || ref.Northing > 314000 {
		t.Errorf("unexpected reference %s", ref)
	}
	geo2, err := ref.LatLng()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(geo2.Lat.Degrees()-52.6576) > 1e-5 || math.Abs(geo2.Lng.Degrees()-1.7174) > 1e-5 {
		t.Errorf("expected %s, got %s", geo, geo2)
	}
}

func TestOSGBTrueOrigin(t *testing.T) {
	ref := gridconv.ToOSRef(s2.LatLng{Lat: 49 * s1.Degree, Lng: -2 * s1.Degree})
	if math.Abs(ref.Easting-400000) > 1e-6 || math.Abs(ref.Northing+100000) > 1e-6 {
		t.Errorf("expected the false origin, got %s", ref)
	}
}

func TestOSGBNonConvergence(t *testing.T) {
	_, err := gridconv.OSRef{Easting: 400000, Northing: math.NaN()}.LatLng()
	if !errors.Is(err, gridconv.ErrNonConvergence) {
		t.Errorf("expected ErrNonConvergence, got %v", err)
	}
}

func TestOSGBNonFiniteEasting(t *testing.T) {
	for _, e := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := gridconv.OSRef{Easting: e, Northing: 313177}.LatLng()
		if !errors.Is(err, gridconv.ErrOutsideGrid) {
			t.Errorf("easting %g: expected ErrOutsideGrid, got %v", e, err)
		}
	}
}

func TestNewOSGBValidation(t *testing.T) {
	params := gridconv.NationalGrid
	params.ScaleFactor = 100
	if _, err := gridconv.NewOSGB(params); err == nil {
		t.Errorf("expected an error for a large scale factor")
	}
	params = gridconv.NationalGrid
	params.Ellipsoid = gridconv.NewEllipsoid(6377563.396, 6477563.396)
	if _, err := gridconv.NewOSGB(params); err == nil {
		t.Errorf("expected an error for a minor axis larger than the major axis")
	}
	params = gridconv.NationalGrid
	params.TrueOrigin = s2.LatLngFromDegrees(91, 0)
	if _, err := gridconv.NewOSGB(params); err == nil {
		t.Errorf("expected an error for an origin latitude beyond the pole")
	}
}
