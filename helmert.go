package gridconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// arcsecond is one second of arc.
const arcsecond = s1.Degree / 3600

const (
	geodeticLatTolerance     = 1.0e-12 // radians
	geodeticLatMaxIterations = 30
)

// HelmertParams are the seven parameters of a small-rotation Helmert
// transform between two geocentric Cartesian frames.
type HelmertParams struct {
	Tx, Ty, Tz float64  // translation in meters
	Rx, Ry, Rz s1.Angle // rotation about each axis
	S          float64  // scale change, unitless
}

// OSGB36ToWGS84Params are the published OSGB36 to WGS84 parameters, valid to
// a few meters over Great Britain.
var OSGB36ToWGS84Params = HelmertParams{
	Tx: 446.448,
	Ty: -124.157,
	Tz: 542.060,
	Rx: 0.1502 * arcsecond,
	Ry: 0.2470 * arcsecond,
	Rz: 0.8421 * arcsecond,
	S:  -0.0000204894,
}

// Inverse returns the parameters with every sign negated. This is a first
// order approximation of the inverse transform, adequate only where the
// parameters were fitted; it is not the analytic inverse.
func (p HelmertParams) Inverse() HelmertParams {
	return HelmertParams{
		Tx: -p.Tx, Ty: -p.Ty, Tz: -p.Tz,
		Rx: -p.Rx, Ry: -p.Ry, Rz: -p.Rz,
		S: -p.S,
	}
}

func (p HelmertParams) apply(x, y, z float64) (xB, yB, zB float64) {
	rx := p.Rx.Radians()
	ry := p.Ry.Radians()
	rz := p.Rz.Radians()
	s := 1 + p.S

	xB = p.Tx + x*s - rx*y + ry*z
	yB = p.Ty + rz*x + y*s - rx*z
	zB = p.Tz - ry*x + rx*y + z*s
	return xB, yB, zB
}

// DatumTransform moves geodetic coordinates from the datum of one ellipsoid
// to another through a Helmert transform of their geocentric coordinates.
type DatumTransform struct {
	From   Ellipsoid
	To     Ellipsoid
	Params HelmertParams
}

// Predefined datum transforms. WGS84ToOSGB36 uses the negated parameters and
// so is only an approximate inverse of OSGB36ToWGS84.
var (
	OSGB36ToWGS84 = DatumTransform{From: Airy1830, To: WGS84, Params: OSGB36ToWGS84Params}
	WGS84ToOSGB36 = OSGB36ToWGS84.Inverse()
)

// Inverse returns the transform in the opposite direction, using
// HelmertParams.Inverse.
func (d DatumTransform) Inverse() DatumTransform {
	return DatumTransform{From: d.To, To: d.From, Params: d.Params.Inverse()}
}

// Transform converts a point on the From datum to the To datum. Height is
// taken to be zero.
func (d DatumTransform) Transform(geodeticCoordinates s2.LatLng) (s2.LatLng, error) {
	x, y, z := toGeocentric(d.From, geodeticCoordinates)
	xB, yB, zB := d.Params.apply(x, y, z)
	return fromGeocentric(d.To, xB, yB, zB)
}

// toGeocentric converts geodetic coordinates at zero height on the given
// ellipsoid to geocentric Cartesian coordinates.
func toGeocentric(e Ellipsoid, geodeticCoordinates s2.LatLng) (x, y, z float64) {
	phi := geodeticCoordinates.Lat.Radians()
	lambda := geodeticCoordinates.Lng.Radians()

	v := e.SemiMajorAxis / math.Sqrt(1-e.EccentricitySquared*sinSquared(phi))
	x = v * math.Cos(phi) * math.Cos(lambda)
	y = v * math.Cos(phi) * math.Sin(lambda)
	z = (1 - e.EccentricitySquared) * v * math.Sin(phi)
	return x, y, z
}

// fromGeocentric recovers geodetic coordinates on the given ellipsoid. The
// latitude is found by fixed point iteration.
func fromGeocentric(e Ellipsoid, x, y, z float64) (s2.LatLng, error) {
	a := e.SemiMajorAxis
	eSquared := e.EccentricitySquared

	lambda := math.Atan2(y, x)
	p := math.Sqrt(x*x + y*y)
	phi := math.Atan(z / (p * (1 - eSquared)))

	for n := 0; n < geodeticLatMaxIterations; n++ {
		v := a / math.Sqrt(1-eSquared*sinSquared(phi))
		next := math.Atan((z + eSquared*v*math.Sin(phi)) / p)
		if math.Abs(next-phi) < geodeticLatTolerance {
			return s2.LatLng{Lat: s1.Angle(next), Lng: s1.Angle(lambda)}, nil
		}
		phi = next
	}
	return s2.LatLng{}, fmt.Errorf("geocentric (%g, %g, %g): %w", x, y, z, ErrNonConvergence)
}
