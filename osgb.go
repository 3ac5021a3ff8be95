package gridconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	footpointTolerance     = 0.001 // meters
	footpointMaxIterations = 30
)

// OSRef is an OSGB grid reference, in meters from the false origin of the
// British National Grid. Fractional values carry sub-meter precision.
type OSRef struct {
	Easting  float64
	Northing float64
}

// OSGBParams describes a Transverse Mercator grid in the style of the
// British National Grid.
type OSGBParams struct {
	Ellipsoid     Ellipsoid
	ScaleFactor   float64   // scale factor on the central meridian
	TrueOrigin    s2.LatLng // latitude of origin and central meridian
	FalseEasting  float64   // meters
	FalseNorthing float64   // meters
}

// NationalGrid holds the parameters of the British National Grid on the
// OSGB36 datum.
var NationalGrid = OSGBParams{
	Ellipsoid:     Airy1830,
	ScaleFactor:   0.9996012717,
	TrueOrigin:    s2.LatLngFromDegrees(49, -2),
	FalseEasting:  400000,
	FalseNorthing: -100000,
}

// OSGB converts between geodetic coordinates and OSGB grid references using
// the Redfearn series.
type OSGB struct {
	a, b     float64
	eSquared float64
	n        float64
	f0       float64
	phi0     float64
	lambda0  float64
	e0, n0   float64
}

// NewOSGB constructs an OSGB converter.
func NewOSGB(params OSGBParams) (*OSGB, error) {
	if err := params.Ellipsoid.validate(); err != nil {
		return nil, err
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (params.ScaleFactor < minScaleFactor) || (params.ScaleFactor > maxScaleFactor) {
		return nil, errScaleFactor
	}
	if math.Abs(params.TrueOrigin.Lat.Radians()) > math.Pi/2 {
		return nil, errOriginLat
	}

	return &OSGB{
		a:        params.Ellipsoid.SemiMajorAxis,
		b:        params.Ellipsoid.SemiMinorAxis,
		eSquared: params.Ellipsoid.EccentricitySquared,
		n:        params.Ellipsoid.N(),
		f0:       params.ScaleFactor,
		phi0:     params.TrueOrigin.Lat.Radians(),
		lambda0:  params.TrueOrigin.Lng.Radians(),
		e0:       params.FalseEasting,
		n0:       params.FalseNorthing,
	}, nil
}

// meridionalArc is the scaled distance along the meridian from the latitude
// of the true origin to phi.
func (o *OSGB) meridionalArc(phi float64) float64 {
	n := o.n
	n2 := n * n
	n3 := n2 * n
	dPhi := phi - o.phi0
	sPhi := phi + o.phi0

	return o.b * o.f0 *
		((1+n+(5.0/4.0)*n2+(5.0/4.0)*n3)*dPhi -
			(3*n+3*n2+(21.0/8.0)*n3)*math.Sin(dPhi)*math.Cos(sPhi) +
			((15.0/8.0)*n2+(15.0/8.0)*n3)*math.Sin(2*dPhi)*math.Cos(2*sPhi) -
			(35.0/24.0)*n3*math.Sin(3*dPhi)*math.Cos(3*sPhi))
}

// radii returns the scaled transverse and meridional radii of curvature at
// phi.
func (o *OSGB) radii(phi float64) (v, rho float64) {
	d := 1.0 - o.eSquared*sinSquared(phi)
	v = o.a * o.f0 / math.Sqrt(d)
	rho = o.a * o.f0 * (1.0 - o.eSquared) * math.Pow(d, -1.5)
	return v, rho
}

// ConvertFromGeodetic projects geodetic coordinates onto the grid. Points
// far from the grid's region give meaningless but finite references.
func (o *OSGB) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) OSRef {
	phi := geodeticCoordinates.Lat.Radians()
	lambda := geodeticCoordinates.Lng.Radians()

	v, rho := o.radii(phi)
	etaSquared := v/rho - 1.0
	M := o.meridionalArc(phi)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	cos3Phi := cosPhi * cosPhi * cosPhi
	cos5Phi := cos3Phi * cosPhi * cosPhi
	tan2Phi := tanSquared(phi)
	tan4Phi := tan2Phi * tan2Phi

	I := M + o.n0
	II := (v / 2.0) * sinPhi * cosPhi
	III := (v / 24.0) * sinPhi * cos3Phi * (5.0 - tan2Phi + 9.0*etaSquared)
	IIIA := (v / 720.0) * sinPhi * cos5Phi * (61.0 - 58.0*tan2Phi + tan4Phi)
	IV := v * cosPhi
	V := (v / 6.0) * cos3Phi * (v/rho - tan2Phi)
	VI := (v / 120.0) * cos5Phi *
		(5.0 - 18.0*tan2Phi + tan4Phi + 14.0*etaSquared - 58.0*tan2Phi*etaSquared)

	l := lambda - o.lambda0
	l2 := l * l
	l3 := l2 * l
	l4 := l3 * l
	l5 := l4 * l
	l6 := l5 * l

	return OSRef{
		Easting:  o.e0 + IV*l + V*l3 + VI*l5,
		Northing: I + II*l2 + III*l4 + IIIA*l6,
	}
}

// footpointLatitude finds the latitude phi' whose meridional arc equals the
// northing measured from the true origin.
func (o *OSGB) footpointLatitude(northing float64) (float64, error) {
	aF0 := o.a * o.f0
	dN := northing - o.n0
	phi := dN/aF0 + o.phi0

	for n := 0; n < footpointMaxIterations; n++ {
		residual := dN - o.meridionalArc(phi)
		if math.Abs(residual) < footpointTolerance {
			return phi, nil
		}
		phi += residual / aF0
	}
	return 0, fmt.Errorf("northing %g: %w", northing, ErrNonConvergence)
}

// ConvertToGeodetic converts a grid reference to geodetic coordinates on the
// grid's ellipsoid.
func (o *OSGB) ConvertToGeodetic(ref OSRef) (s2.LatLng, error) {
	if math.IsNaN(ref.Easting) || math.IsInf(ref.Easting, 0) {
		return s2.LatLng{}, fmt.Errorf("easting %g: %w", ref.Easting, ErrOutsideGrid)
	}
	phiPrime, err := o.footpointLatitude(ref.Northing)
	if err != nil {
		return s2.LatLng{}, err
	}

	v, rho := o.radii(phiPrime)
	etaSquared := v/rho - 1.0

	tanPhi := math.Tan(phiPrime)
	tan2Phi := tanPhi * tanPhi
	tan4Phi := tan2Phi * tan2Phi
	tan6Phi := tan4Phi * tan2Phi
	secPhi := sec(phiPrime)
	v3 := v * v * v
	v5 := v3 * v * v
	v7 := v5 * v * v

	VII := tanPhi / (2 * rho * v)
	VIII := (tanPhi / (24.0 * rho * v3)) *
		(5.0 + 3.0*tan2Phi + etaSquared - 9.0*tan2Phi*etaSquared)
	IX := (tanPhi / (720.0 * rho * v5)) * (61.0 + 90.0*tan2Phi + 45.0*tan4Phi)
	X := secPhi / v
	XI := (secPhi / (6.0 * v3)) * (v/rho + 2*tan2Phi)
	XII := (secPhi / (120.0 * v5)) * (5.0 + 28.0*tan2Phi + 24.0*tan4Phi)
	XIIA := (secPhi / (5040.0 * v7)) *
		(61.0 + 662.0*tan2Phi + 1320.0*tan4Phi + 720.0*tan6Phi)

	e := ref.Easting - o.e0
	e2 := e * e
	e3 := e2 * e
	e4 := e3 * e
	e5 := e4 * e
	e6 := e5 * e
	e7 := e6 * e

	phi := phiPrime - VII*e2 + VIII*e4 - IX*e6
	lambda := o.lambda0 + X*e - XI*e3 + XII*e5 - XIIA*e7

	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}, nil
}
