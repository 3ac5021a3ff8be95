// Package gridconv converts geodetic coordinates to and from the British
// National Grid and the Universal Transverse Mercator grid, and between the
// OSGB36 and WGS84 datums.
package gridconv

// Ellipsoid is a reference ellipsoid defined by its semi-major and
// semi-minor axes in meters.
type Ellipsoid struct {
	SemiMajorAxis       float64
	SemiMinorAxis       float64
	EccentricitySquared float64
}

// Reference ellipsoids
var (
	Airy1830 = NewEllipsoid(6377563.396, 6356256.909)
	GRS80    = NewEllipsoid(6378137.0, 6356752.3141)
	WGS84    = NewEllipsoid(6378137.0, 6356752.3142)
)

// DefaultEllipsoid is the ellipsoid of the OSGB36 datum.
var DefaultEllipsoid = Airy1830

// NewEllipsoid constructs an ellipsoid, deriving its eccentricity squared.
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) Ellipsoid {
	a2 := semiMajorAxis * semiMajorAxis
	b2 := semiMinorAxis * semiMinorAxis
	return Ellipsoid{
		SemiMajorAxis:       semiMajorAxis,
		SemiMinorAxis:       semiMinorAxis,
		EccentricitySquared: (a2 - b2) / a2,
	}
}

// N returns Helmert's n, (a - b)/(a + b).
func (e Ellipsoid) N() float64 {
	return (e.SemiMajorAxis - e.SemiMinorAxis) / (e.SemiMajorAxis + e.SemiMinorAxis)
}

// EPrimeSquared returns the second eccentricity squared.
func (e Ellipsoid) EPrimeSquared() float64 {
	return e.EccentricitySquared / (1 - e.EccentricitySquared)
}

func (e Ellipsoid) validate() error {
	if e.SemiMajorAxis <= 0.0 {
		return errSemiMajorAxis
	}
	if e.SemiMinorAxis <= 0.0 || e.SemiMinorAxis > e.SemiMajorAxis {
		return errSemiMinorAxis
	}
	return nil
}
