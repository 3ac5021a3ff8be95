package gridconv

import "errors"

// Errors reported by the converters and codecs. Returned errors wrap one of
// these and can be tested with errors.Is.
var (
	// ErrMalformedGridString is returned when a six-figure grid reference or
	// UTM reference string cannot be parsed.
	ErrMalformedGridString = errors.New("malformed grid reference")
	// ErrOutsideGrid is returned when an OSGB reference has no 100km square
	// letter pair, or has an easting that is not a finite number.
	ErrOutsideGrid = errors.New("grid reference outside the national grid")
	// ErrOutOfLatitudeBand is returned for latitudes outside [-80, 84]
	// degrees, which have no UTM latitude band.
	ErrOutOfLatitudeBand = errors.New("latitude outside UTM latitude bands")
	// ErrLongitudeOutOfRange is returned for longitudes outside [-180, 180].
	ErrLongitudeOutOfRange = errors.New("longitude out of range")
	// ErrInvalidZone is returned for a UTM zone number or letter that does
	// not exist.
	ErrInvalidZone = errors.New("invalid UTM zone")
	// ErrNonConvergence is returned when an iterative latitude solve does not
	// settle within its iteration limit.
	ErrNonConvergence = errors.New("latitude iteration did not converge")
)

var (
	errSemiMajorAxis = errors.New("semi-major axis must be greater than zero")
	errSemiMinorAxis = errors.New("semi-minor axis must be positive and no greater than the semi-major axis")
	errScaleFactor   = errors.New("scale factor out of range")
	errOriginLat     = errors.New("origin latitude out of range")
)
