package gridconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// InvalidZoneLetter is returned with ErrOutOfLatitudeBand for latitudes that
// have no UTM latitude band.
const InvalidZoneLetter = 'Z'

// zoneLetters are the UTM latitude band letters, 8 degrees each, starting at
// 80 degrees south. X is extended to 84 degrees north.
const zoneLetters = "CDEFGHJKLMNPQRSTUVWX"

const (
	utmMinLat = -80.0 // degrees
	utmMaxLat = 84.0  // degrees
)

// UTMCoord is a UTM coordinate
type UTMCoord struct {
	Zone     int  // longitude zone, 1 to 60
	Letter   byte // latitude band letter
	Easting  float64
	Northing float64
}

// Hemisphere returns the hemisphere implied by the latitude band letter.
func (c UTMCoord) Hemisphere() Hemisphere {
	if strings.IndexByte(zoneLetters, c.Letter) < 0 {
		return HemisphereInvalid
	}
	if c.Letter < 'N' {
		return HemisphereSouth
	}
	return HemisphereNorth
}

// UTMParams describes a UTM style grid.
type UTMParams struct {
	Ellipsoid             Ellipsoid
	ScaleFactor           float64 // scale factor on the central meridians
	FalseEasting          float64 // meters
	SouthernFalseNorthing float64 // meters, added south of the equator
}

// UniversalTransverseMercator holds the parameters of the UTM grid on WGS84.
var UniversalTransverseMercator = UTMParams{
	Ellipsoid:             WGS84,
	ScaleFactor:           0.9996,
	FalseEasting:          500000.0,
	SouthernFalseNorthing: 10000000.0,
}

// UTM is a UTM coordinate converter
type UTM struct {
	a             float64
	eSquared      float64
	ePrimeSquared float64
	f0            float64
	falseEasting  float64
	falseNorthing float64
}

// NewUTM constructs a new UTM converter.
func NewUTM(params UTMParams) (*UTM, error) {
	if err := params.Ellipsoid.validate(); err != nil {
		return nil, err
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (params.ScaleFactor < minScaleFactor) || (params.ScaleFactor > maxScaleFactor) {
		return nil, errScaleFactor
	}
	return &UTM{
		a:             params.Ellipsoid.SemiMajorAxis,
		eSquared:      params.Ellipsoid.EccentricitySquared,
		ePrimeSquared: params.Ellipsoid.EPrimeSquared(),
		f0:            params.ScaleFactor,
		falseEasting:  params.FalseEasting,
		falseNorthing: params.SouthernFalseNorthing,
	}, nil
}

// ZoneNumber returns the UTM longitude zone containing the point, including
// the exceptions over southern Norway and Svalbard.
func ZoneNumber(geodeticCoordinates s2.LatLng) (int, error) {
	lat := zoneDegrees(geodeticCoordinates.Lat)
	lng := zoneDegrees(geodeticCoordinates.Lng)
	if lng < -180 || lng > 180 || math.IsNaN(lng) {
		return 0, fmt.Errorf("%g: %w", lng, ErrLongitudeOutOfRange)
	}

	zone := int(math.Floor((lng+180)/6)) + 1
	if zone > 60 {
		// 180 degrees east belongs to the last zone
		zone = 60
	}

	// special zone cases over southern Norway and Svalbard
	if lat >= 56 && lat < 64 && lng >= 3 && lng < 12 {
		zone = 32
	}
	if lat >= 72 && lat < 84 {
		switch {
		case lng >= 0 && lng < 9:
			zone = 31
		case lng >= 9 && lng < 21:
			zone = 33
		case lng >= 21 && lng < 33:
			zone = 35
		case lng >= 33 && lng < 42:
			zone = 37
		}
	}
	return zone, nil
}

// LatitudeZoneLetter returns the UTM latitude band letter for a latitude in
// degrees. Outside [-80, 84] it returns InvalidZoneLetter and
// ErrOutOfLatitudeBand.
func LatitudeZoneLetter(latitude float64) (byte, error) {
	if !(latitude >= utmMinLat && latitude <= utmMaxLat) {
		return InvalidZoneLetter, fmt.Errorf("%g: %w", latitude, ErrOutOfLatitudeBand)
	}
	band := int(math.Floor((latitude - utmMinLat) / 8))
	if band >= len(zoneLetters) {
		band = len(zoneLetters) - 1
	}
	return zoneLetters[band], nil
}

// zoneDegrees converts an angle to degrees for zone lookups, snapping to
// 1e-9 degrees so that boundaries given in degrees survive the conversion
// through radians.
func zoneDegrees(a s1.Angle) float64 {
	return math.Round(a.Degrees()*1e9) / 1e9
}

// CentralMeridian returns the longitude of the central meridian of a zone.
func CentralMeridian(zone int) s1.Angle {
	return s1.Angle(float64((zone-1)*6-180+3)) * s1.Degree
}

// meridionalArc is the distance along the meridian from the equator to phi.
func (u *UTM) meridionalArc(phi float64) float64 {
	e2 := u.eSquared
	e4 := e2 * e2
	e6 := e4 * e2
	return u.a * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to UTM projection (zone, latitude band, easting and northing) coordinates.
func (u *UTM) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (UTMCoord, error) {
	zone, err := ZoneNumber(geodeticCoordinates)
	if err != nil {
		return UTMCoord{}, err
	}
	letter, err := LatitudeZoneLetter(zoneDegrees(geodeticCoordinates.Lat))
	if err != nil {
		return UTMCoord{}, err
	}

	phi := geodeticCoordinates.Lat.Radians()
	lambda := geodeticCoordinates.Lng.Radians()
	lambda0 := CentralMeridian(zone).Radians()

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := u.a / math.Sqrt(1-u.eSquared*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := u.ePrimeSquared * cosPhi * cosPhi
	A := cosPhi * (lambda - lambda0)
	M := u.meridionalArc(phi)

	A2 := A * A
	A3 := A2 * A
	A4 := A3 * A
	A5 := A4 * A
	A6 := A5 * A

	easting := u.f0*n*(A+
		(1-t+c)*A3/6+
		(5-18*t+t*t+72*c-58*u.ePrimeSquared)*A5/120) + u.falseEasting

	northing := u.f0 * (M + n*tanPhi*(A2/2+
		(5-t+9*c+4*c*c)*A4/24+
		(61-58*t+t*t+600*c-330*u.ePrimeSquared)*A6/720))

	// follow the band letter so points snapped onto the equator stay north
	if letter < 'N' {
		northing += u.falseNorthing
	}

	return UTMCoord{
		Zone:     zone,
		Letter:   letter,
		Easting:  easting,
		Northing: northing,
	}, nil
}

// ConvertToGeodetic converts UTM projection coordinates to geodetic
// (latitude and longitude) coordinates.
func (u *UTM) ConvertToGeodetic(utmCoordinates UTMCoord) (s2.LatLng, error) {
	if (utmCoordinates.Zone < 1) || (utmCoordinates.Zone > 60) {
		return s2.LatLng{}, fmt.Errorf("zone %d: %w", utmCoordinates.Zone, ErrInvalidZone)
	}
	hemisphere := utmCoordinates.Hemisphere()
	if hemisphere == HemisphereInvalid {
		return s2.LatLng{}, fmt.Errorf("latitude band %q: %w", utmCoordinates.Letter, ErrInvalidZone)
	}

	e2 := u.eSquared
	e4 := e2 * e2
	e6 := e4 * e2
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	e1Sq := e1 * e1
	e1Cu := e1Sq * e1
	e1Qu := e1Cu * e1

	x := utmCoordinates.Easting - u.falseEasting
	y := utmCoordinates.Northing
	if hemisphere == HemisphereSouth {
		y -= u.falseNorthing
	}

	m := y / u.f0
	mu := m / (u.a * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	phi1 := mu +
		(3*e1/2-27*e1Cu/32)*math.Sin(2*mu) +
		(21*e1Sq/16-55*e1Qu/32)*math.Sin(4*mu) +
		(151*e1Cu/96)*math.Sin(6*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)
	w := 1 - e2*sinPhi1*sinPhi1

	n := u.a / math.Sqrt(w)
	t := tanPhi1 * tanPhi1
	c := u.ePrimeSquared * cosPhi1 * cosPhi1
	r := u.a * (1 - e2) / math.Pow(w, 1.5)
	d := x / (n * u.f0)

	dd2 := d * d
	dd3 := dd2 * d
	dd4 := dd3 * d
	dd5 := dd4 * d
	dd6 := dd5 * d

	latitude := phi1 - (n*tanPhi1/r)*(dd2/2-
		(5+3*t+10*c-4*c*c-9*u.ePrimeSquared)*dd4/24+
		(61+90*t+298*c+45*t*t-252*u.ePrimeSquared-3*c*c)*dd6/720)

	longitude := CentralMeridian(utmCoordinates.Zone).Radians() + (d-
		(1+2*t+c)*dd3/6+
		(5-2*c+28*t-3*c*c+8*u.ePrimeSquared+24*t*t)*dd5/120)/cosPhi1

	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

// String formats the coordinate as "<zone><letter> <easting> <northing>".
func (c UTMCoord) String() string {
	return fmt.Sprintf("%d%c %s %s", c.Zone, c.Letter,
		strconv.FormatFloat(c.Easting, 'f', -1, 64),
		strconv.FormatFloat(c.Northing, 'f', -1, 64))
}

// ParseUTMCoord parses a coordinate in the form produced by UTMCoord.String,
// for example "31N 500000 0".
func ParseUTMCoord(s string) (UTMCoord, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return UTMCoord{}, fmt.Errorf("%q: want zone, easting and northing: %w", s, ErrMalformedGridString)
	}
	zoneField := fields[0]
	if len(zoneField) < 2 {
		return UTMCoord{}, fmt.Errorf("%q: missing zone: %w", s, ErrMalformedGridString)
	}
	letter := zoneField[len(zoneField)-1]
	zone, err := strconv.Atoi(zoneField[:len(zoneField)-1])
	if err != nil {
		return UTMCoord{}, fmt.Errorf("%q: zone number: %w", s, ErrMalformedGridString)
	}
	if zone < 1 || zone > 60 || strings.IndexByte(zoneLetters, letter) < 0 {
		return UTMCoord{}, fmt.Errorf("%q: %w", s, ErrInvalidZone)
	}
	easting, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(easting) || math.IsInf(easting, 0) {
		return UTMCoord{}, fmt.Errorf("%q: easting: %w", s, ErrMalformedGridString)
	}
	northing, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(northing) || math.IsInf(northing, 0) {
		return UTMCoord{}, fmt.Errorf("%q: northing: %w", s, ErrMalformedGridString)
	}
	return UTMCoord{Zone: zone, Letter: letter, Easting: easting, Northing: northing}, nil
}
