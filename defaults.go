package gridconv

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// DefaultOSGBConverter is a British National Grid converter on OSGB36.
var DefaultOSGBConverter *OSGB

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

func init() {
	var err error
	DefaultOSGBConverter, err = NewOSGB(NationalGrid)
	if err != nil {
		panic(fmt.Sprintf("error constructing OSGB converter: %s", err))
	}
	DefaultUTMConverter, err = NewUTM(UniversalTransverseMercator)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}

// ToOSRef projects an OSGB36 point onto the British National Grid.
func ToOSRef(geodeticCoordinates s2.LatLng) OSRef {
	return DefaultOSGBConverter.ConvertFromGeodetic(geodeticCoordinates)
}

// LatLng converts the reference to an OSGB36 point.
func (r OSRef) LatLng() (s2.LatLng, error) {
	return DefaultOSGBConverter.ConvertToGeodetic(r)
}

// ToUTMCoord converts a WGS84 point to a UTM coordinate.
func ToUTMCoord(geodeticCoordinates s2.LatLng) (UTMCoord, error) {
	return DefaultUTMConverter.ConvertFromGeodetic(geodeticCoordinates)
}

// LatLng converts the coordinate to a WGS84 point.
func (c UTMCoord) LatLng() (s2.LatLng, error) {
	return DefaultUTMConverter.ConvertToGeodetic(c)
}

// ToWGS84 converts an OSGB36 point to WGS84.
func ToWGS84(geodeticCoordinates s2.LatLng) (s2.LatLng, error) {
	return OSGB36ToWGS84.Transform(geodeticCoordinates)
}

// ToOSGB36 converts a WGS84 point to OSGB36.
func ToOSGB36(geodeticCoordinates s2.LatLng) (s2.LatLng, error) {
	return WGS84ToOSGB36.Transform(geodeticCoordinates)
}
