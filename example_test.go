package gridconv_test

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/gridconv"
)

func ExampleToOSRef() {
	ref := gridconv.ToOSRef(s2.LatLngFromDegrees(52.657570301, 1.717921583))
	s, _ := ref.SixFigure()
	fmt.Println(s)
	// Output: TG514131
}

func ExampleParseSixFigure() {
	ref, _ := gridconv.ParseSixFigure("TG514131")
	fmt.Println(ref)
	// Output: (651400, 313100)
}

func ExampleToUTMCoord() {
	utm, _ := gridconv.ToUTMCoord(s2.LatLngFromDegrees(0, 3))
	fmt.Println(utm)
	// Output: 31N 500000 0
}

func ExampleToWGS84() {
	wgs, _ := gridconv.ToWGS84(s2.LatLngFromDegrees(52.657570301, 1.717921583))
	fmt.Println(wgs.Lat.Degrees() > 52.6, wgs.Lng.Degrees() < 1.72)
	// Output: true true
}
