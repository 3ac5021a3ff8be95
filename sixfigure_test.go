package gridconv_test

import (
	"errors"
	"testing"

	"github.com/tzneal/gridconv"
)

func TestParseSixFigure(t *testing.T) {
	tcs := []struct {
		ref      string
		easting  float64
		northing float64
	}{
		{"TG514131", 651400, 313100},
		{"SV000000", 0, 0},
		{"SZ999999", 499900, 99900},
		{"NN166712", 216600, 771200},
		{"OV123456", 512300, 545600},
		{"HP999999", 499900, 1299900},
		{"HV000000", 0, 1000000},
	}
	for _, tc := range tcs {
		ref, err := gridconv.ParseSixFigure(tc.ref)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", tc.ref, err)
		}
		if ref.Easting != tc.easting || ref.Northing != tc.northing {
			t.Errorf("%s: expected (%f, %f), got %s", tc.ref, tc.easting, tc.northing, ref)
		}
		s, err := ref.SixFigure()
		if err != nil {
			t.Fatalf("%s: unexpected error %s", tc.ref, err)
		}
		if s != tc.ref {
			t.Errorf("expected %s, got %s", tc.ref, s)
		}
	}
}

func TestSixFigureAllSquares(t *testing.T) {
	const letters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	for _, first := range "HNOST" {
		for _, second := range letters {
			want := string(first) + string(second) + "507250"
			ref, err := gridconv.ParseSixFigure(want)
			if err != nil {
				t.Fatalf("%s: unexpected error %s", want, err)
			}
			got, err := ref.SixFigure()
			if err != nil {
				t.Fatalf("%s: unexpected error %s", want, err)
			}
			if got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}
	}
}

func TestSixFigureTruncates(t *testing.T) {
	s, err := gridconv.OSRef{Easting: 651409.903, Northing: 313177.270}.SixFigure()
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if s != "TG514131" {
		t.Errorf("expected TG514131, got %s", s)
	}
}

func TestParseSixFigureMalformed(t *testing.T) {
	for _, ref := range []string{
		"",
		"TG51413",
		"TG5141311",
		"AG514131",
		"JG514131",
		"TI514131",
		"Tg514131",
		"tg514131",
		"TG51413X",
		"TG 14131",
		"TG-14131",
	} {
		if _, err := gridconv.ParseSixFigure(ref); !errors.Is(err, gridconv.ErrMalformedGridString) {
			t.Errorf("%q: expected ErrMalformedGridString, got %v", ref, err)
		}
	}
}

func TestSixFigureOutsideGrid(t *testing.T) {
	for _, ref := range []gridconv.OSRef{
		{Easting: -1, Northing: 0},
		{Easting: 0, Northing: -0.5},
		{Easting: 1000000, Northing: 0},
		{Easting: 600000, Northing: 1100000},
		{Easting: 0, Northing: 1500000},
	} {
		if _, err := ref.SixFigure(); !errors.Is(err, gridconv.ErrOutsideGrid) {
			t.Errorf("%s: expected ErrOutsideGrid, got %v", ref, err)
		}
	}
}

func TestOSRefString(t *testing.T) {
	s := gridconv.OSRef{Easting: 651400, Northing: 313100.5}.String()
	if s != "(651400, 313100.5)" {
		t.Errorf("unexpected string %s", s)
	}
}
