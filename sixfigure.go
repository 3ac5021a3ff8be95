package gridconv

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const sixFigureLen = 8

// squareLetters are the 100km square letters of a 500km square, read west to
// east from the northern row. I is not used.
const squareLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// majorSquare is a 500km square of the national grid, identified by the
// first letter of a grid reference.
type majorSquare struct {
	letter byte
	east   int // 100km squares east of the false origin
	north  int // 100km squares north of the false origin
}

var majorSquares = [5]majorSquare{
	{'S', 0, 0},
	{'T', 5, 0},
	{'N', 0, 5},
	{'O', 5, 5},
	{'H', 0, 10},
}

// ParseSixFigure parses a six-figure grid reference such as "TG514131",
// returning the south west corner of the 100m square it names.
func ParseSixFigure(ref string) (OSRef, error) {
	if len(ref) != sixFigureLen {
		return OSRef{}, fmt.Errorf("%q: want %d characters: %w", ref, sixFigureLen, ErrMalformedGridString)
	}

	var major *majorSquare
	for i := range majorSquares {
		if majorSquares[i].letter == ref[0] {
			major = &majorSquares[i]
			break
		}
	}
	if major == nil {
		return OSRef{}, fmt.Errorf("%q: invalid first letter %q: %w", ref, ref[0], ErrMalformedGridString)
	}

	idx := strings.IndexByte(squareLetters, ref[1])
	if idx < 0 {
		return OSRef{}, fmt.Errorf("%q: invalid second letter %q: %w", ref, ref[1], ErrMalformedGridString)
	}

	for i := 2; i < sixFigureLen; i++ {
		if !isdigit(ref[i]) {
			return OSRef{}, fmt.Errorf("%q: invalid digit %q: %w", ref, ref[i], ErrMalformedGridString)
		}
	}
	east, _ := strconv.Atoi(ref[2:5])
	north, _ := strconv.Atoi(ref[5:8])

	squareEast := major.east + idx%5
	squareNorth := major.north + 4 - idx/5

	return OSRef{
		Easting:  float64(squareEast*100000 + east*100),
		Northing: float64(squareNorth*100000 + north*100),
	}, nil
}

// SixFigure formats the reference as a six-figure grid reference, truncating
// to the 100m square that contains it.
func (r OSRef) SixFigure() (string, error) {
	if r.Easting < 0 || r.Northing < 0 {
		return "", fmt.Errorf("%s: %w", r, ErrOutsideGrid)
	}
	e := int(math.Floor(r.Easting / 100))
	n := int(math.Floor(r.Northing / 100))

	squareEast := e / 1000
	squareNorth := n / 1000

	var major *majorSquare
	for i := range majorSquares {
		m := &majorSquares[i]
		if squareEast >= m.east && squareEast < m.east+5 &&
			squareNorth >= m.north && squareNorth < m.north+5 {
			major = m
			break
		}
	}
	if major == nil {
		return "", fmt.Errorf("%s: %w", r, ErrOutsideGrid)
	}

	idx := (4-(squareNorth-major.north))*5 + (squareEast - major.east)

	buf := bytes.Buffer{}
	buf.WriteByte(major.letter)
	buf.WriteByte(squareLetters[idx])
	fmt.Fprintf(&buf, "%03d%03d", e%1000, n%1000)
	return buf.String(), nil
}

// String returns the easting and northing in meters.
func (r OSRef) String() string {
	return fmt.Sprintf("(%s, %s)",
		strconv.FormatFloat(r.Easting, 'f', -1, 64),
		strconv.FormatFloat(r.Northing, 'f', -1, 64))
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}
