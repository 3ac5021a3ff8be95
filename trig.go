package gridconv

import "math"

func sinSquared(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

func tanSquared(x float64) float64 {
	t := math.Tan(x)
	return t * t
}

func sec(x float64) float64 {
	return 1.0 / math.Cos(x)
}
