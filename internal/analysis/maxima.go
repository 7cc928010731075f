package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LocalMaxima returns, in ascending index order, every interior value of v
// strictly greater than both neighbors. Endpoints are never candidates and
// plateaus do not qualify: equal-valued neighbors disqualify a point. Inputs
// with fewer than three elements yield an empty, non-nil slice.
func LocalMaxima(v []float64) []float64 {
	peaks := make([]float64, 0)
	for i := 1; i < len(v)-1; i++ {
		if v[i] > v[i-1] && v[i] > v[i+1] {
			peaks = append(peaks, v[i])
		}
	}
	return peaks
}

// Point is one sample of a 2D scatter.
type Point struct {
	X, Y float64
}

// ReturnMap pairs successive maxima (M_n, M_n+1). For the Lorenz system's Z
// maxima this is the nearly one-dimensional tent-shaped Lorenz map.
func ReturnMap(maxima []float64) []Point {
	if len(maxima) < 2 {
		return []Point{}
	}
	pts := make([]Point, len(maxima)-1)
	for i := range pts {
		pts[i] = Point{X: maxima[i], Y: maxima[i+1]}
	}
	return pts
}

// Stats summarizes a scalar sequence.
type Stats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary computes descriptive statistics of v. The zero Stats is returned
// for empty input.
func Summary(v []float64) Stats {
	if len(v) == 0 {
		return Stats{}
	}

	s := Stats{
		Count: len(v),
		Mean:  stat.Mean(v, nil),
		Min:   floats.Min(v),
		Max:   floats.Max(v),
	}
	if len(v) > 1 {
		s.StdDev = stat.StdDev(v, nil)
	}
	return s
}
