package arcfit

import (
	"math"

	"github.com/gogpu/glyphy/geom"
)

// DefaultMaxSegments bounds the number of arcs used for one curve.
const DefaultMaxSegments = 100

// Fitter approximates cubic curves with a chain of arcs.
type Fitter struct {
	// Tolerance is the largest acceptable distance between curve and arcs.
	Tolerance float64

	// MaxSegments bounds the arc count per curve. Zero means
	// DefaultMaxSegments.
	MaxSegments int

	// Quantizer fits and snaps each arc. The zero value fits unquantized
	// arcs.
	Quantizer Quantizer
}

// Validate checks the fitter parameters.
func (f Fitter) Validate() error {
	if !(f.Tolerance > 0) {
		return ErrInvalidTolerance
	}
	return f.Quantizer.Validate()
}

// Fit returns the arcs approximating b and the largest error among them.
//
// Segment counts are tried from 1 upwards. Once any segment meets the
// tolerance, the split parameters are redistributed by error weight for up
// to log2(n)+1 rounds. The first count whose worst error is within the
// tolerance wins. If none does, the arcs of the last attempt are returned
// with their error.
//
// Curves without area collapse to one straight arc, or to nothing when they
// start and end at the same point.
func (f Fitter) Fit(b geom.Bezier) ([]geom.Arc, float64) {
	v1 := b.P1.Sub(b.P0)
	v2 := b.P2.Sub(b.P0)
	v3 := b.P3.Sub(b.P0)
	if geom.IsZero(v1.Cross(v2)) && geom.IsZero(v2.Cross(v3)) {
		if b.P0.Equals(b.P3) {
			return nil, 0
		}
		return []geom.Arc{{P0: b.P0, P1: b.P3}}, 0
	}

	maxSegments := f.MaxSegments
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}

	var s fitState
	for n := 1; n <= maxSegments; n++ {
		s.uniform(n)
		s.calc(b, f.Quantizer)

		for _, e := range s.e {
			if e <= f.Tolerance {
				s.jiggle(b, f.Quantizer, f.Tolerance)
				break
			}
		}

		if s.maxE <= f.Tolerance {
			break
		}
	}
	return s.arcs, s.maxE
}

// FitUniform splits b into n equal parameter ranges and fits one arc to
// each, without redistribution.
func (f Fitter) FitUniform(b geom.Bezier, n int) ([]geom.Arc, float64) {
	var s fitState
	s.uniform(max(n, 1))
	s.calc(b, f.Quantizer)
	return s.arcs, s.maxE
}

// fitState holds the split parameters and per-segment results of one
// attempt.
type fitState struct {
	t    []float64
	e    []float64
	arcs []geom.Arc
	minE float64
	maxE float64
}

func (s *fitState) uniform(n int) {
	s.t = s.t[:0]
	for i := 0; i < n; i++ {
		s.t = append(s.t, float64(i)/float64(n))
	}
	s.t = append(s.t, 1)
}

func (s *fitState) calc(b geom.Bezier, q Quantizer) {
	n := len(s.t) - 1
	s.e = s.e[:0]
	s.arcs = make([]geom.Arc, 0, n)
	s.maxE = 0
	s.minE = math.Inf(1)

	for i := 0; i < n; i++ {
		a, e := q.Approximate(b.Segment(s.t[i], s.t[i+1]))
		s.arcs = append(s.arcs, a)
		s.e = append(s.e, e)
		s.maxE = max(s.maxE, e)
		s.minE = min(s.minE, e)
	}
}

// jiggle moves the split parameters so that segments with a large error
// shrink and segments with a small error grow.
func (s *fitState) jiggle(b geom.Bezier, q Quantizer, tolerance float64) {
	n := len(s.t) - 1
	conditioner := tolerance * 0.01
	rounds := math.Log2(float64(n)) + 1

	for round := 0; float64(round) < rounds; round++ {
		var total float64
		for i := 0; i < n; i++ {
			kInv := (s.t[i+1] - s.t[i]) * math.Pow(s.e[i]+conditioner, -0.3)
			total += kInv
			s.e[i] = kInv
		}
		for i := 0; i < n; i++ {
			s.t[i+1] = s.t[i] + s.e[i]/total
		}
		s.t[n] = 1

		s.calc(b, q)
		if s.maxE < tolerance || 2*s.minE-s.maxE > tolerance {
			break
		}
	}
}
