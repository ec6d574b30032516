package geom

import "iter"

// ArcEndpoint is one entry of a flattened arc list. The arc ending here
// starts at the previous endpoint's P and has curvature D. D == +Inf marks a
// move-to and D == 0 a straight segment.
type ArcEndpoint struct {
	P Point
	D float64
}

// MoveTo returns a move-to endpoint at p.
func MoveTo(p Point) ArcEndpoint {
	return ArcEndpoint{P: p, D: Infinity}
}

// IsMove reports whether e starts a new subpath.
func (e ArcEndpoint) IsMove() bool {
	return e.D == Infinity
}

// Arcs iterates over the arcs of an endpoint list. The index is that of the
// endpoint that ends the arc; its start is at index-1. A list that does not
// begin with a move-to starts from the origin.
func Arcs(endpoints []ArcEndpoint) iter.Seq2[int, Arc] {
	return func(yield func(int, Arc) bool) {
		var p0 Point
		for i, e := range endpoints {
			if e.IsMove() {
				p0 = e.P
				continue
			}
			a := Arc{P0: p0, P1: e.P, D: e.D}
			p0 = e.P
			if !yield(i, a) {
				return
			}
		}
	}
}

// Contours splits an endpoint list at its move-to markers and returns the
// start index of every subpath.
func Contours(endpoints []ArcEndpoint) []int {
	if len(endpoints) == 0 {
		return nil
	}
	starts := []int{0}
	for i := 1; i < len(endpoints); i++ {
		if endpoints[i].IsMove() {
			starts = append(starts, i)
		}
	}
	return starts
}
