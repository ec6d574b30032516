// Package arcfit approximates cubic Bezier curves with circular arcs.
//
// The error of a candidate arc is bounded analytically: the arc is turned
// back into a cubic, the control point differences are projected onto the
// chord basis, and the exact maximum of the resulting deviation polynomial
// is found from the roots of its derivative. No sampling is involved.
//
// [Fitter] drives the search for the smallest number of arcs that meets a
// tolerance. For every segment count it splits the curve uniformly, then
// "jiggles" the split parameters so that per-segment errors even out.
// [Quantizer] snaps arc curvatures to the fixed-point grid used by the data
// texture and accounts for the error this adds.
package arcfit
