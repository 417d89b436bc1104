package geometry

import "math"

// parallelEps is the determinant threshold below which two lines are
// treated as parallel.
const parallelEps = 1e-6

// Intersection parameters must fall inside this open band so that segments
// sharing an endpoint do not report a false crossing.
const (
	paramLo = 0.001
	paramHi = 0.999
)

// ClosestPointOnSegment projects p onto the segment a-b and returns the
// closest point together with the clamped parameter t in [0,1].
// Returns a (t=0) if the segment is degenerate.
func ClosestPointOnSegment(p, a, b Point2D) (Point2D, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a, 0
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Point2D{X: a.X + t*dx, Y: a.Y + t*dy}, t
}

// LineIntersection solves the 2x2 linear system for the crossing of
// segments p0-p1 and p2-p3. It reports no intersection when the segments
// are parallel (|det| < 1e-6) or when either parameter falls outside the
// open band (0.001, 0.999); the band excludes coincident-endpoint hits.
func LineIntersection(p0, p1, p2, p3 Point2D) (Point2D, bool) {
	d1x := p1.X - p0.X
	d1y := p1.Y - p0.Y
	d2x := p3.X - p2.X
	d2y := p3.Y - p2.Y

	det := d1x*d2y - d1y*d2x
	if math.Abs(det) < parallelEps {
		return Point2D{}, false
	}

	ex := p2.X - p0.X
	ey := p2.Y - p0.Y
	t := (ex*d2y - ey*d2x) / det
	u := (ex*d1y - ey*d1x) / det

	if t <= paramLo || t >= paramHi || u <= paramLo || u >= paramHi {
		return Point2D{}, false
	}

	return Point2D{X: p0.X + t*d1x, Y: p0.Y + t*d1y}, true
}

// PointOnSegment reports whether p lies on segment a-b within tol, using
// the triangle-inequality equality test |d(p,a)+d(p,b)-d(a,b)| < tol.
func PointOnSegment(p, a, b Point2D, tol float64) bool {
	return math.Abs(p.Distance(a)+p.Distance(b)-a.Distance(b)) < tol
}
