// Package topology turns a freehand wall network into a clean planar
// graph: it splits walls at T-junctions and X-crossings, then welds
// segment endpoints into graph nodes.
package topology

import (
	"sort"

	"wallplan/internal/plan"
	"wallplan/pkg/geometry"
)

// Segment is a wall piece produced by junction splitting. It carries the
// originating wall's identity and real-world dimensions.
type Segment struct {
	Start       geometry.Point2D
	End         geometry.Point2D
	WallID      string
	ThicknessMM float64
	HeightMM    float64
}

// Length returns the segment length in drawing units.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// SplitOptions configures junction detection.
type SplitOptions struct {
	// SplitThreshold is how far a wall endpoint may sit from another
	// wall's interior and still count as a T-junction. Intentionally
	// looser than the weld threshold to tolerate imprecise drawing.
	SplitThreshold float64

	// EndpointThreshold keeps junctions away from a wall's own ends so
	// existing corners are not re-split.
	EndpointThreshold float64

	// DedupeDistance merges split points closer than this.
	DedupeDistance float64

	// MaxIterations caps the fixed-point split loop.
	MaxIterations int
}

// DefaultSplitOptions returns the drawing-unit thresholds tuned for the
// editor's default scale.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		SplitThreshold:    15,
		EndpointThreshold: 5,
		DedupeDistance:    2,
		MaxIterations:     10,
	}
}

// SplitDiagnostics reports how the split loop terminated. A
// non-converged result is still usable; it indicates pathological input.
type SplitDiagnostics struct {
	Iterations  int  `json:"iterations"`
	Converged   bool `json:"converged"`
	TJunctions  int  `json:"t_junctions"`
	XCrossings  int  `json:"x_crossings"`
	SegmentsOut int  `json:"segments_out"`
}

// Interior parametric band for T-junction projections.
const (
	tBandLo = 0.01
	tBandHi = 0.99
)

type splitPoint struct {
	t float64
	p geometry.Point2D
}

// SplitJunctions iteratively cuts walls at T-junctions and X-crossings
// until the segment set is stable or the iteration cap is hit. The
// operation is idempotent: re-splitting an already split set yields an
// identical set.
func SplitJunctions(walls []plan.Wall, opts SplitOptions) ([]Segment, SplitDiagnostics) {
	segs := make([]Segment, 0, len(walls))
	for _, w := range walls {
		segs = append(segs, Segment{
			Start:       w.Start,
			End:         w.End,
			WallID:      w.ID,
			ThicknessMM: w.ThicknessMM,
			HeightMM:    w.HeightMM,
		})
	}

	var diag SplitDiagnostics
	for diag.Iterations < opts.MaxIterations {
		diag.Iterations++

		next, tCount, xCount := splitPass(segs, opts)
		diag.TJunctions += tCount
		diag.XCrossings += xCount
		if tCount == 0 && xCount == 0 {
			diag.Converged = true
			segs = next
			break
		}
		segs = next
	}

	diag.SegmentsOut = len(segs)
	return segs, diag
}

// splitPass runs one round of junction detection over all segments and
// returns the rebuilt segment list plus the junction counts.
func splitPass(segs []Segment, opts SplitOptions) ([]Segment, int, int) {
	cuts := make([][]splitPoint, len(segs))
	tCount, xCount := 0, 0

	for i := range segs {
		s := &segs[i]

		// T-junctions: another segment's endpoint lands on s's interior.
		for j := range segs {
			if j == i {
				continue
			}
			for _, e := range [2]geometry.Point2D{segs[j].Start, segs[j].End} {
				proj, t := geometry.ClosestPointOnSegment(e, s.Start, s.End)
				if t <= tBandLo || t >= tBandHi {
					continue
				}
				if e.Distance(proj) >= opts.SplitThreshold {
					continue
				}
				if proj.Distance(s.Start) <= opts.EndpointThreshold ||
					proj.Distance(s.End) <= opts.EndpointThreshold {
					continue
				}
				cuts[i] = append(cuts[i], splitPoint{t: t, p: proj})
				tCount++
			}
		}

		// X-crossings: interiors intersect away from any endpoint.
		// Later segments only, so each pair is examined once.
		for j := i + 1; j < len(segs); j++ {
			o := &segs[j]
			p, ok := geometry.LineIntersection(s.Start, s.End, o.Start, o.End)
			if !ok {
				continue
			}
			if p.Distance(s.Start) <= opts.EndpointThreshold ||
				p.Distance(s.End) <= opts.EndpointThreshold ||
				p.Distance(o.Start) <= opts.EndpointThreshold ||
				p.Distance(o.End) <= opts.EndpointThreshold {
				continue
			}
			_, ti := geometry.ClosestPointOnSegment(p, s.Start, s.End)
			_, tj := geometry.ClosestPointOnSegment(p, o.Start, o.End)
			cuts[i] = append(cuts[i], splitPoint{t: ti, p: p})
			cuts[j] = append(cuts[j], splitPoint{t: tj, p: p})
			xCount++
		}
	}

	if tCount == 0 && xCount == 0 {
		return segs, 0, 0
	}

	out := make([]Segment, 0, len(segs)+tCount+2*xCount)
	for i, s := range segs {
		if len(cuts[i]) == 0 {
			out = append(out, s)
			continue
		}
		out = append(out, subdivide(s, cuts[i], opts.DedupeDistance)...)
	}
	return out, tCount, xCount
}

// subdivide cuts a segment at the given points, deduplicating points
// closer than dedupe to each other, and emits contiguous sub-segments.
func subdivide(s Segment, pts []splitPoint, dedupe float64) []Segment {
	sort.Slice(pts, func(a, b int) bool { return pts[a].t < pts[b].t })

	kept := pts[:0]
	for _, sp := range pts {
		if len(kept) > 0 && sp.p.Distance(kept[len(kept)-1].p) < dedupe {
			continue
		}
		kept = append(kept, sp)
	}

	out := make([]Segment, 0, len(kept)+1)
	prev := s.Start
	for _, sp := range kept {
		out = append(out, Segment{
			Start:       prev,
			End:         sp.p,
			WallID:      s.WallID,
			ThicknessMM: s.ThicknessMM,
			HeightMM:    s.HeightMM,
		})
		prev = sp.p
	}
	out = append(out, Segment{
		Start:       prev,
		End:         s.End,
		WallID:      s.WallID,
		ThicknessMM: s.ThicknessMM,
		HeightMM:    s.HeightMM,
	})
	return out
}
