package estimate

import (
	"wallplan/internal/plan"
	"wallplan/internal/topology"
	"wallplan/pkg/geometry"
)

// MatchedOpening ties an opening to the split segment that carries it.
// Openings are matched post hoc by projecting their along-wall offset;
// the topology kernel itself never sees them.
type MatchedOpening struct {
	Opening plan.Opening
	Segment topology.Segment
	Matched bool
}

// MatchOpenings locates each opening on the split segment covering its
// along-wall offset. Openings referencing unknown walls, or offsets past
// the wall's end, come back unmatched (not an error: the editor may hold
// stale records mid-edit).
func MatchOpenings(openings []plan.Opening, walls []plan.Wall, segs []topology.Segment, scaleMMPerUnit float64) []MatchedOpening {
	wallByID := make(map[string]plan.Wall, len(walls))
	for _, w := range walls {
		wallByID[w.ID] = w
	}

	out := make([]MatchedOpening, 0, len(openings))
	for _, o := range openings {
		m := MatchedOpening{Opening: o}
		w, ok := wallByID[o.WallID]
		if !ok {
			out = append(out, m)
			continue
		}

		// Opening center offset along the wall, in drawing units.
		center := (o.DistanceFromStartMM + o.WidthMM/2) / scaleMMPerUnit

		for _, s := range segs {
			if s.WallID != o.WallID {
				continue
			}
			// Segment span measured by projecting its ends onto the
			// original wall centerline.
			_, t0 := geometry.ClosestPointOnSegment(s.Start, w.Start, w.End)
			_, t1 := geometry.ClosestPointOnSegment(s.End, w.Start, w.End)
			lo := t0 * w.Length()
			hi := t1 * w.Length()
			if hi < lo {
				lo, hi = hi, lo
			}
			// Spans are half-open so a junction point belongs to one
			// segment only, except the final segment keeps its far end:
			// an opening centered exactly there must still match.
			inBand := center >= lo && center < hi
			if hi >= w.Length() {
				inBand = center >= lo && center <= hi
			}
			if inBand {
				m.Segment = s
				m.Matched = true
				break
			}
		}
		out = append(out, m)
	}
	return out
}
