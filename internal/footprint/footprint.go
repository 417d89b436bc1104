// Package footprint computes the exact, overlap-free wall material area
// by expanding centerlines into rectangles and applying polygon boolean
// algebra.
package footprint

import (
	"log"
	"math"

	"github.com/engelsjk/polygol"

	"wallplan/internal/plan"
	"wallplan/pkg/geometry"
)

// Ring is a closed ordered ring of positions (first == last).
type Ring []geometry.Point2D

// Polygon is a ring list: ring 0 is the outer boundary, the rest are holes.
type Polygon []Ring

// MultiPolygon is a list of polygons with holes.
type MultiPolygon []Polygon

// WallPolygon offsets a wall's centerline by thickness/2 on each
// perpendicular side into a closed 4-point rectangle in millimeters.
// Reports false for degenerate walls.
func WallPolygon(w plan.Wall, scaleMMPerUnit float64) (Polygon, bool) {
	s := w.Start.Scale(scaleMMPerUnit)
	e := w.End.Scale(scaleMMPerUnit)

	d := e.Sub(s)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return nil, false
	}

	// Unit normal to the centerline, scaled to half thickness.
	n := geometry.Point2D{X: -d.Y, Y: d.X}.Scale(w.ThicknessMM / 2 / length)

	ring := Ring{s.Add(n), e.Add(n), e.Sub(n), s.Sub(n), s.Add(n)}
	return Polygon{ring}, true
}

// Union folds the polygons into one overlap-free multipolygon. A polygon
// the solver rejects is skipped with a warning rather than failing the
// whole footprint.
func Union(polys []Polygon) MultiPolygon {
	var acc polygol.Geom
	for _, p := range polys {
		g := toGeom(MultiPolygon{p})
		if acc == nil {
			acc = g
			continue
		}
		out, err := polygol.Union(acc, g)
		if err != nil {
			log.Printf("footprint: union failed, skipping polygon: %v", err)
			continue
		}
		acc = out
	}
	return fromGeom(acc)
}

// Difference subtracts clip from subject. On solver failure the subject
// is returned unmodified.
func Difference(subject, clip MultiPolygon) MultiPolygon {
	out, err := polygol.Difference(toGeom(subject), toGeom(clip))
	if err != nil {
		log.Printf("footprint: difference failed, keeping subject: %v", err)
		return subject
	}
	return fromGeom(out)
}

// Area returns the multipolygon area: outer rings minus hole rings.
// Input rings are in millimeters; the result is in square meters.
func Area(mp MultiPolygon) float64 {
	var mm2 float64
	for _, poly := range mp {
		for i, ring := range poly {
			a := math.Abs(geometry.SignedArea(ring))
			if i == 0 {
				mm2 += a
			} else {
				mm2 -= a
			}
		}
	}
	return mm2 / 1e6
}

func toGeom(mp MultiPolygon) polygol.Geom {
	g := make(polygol.Geom, 0, len(mp))
	for _, poly := range mp {
		rings := make([][][]float64, 0, len(poly))
		for _, ring := range poly {
			pts := make([][]float64, 0, len(ring))
			for _, p := range ring {
				pts = append(pts, []float64{p.X, p.Y})
			}
			rings = append(rings, pts)
		}
		g = append(g, rings)
	}
	return g
}

func fromGeom(g polygol.Geom) MultiPolygon {
	mp := make(MultiPolygon, 0, len(g))
	for _, rings := range g {
		poly := make(Polygon, 0, len(rings))
		for _, pts := range rings {
			ring := make(Ring, 0, len(pts))
			for _, p := range pts {
				if len(p) < 2 {
					continue
				}
				ring = append(ring, geometry.Point2D{X: p[0], Y: p[1]})
			}
			poly = append(poly, ring)
		}
		mp = append(mp, poly)
	}
	return mp
}
