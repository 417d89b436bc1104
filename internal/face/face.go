// Package face enumerates closed planar faces of a wall graph and sums
// their enclosed areas.
package face

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"wallplan/internal/topology"
	"wallplan/pkg/geometry"
)

// Options bounds the traversal.
type Options struct {
	// MaxWalkSteps caps a single face walk; 0 derives a safe bound from
	// the edge count.
	MaxWalkSteps int
}

// DefaultOptions returns the default traversal bounds.
func DefaultOptions() Options {
	return Options{}
}

// Face is one enclosed room: its boundary ring (node positions, open)
// and its positive shoelace area in drawing units squared.
type Face struct {
	Ring []geometry.Point2D
	Area float64
}

// Result holds all detected faces and traversal diagnostics.
type Result struct {
	Faces     []Face
	TotalArea float64 // drawing units squared
	OpenWalks int     // dead-end reversals at degree-1 tips
	CapHit    bool    // a walk hit the iteration cap
}

// halfEdge is one direction of an undirected wall edge, consumed once.
type halfEdge struct {
	from, to *topology.Node
	twin     *halfEdge
	angle    float64 // outgoing bearing from the origin node
	visited  bool
}

// Traverse walks every directed edge once, tracing the face on its left
// under the sharpest-turn rule, and accumulates positive face areas.
// The unbounded outer face traces with negative area and is discarded.
// Dangling spurs are traced out and back inside their enclosing face
// and contribute zero area; a fully open chain traces as a degenerate
// zero-area loop and yields no face.
func Traverse(g *topology.Graph, opts Options) Result {
	var all []*halfEdge
	outgoing := make(map[int64][]*halfEdge)

	for _, e := range g.Edges() {
		ab := &halfEdge{from: e.A, to: e.B, angle: e.A.Pos.Bearing(e.B.Pos)}
		ba := &halfEdge{from: e.B, to: e.A, angle: e.B.Pos.Bearing(e.A.Pos)}
		ab.twin, ba.twin = ba, ab
		all = append(all, ab, ba)
		outgoing[e.A.ID()] = append(outgoing[e.A.ID()], ab)
		outgoing[e.B.ID()] = append(outgoing[e.B.ID()], ba)
	}

	// Sort each node's fan by bearing; the successor rule reads the
	// rotation order straight off it. Stable keeps insertion order for
	// collinear ties; only one of the pair can ever continue a walk.
	for _, fan := range outgoing {
		sort.SliceStable(fan, func(i, j int) bool { return fan[i].angle < fan[j].angle })
	}

	maxSteps := opts.MaxWalkSteps
	if maxSteps <= 0 {
		maxSteps = len(all) + 1
	}

	var res Result
	var areas []float64

	for _, start := range all {
		if start.visited {
			continue
		}

		path := walk(start, outgoing, maxSteps, &res)
		if path == nil || len(path) <= 2 {
			continue
		}

		ring := make([]geometry.Point2D, len(path))
		for i, he := range path {
			ring[i] = he.from.Pos
		}
		if area := geometry.SignedArea(ring); area > 0 {
			res.Faces = append(res.Faces, Face{Ring: ring, Area: area})
			areas = append(areas, area)
		}
	}

	res.TotalArea = floats.Sum(areas)
	return res
}

// walk traces one face loop starting from the given directed edge.
// Returns the closed path, or nil if the walk hits the step cap. The
// successor rule is a permutation of the directed edges, so every walk
// closes back to its start within the cap.
func walk(start *halfEdge, outgoing map[int64][]*halfEdge, maxSteps int, res *Result) []*halfEdge {
	var path []*halfEdge
	cur := start

	for steps := 0; steps < maxSteps; steps++ {
		cur.visited = true
		path = append(path, cur)

		next := successor(cur, outgoing)
		if next == cur.twin {
			// Dead end at a degree-1 tip: bounce back along the spur.
			res.OpenWalks++
		}
		if next == start {
			return path
		}
		cur = next
	}

	res.CapHit = true
	return nil
}

// successor picks the outgoing edge at cur's head with the smallest
// strictly positive angular offset from the reverse bearing, i.e. the
// sharpest consistent turn: in the sorted fan that is the edge
// immediately before the reverse edge, wrapping around. At a degree-1
// tip the reverse edge is its own predecessor and the walk doubles back.
func successor(cur *halfEdge, outgoing map[int64][]*halfEdge) *halfEdge {
	fan := outgoing[cur.to.ID()]
	for i, cand := range fan {
		if cand == cur.twin {
			return fan[(i-1+len(fan))%len(fan)]
		}
	}
	return cur.twin // unreachable: the reverse edge is always in the fan
}
