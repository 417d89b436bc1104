package topology

import (
	"testing"

	"wallplan/pkg/geometry"
)

func seg(id string, x1, y1, x2, y2 float64) Segment {
	return Segment{
		Start:       geometry.Point2D{X: x1, Y: y1},
		End:         geometry.Point2D{X: x2, Y: y2},
		WallID:      id,
		ThicknessMM: 225,
		HeightMM:    3000,
	}
}

func TestBuildGraphWeldsCorner(t *testing.T) {
	segs := []Segment{
		seg("a", 0, 0, 100, 0),
		seg("b", 100, 0, 100, 100),
	}

	g := BuildGraph(segs, DefaultBuildOptions())
	if len(g.Nodes()) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes()))
	}
	if len(g.Edges()) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(g.Edges()))
	}

	corner := nodeAt(g, geometry.Point2D{X: 100, Y: 0})
	if corner == nil {
		t.Fatal("no node at the corner")
	}
	if corner.Degree() != 2 {
		t.Errorf("corner degree = %d, want 2", corner.Degree())
	}
}

func TestBuildGraphWeldsWithinThreshold(t *testing.T) {
	// 10-unit gap at the corner, fuse threshold 20: welds closed.
	segs := []Segment{
		seg("a", 0, 0, 100, 0),
		seg("b", 100, 10, 100, 110),
	}

	g := BuildGraph(segs, BuildOptions{FuseThreshold: 20})
	if len(g.Nodes()) != 3 {
		t.Errorf("expected gap to weld into 3 nodes, got %d", len(g.Nodes()))
	}

	// Same layout with the default 5-unit threshold stays open.
	g = BuildGraph(segs, DefaultBuildOptions())
	if len(g.Nodes()) != 4 {
		t.Errorf("expected 4 nodes with open gap, got %d", len(g.Nodes()))
	}
}

func TestBuildGraphDropsCollapsedSegments(t *testing.T) {
	segs := []Segment{
		seg("a", 0, 0, 100, 0),
		seg("tiny", 100, 0, 102, 0), // both ends weld to the same node
	}

	g := BuildGraph(segs, DefaultBuildOptions())
	if g.CollapsedSegments != 1 {
		t.Errorf("expected 1 collapsed segment, got %d", g.CollapsedSegments)
	}
	if g.DuplicateEdges != 0 {
		t.Errorf("collapse must not count as a duplicate, got %d", g.DuplicateEdges)
	}
	if len(g.Edges()) != 1 {
		t.Errorf("expected 1 edge, got %d", len(g.Edges()))
	}
}

func TestBuildGraphDeduplicatesParallelEdges(t *testing.T) {
	segs := []Segment{
		seg("a", 0, 0, 100, 0),
		seg("a-dup", 0, 1, 100, 1), // near-duplicate of a
	}

	g := BuildGraph(segs, DefaultBuildOptions())
	if len(g.Nodes()) != 2 {
		t.Fatalf("expected endpoints to weld into 2 nodes, got %d", len(g.Nodes()))
	}
	if len(g.Edges()) != 1 || g.DuplicateEdges != 1 {
		t.Errorf("expected duplicate edge dropped: edges=%d duplicates=%d",
			len(g.Edges()), g.DuplicateEdges)
	}
	if g.CollapsedSegments != 0 {
		t.Errorf("duplicate must not count as a collapse, got %d", g.CollapsedSegments)
	}
}

func TestBuildGraphXNodeDegree(t *testing.T) {
	// Four sub-segments meeting at one crossing point.
	segs := []Segment{
		seg("h", 0, 0, 50, 0),
		seg("h", 50, 0, 100, 0),
		seg("v", 50, -50, 50, 0),
		seg("v", 50, 0, 50, 50),
	}

	g := BuildGraph(segs, DefaultBuildOptions())
	center := nodeAt(g, geometry.Point2D{X: 50, Y: 0})
	if center == nil {
		t.Fatal("no node at the crossing")
	}
	if center.Degree() != 4 {
		t.Errorf("crossing degree = %d, want 4", center.Degree())
	}
	if !g.HasEdge(center.ID(), nodeAt(g, geometry.Point2D{X: 0, Y: 0}).ID()) {
		t.Error("missing adjacency from crossing to west endpoint")
	}
}

// nodeAt finds the node welded nearest the given point, within 5 units.
func nodeAt(g *Graph, p geometry.Point2D) *Node {
	for _, n := range g.Nodes() {
		if n.Pos.Distance(p) < 5 {
			return n
		}
	}
	return nil
}
