package topology

import (
	"testing"

	"wallplan/internal/plan"
	"wallplan/pkg/geometry"
)

func wall(id string, x1, y1, x2, y2 float64) plan.Wall {
	return plan.Wall{
		ID:          id,
		Start:       geometry.Point2D{X: x1, Y: y1},
		End:         geometry.Point2D{X: x2, Y: y2},
		ThicknessMM: 225,
		HeightMM:    3000,
	}
}

func TestSplitTJunction(t *testing.T) {
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 50, 60, 50, 0), // ends on a's interior
	}

	segs, diag := SplitJunctions(walls, DefaultSplitOptions())
	if !diag.Converged {
		t.Fatal("expected convergence")
	}
	if diag.TJunctions != 1 {
		t.Errorf("expected 1 T-junction, got %d", diag.TJunctions)
	}
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments (a split in two, b intact), got %d", len(segs))
	}

	// Both halves of a must end at the junction point.
	junction := geometry.Point2D{X: 50, Y: 0}
	hits := 0
	for _, s := range segs {
		if s.WallID == "a" && (s.Start == junction || s.End == junction) {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("expected both a-halves to touch the junction, got %d", hits)
	}
}

func TestSplitNearTJunction(t *testing.T) {
	// Endpoint 10 units short of the host wall: inside the split
	// threshold (15), still detected.
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 50, 60, 50, 10),
	}

	segs, diag := SplitJunctions(walls, DefaultSplitOptions())
	if diag.TJunctions != 1 || len(segs) != 3 {
		t.Errorf("expected loose endpoint to split host: t=%d segs=%d", diag.TJunctions, len(segs))
	}
}

func TestSplitXCrossing(t *testing.T) {
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 50, -50, 50, 50),
	}

	segs, diag := SplitJunctions(walls, DefaultSplitOptions())
	if diag.XCrossings != 1 {
		t.Errorf("expected 1 X-crossing, got %d", diag.XCrossings)
	}
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}
}

func TestSplitIgnoresSharedCorner(t *testing.T) {
	// An L-corner is not a junction to split: the meeting point is at
	// both walls' endpoints.
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 100, 0, 100, 100),
	}

	segs, diag := SplitJunctions(walls, DefaultSplitOptions())
	if len(segs) != 2 || diag.TJunctions != 0 || diag.XCrossings != 0 {
		t.Errorf("corner must not split: segs=%d diag=%+v", len(segs), diag)
	}
}

func TestSplitIdempotent(t *testing.T) {
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 50, -50, 50, 50),
		wall("c", 20, 40, 20, 0),
	}

	opts := DefaultSplitOptions()
	first, _ := SplitJunctions(walls, opts)

	// Feed the split result back in as walls.
	rewalls := make([]plan.Wall, len(first))
	for i, s := range first {
		rewalls[i] = plan.Wall{
			ID:          s.WallID,
			Start:       s.Start,
			End:         s.End,
			ThicknessMM: s.ThicknessMM,
			HeightMM:    s.HeightMM,
		}
	}
	second, diag := SplitJunctions(rewalls, opts)

	if !diag.Converged || diag.Iterations != 1 {
		t.Errorf("re-split must converge immediately, got %+v", diag)
	}
	if len(second) != len(first) {
		t.Fatalf("re-split changed segment count: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d changed: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestSplitDedupesClosePoints(t *testing.T) {
	// Two crossings within the 2-unit dedupe distance collapse into one
	// split point on the host wall.
	walls := []plan.Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 50, -50, 50, 50),
		wall("c", 51, -50, 51, 50),
	}

	segs, _ := SplitJunctions(walls, DefaultSplitOptions())
	aCount := 0
	for _, s := range segs {
		if s.WallID == "a" {
			aCount++
		}
	}
	if aCount != 2 {
		t.Errorf("expected host wall cut once after dedupe, got %d pieces", aCount)
	}
}

func TestSplitConvergesOnManyCrossings(t *testing.T) {
	// Hashtag: four overshooting walls, four crossings, stable after
	// two passes.
	walls := []plan.Wall{
		wall("h1", 50, 100, 350, 100),
		wall("h2", 50, 200, 350, 200),
		wall("v1", 100, 50, 100, 350),
		wall("v2", 200, 50, 200, 350),
	}

	segs, diag := SplitJunctions(walls, DefaultSplitOptions())
	if !diag.Converged {
		t.Fatal("expected convergence")
	}
	if diag.XCrossings != 4 {
		t.Errorf("expected 4 crossings, got %d", diag.XCrossings)
	}
	// Each wall crosses two others: 4 walls x 3 pieces.
	if len(segs) != 12 {
		t.Errorf("expected 12 segments, got %d", len(segs))
	}
}
