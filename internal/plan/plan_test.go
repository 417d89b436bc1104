package plan

import (
	"math"
	"path/filepath"
	"testing"

	"wallplan/pkg/geometry"
)

func TestSanitizeDropsDegenerateWalls(t *testing.T) {
	walls := []Wall{
		{ID: "w1", Start: geometry.Point2D{X: 0, Y: 0}, End: geometry.Point2D{X: 100, Y: 0}, ThicknessMM: 225},
		{ID: "w2", Start: geometry.Point2D{X: 50, Y: 50}, End: geometry.Point2D{X: 50, Y: 50}, ThicknessMM: 225},
	}

	out, dropped, err := Sanitize(walls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dropped != 1 || len(out) != 1 || out[0].ID != "w1" {
		t.Errorf("expected only w1 to survive, got %d walls, %d dropped", len(out), dropped)
	}
}

func TestSanitizeRejectsNaN(t *testing.T) {
	walls := []Wall{
		{ID: "bad", Start: geometry.Point2D{X: math.NaN(), Y: 0}, End: geometry.Point2D{X: 1, Y: 0}},
	}
	if _, _, err := Sanitize(walls); err == nil {
		t.Fatal("expected error for NaN coordinates")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := NewDocument("test", 50)
	doc.Walls = []Wall{
		{ID: "w1", Start: geometry.Point2D{X: 0, Y: 0}, End: geometry.Point2D{X: 80, Y: 0}, ThicknessMM: 225, HeightMM: 3000},
	}
	doc.Openings = []Opening{
		{WallID: "w1", DistanceFromStartMM: 1000, WidthMM: 900, HeightMM: 2100},
	}

	path := filepath.Join(t.TempDir(), "test.wallplan")
	if err := doc.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ScaleMMPerUnit != 50 || len(got.Walls) != 1 || len(got.Openings) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Walls[0].ThicknessMM != 225 {
		t.Errorf("expected thickness 225, got %v", got.Walls[0].ThicknessMM)
	}
}

func TestLoadRejectsNonPositiveScale(t *testing.T) {
	doc := NewDocument("bad", 0)
	path := filepath.Join(t.TempDir(), "bad.wallplan")
	if err := doc.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-positive scale")
	}
}
