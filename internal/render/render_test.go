package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wallplan/internal/compile"
	"wallplan/internal/plan"
	"wallplan/pkg/geometry"
)

func TestWritePNG(t *testing.T) {
	doc := plan.NewDocument("room", 50)
	doc.Walls = []plan.Wall{
		{ID: "s", Start: geometry.Point2D{X: 0, Y: 0}, End: geometry.Point2D{X: 80, Y: 0}, ThicknessMM: 225, HeightMM: 3000},
		{ID: "e", Start: geometry.Point2D{X: 80, Y: 0}, End: geometry.Point2D{X: 80, Y: 80}, ThicknessMM: 225, HeightMM: 3000},
		{ID: "n", Start: geometry.Point2D{X: 80, Y: 80}, End: geometry.Point2D{X: 0, Y: 80}, ThicknessMM: 225, HeightMM: 3000},
		{ID: "w", Start: geometry.Point2D{X: 0, Y: 80}, End: geometry.Point2D{X: 0, Y: 0}, ThicknessMM: 225, HeightMM: 3000},
	}

	res, err := compile.Compile(doc, compile.DefaultOptions())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	path := filepath.Join(t.TempDir(), "room.png")
	opts := DefaultOptions()
	opts.Width, opts.Height = 256, 256
	if err := WritePNG(res, doc.ScaleMMPerUnit, path, opts); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Errorf("unexpected image size %v", img.Bounds())
	}
}

func TestWritePNGEmptyResult(t *testing.T) {
	doc := plan.NewDocument("empty", 50)
	res, err := compile.Compile(doc, compile.DefaultOptions())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	path := filepath.Join(t.TempDir(), "empty.png")
	if err := WritePNG(res, doc.ScaleMMPerUnit, path, DefaultOptions()); err == nil {
		t.Fatal("expected error for empty plan")
	}
}
