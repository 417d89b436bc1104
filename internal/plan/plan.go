// Package plan defines the wall and opening records exchanged with the
// editor layer, plan file persistence, and input validation.
package plan

import (
	"fmt"

	"wallplan/pkg/geometry"
)

// Wall is a user-drawn centerline segment with real-world thickness and
// height. Walls are authored externally and treated as read-only input.
type Wall struct {
	ID          string           `json:"id"`
	Start       geometry.Point2D `json:"start"`
	End         geometry.Point2D `json:"end"`
	ThicknessMM float64          `json:"thickness_mm"`
	HeightMM    float64          `json:"height_mm"`
}

// Length returns the centerline length in drawing units.
func (w Wall) Length() float64 {
	return w.Start.Distance(w.End)
}

// Opening is a door or window cut into a wall, located by its distance
// from the wall's start along the centerline.
type Opening struct {
	WallID              string  `json:"wall_id"`
	DistanceFromStartMM float64 `json:"distance_from_start_mm"`
	WidthMM             float64 `json:"width_mm"`
	HeightMM            float64 `json:"height_mm"`
}

// AreaM2 returns the opening's face area in square meters.
func (o Opening) AreaM2() float64 {
	return (o.WidthMM / 1000) * (o.HeightMM / 1000)
}

// minWallLength is the drawing-unit length below which a wall is
// considered degenerate and dropped.
const minWallLength = 1e-9

// Sanitize returns a copy of walls with degenerate entries (zero length,
// coincident endpoints) removed, plus the number dropped. Walls with
// non-finite coordinates are a caller bug and reported as an error.
func Sanitize(walls []Wall) ([]Wall, int, error) {
	out := make([]Wall, 0, len(walls))
	dropped := 0
	for _, w := range walls {
		if !w.Start.IsFinite() || !w.End.IsFinite() {
			return nil, 0, fmt.Errorf("wall %q has non-finite coordinates", w.ID)
		}
		if w.Length() < minWallLength {
			dropped++
			continue
		}
		out = append(out, w)
	}
	return out, dropped, nil
}
