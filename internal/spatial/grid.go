// Package spatial provides a grid-hash index for amortized O(1)
// nearest-point lookups during vertex welding.
package spatial

import (
	"math"

	"wallplan/pkg/geometry"
)

type cellKey struct {
	X, Y int
}

// Entry is a point stored in the index together with the caller's ID.
type Entry struct {
	ID  int64
	Pos geometry.Point2D
}

// Index buckets points into square cells keyed by floor(coord/cell).
// FindClose probes only the 3x3 neighborhood around the query, so the cell
// size must be at least as large as any threshold passed to FindClose or
// true neighbors in farther cells would be missed.
type Index struct {
	cell    float64
	buckets map[cellKey][]Entry
}

// NewIndex creates an index with the given cell size.
func NewIndex(cellSize float64) *Index {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Index{
		cell:    cellSize,
		buckets: make(map[cellKey][]Entry),
	}
}

// CellSize returns the configured cell size.
func (ix *Index) CellSize() float64 {
	return ix.cell
}

func (ix *Index) keyFor(p geometry.Point2D) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / ix.cell)),
		Y: int(math.Floor(p.Y / ix.cell)),
	}
}

// Insert adds a point to the index.
func (ix *Index) Insert(id int64, p geometry.Point2D) {
	k := ix.keyFor(p)
	ix.buckets[k] = append(ix.buckets[k], Entry{ID: id, Pos: p})
}

// FindClose scans the 3x3 neighborhood of cells around p and returns the
// ID of the first entry strictly within threshold of p.
func (ix *Index) FindClose(p geometry.Point2D, threshold float64) (int64, bool) {
	center := ix.keyFor(p)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			k := cellKey{X: center.X + dx, Y: center.Y + dy}
			for _, e := range ix.buckets[k] {
				if p.Distance(e.Pos) < threshold {
					return e.ID, true
				}
			}
		}
	}
	return 0, false
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	n := 0
	for _, b := range ix.buckets {
		n += len(b)
	}
	return n
}
