// Package compile runs the full floorplan pipeline over an immutable
// plan snapshot: split, weld, face traversal, footprint and quantities.
// Every call returns freshly allocated structures; caller-owned walls
// are never mutated.
package compile

import (
	"fmt"

	"wallplan/internal/estimate"
	"wallplan/internal/face"
	"wallplan/internal/footprint"
	"wallplan/internal/plan"
	"wallplan/internal/topology"
)

// Options configures every pipeline stage.
type Options struct {
	Split    topology.SplitOptions
	Build    topology.BuildOptions
	Face     face.Options
	Estimate estimate.Options
}

// DefaultOptions returns the stage defaults. The weld threshold is
// clamped to the split threshold so splitting cannot loop on points the
// welder would merge.
func DefaultOptions() Options {
	return Options{
		Split:    topology.DefaultSplitOptions(),
		Build:    topology.DefaultBuildOptions(),
		Face:     face.DefaultOptions(),
		Estimate: estimate.DefaultOptions(),
	}
}

// GraphNode is a welded vertex in the output contract.
type GraphNode struct {
	ID     int64   `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Degree int     `json:"degree"`
}

// Graph is the output adjacency: node list plus undirected ID pairs.
type Graph struct {
	Nodes     []GraphNode `json:"nodes"`
	Adjacency [][2]int64  `json:"adjacency"`
}

// Diagnostics surfaces best-effort conditions that are not errors.
type Diagnostics struct {
	Split             topology.SplitDiagnostics `json:"split"`
	DroppedWalls      int                       `json:"dropped_walls"`
	CollapsedSegments int                       `json:"collapsed_segments"`
	DuplicateEdges    int                       `json:"duplicate_edges"`
	OpenChains        int                       `json:"open_chains"`
	FaceCapHit        bool                      `json:"face_cap_hit"`
}

// Result is the kernel's output contract for the estimator and report
// layers. Footprint coordinates are in millimeters, areas in square
// meters, lengths in meters.
type Result struct {
	FloorAreaM2 float64 `json:"floor_area_m2"`
	Graph       Graph   `json:"graph"`

	Footprint       footprint.MultiPolygon `json:"footprint"`
	FootprintAreaM2 float64                `json:"footprint_area_m2"`

	NaiveWallLengthM     float64 `json:"naive_wall_length_m"`
	CorrectedWallLengthM float64 `json:"corrected_wall_length_m"`

	Quantities  estimate.Quantities `json:"quantities"`
	Faces       []face.Face         `json:"-"`
	Diagnostics Diagnostics         `json:"diagnostics"`
}

// Compile runs the pipeline over the document snapshot.
func Compile(doc *plan.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil plan document")
	}
	scale := doc.ScaleMMPerUnit
	if scale <= 0 {
		return nil, fmt.Errorf("scale_mm_per_unit must be positive, got %v", scale)
	}
	if opts.Build.FuseThreshold > opts.Split.SplitThreshold {
		opts.Build.FuseThreshold = opts.Split.SplitThreshold
	}

	walls, dropped, err := plan.Sanitize(doc.Walls)
	if err != nil {
		return nil, err
	}

	segs, splitDiag := topology.SplitJunctions(walls, opts.Split)
	g := topology.BuildGraph(segs, opts.Build)
	faces := face.Traverse(g, opts.Face)

	var polys []footprint.Polygon
	for _, w := range walls {
		if p, ok := footprint.WallPolygon(w, scale); ok {
			polys = append(polys, p)
		}
	}
	fp := footprint.Union(polys)

	matched := estimate.MatchOpenings(doc.Openings, walls, segs, scale)
	quantities := estimate.Estimate(g, matched, scale, opts.Estimate)

	res := &Result{
		FloorAreaM2:          faces.TotalArea * (scale / 1000) * (scale / 1000),
		Graph:                exportGraph(g),
		Footprint:            fp,
		FootprintAreaM2:      footprint.Area(fp),
		NaiveWallLengthM:     quantities.Correction.NaiveLengthM,
		CorrectedWallLengthM: quantities.Correction.CorrectedLengthM,
		Quantities:           quantities,
		Faces:                faces.Faces,
		Diagnostics: Diagnostics{
			Split:             splitDiag,
			DroppedWalls:      dropped,
			CollapsedSegments: g.CollapsedSegments,
			DuplicateEdges:    g.DuplicateEdges,
			OpenChains:        faces.OpenWalks,
			FaceCapHit:        faces.CapHit,
		},
	}
	return res, nil
}

func exportGraph(g *topology.Graph) Graph {
	out := Graph{Nodes: make([]GraphNode, 0, len(g.Nodes()))}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, GraphNode{
			ID:     n.ID(),
			X:      n.Pos.X,
			Y:      n.Pos.Y,
			Degree: n.Degree(),
		})
	}
	for _, e := range g.Edges() {
		out.Adjacency = append(out.Adjacency, [2]int64{e.A.ID(), e.B.ID()})
	}
	return out
}
