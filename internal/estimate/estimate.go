// Package estimate applies the junction-corrected wall length to
// material quantity formulas. These are simple volumetric heuristics,
// not structural analysis.
package estimate

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"wallplan/internal/topology"
)

// Options holds the material constants behind the quantity formulas.
type Options struct {
	// Standard block face, including the mortar joint.
	BlockLengthMM float64
	BlockHeightMM float64
	MortarJointMM float64

	// Mortar volume per square meter of wall face.
	MortarM3PerM2 float64

	// Strip foundation cross-section.
	FoundationWidthM float64
	FoundationDepthM float64
}

// DefaultOptions returns constants for 450x225 blockwork with 10mm
// joints on a 600x200 strip foundation.
func DefaultOptions() Options {
	return Options{
		BlockLengthMM:    450,
		BlockHeightMM:    225,
		MortarJointMM:    10,
		MortarM3PerM2:    0.026,
		FoundationWidthM: 0.6,
		FoundationDepthM: 0.2,
	}
}

// Correction is the analytic junction-overlap length deduction.
type Correction struct {
	NaiveLengthM     float64 `json:"naive_length_m"`
	CorrectedLengthM float64 `json:"corrected_length_m"`
	DeductionM       float64 `json:"deduction_m"`
	Junctions        int     `json:"junctions"`
}

// CorrectLength computes the overlap-corrected total wall length. Each
// node of degree k>1 with mean incident thickness t and height h double
// counts an overlap volume V=(k-1)*t^2*h, an equivalent length of
// V/(t*h) = (k-1)*t. The model assumes similar thicknesses at a node;
// the CSG footprint is the ground truth when they diverge sharply.
func CorrectLength(g *topology.Graph, scaleMMPerUnit float64) Correction {
	lengths := make([]float64, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		lengths = append(lengths, e.Seg.Length()*scaleMMPerUnit/1000)
	}

	var c Correction
	c.NaiveLengthM = floats.Sum(lengths)

	for _, n := range g.Nodes() {
		k := n.Degree()
		if k < 2 {
			continue
		}
		thicknesses := make([]float64, 0, k)
		for _, s := range n.Incident {
			thicknesses = append(thicknesses, s.ThicknessMM/1000)
		}
		tbar := stat.Mean(thicknesses, nil)
		c.DeductionM += float64(k-1) * tbar
		c.Junctions++
	}

	c.CorrectedLengthM = math.Max(0, c.NaiveLengthM-c.DeductionM)
	return c
}

// Quantities is the estimator output for the report layer.
type Quantities struct {
	Correction Correction `json:"correction"`

	GrossWallAreaM2 float64 `json:"gross_wall_area_m2"`
	OpeningAreaM2   float64 `json:"opening_area_m2"`
	NetWallAreaM2   float64 `json:"net_wall_area_m2"`

	Blocks     int     `json:"blocks"`
	MortarM3   float64 `json:"mortar_m3"`
	ConcreteM3 float64 `json:"concrete_m3"`
}

// Estimate derives material quantities from the corrected length, the
// mean wall height, and the matched opening areas.
func Estimate(g *topology.Graph, openings []MatchedOpening, scaleMMPerUnit float64, opts Options) Quantities {
	q := Quantities{Correction: CorrectLength(g, scaleMMPerUnit)}

	heights := make([]float64, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		heights = append(heights, e.Seg.HeightMM/1000)
	}
	heightM := 0.0
	if len(heights) > 0 {
		heightM = stat.Mean(heights, nil)
	}

	q.GrossWallAreaM2 = q.Correction.CorrectedLengthM * heightM
	for _, o := range openings {
		if o.Matched {
			q.OpeningAreaM2 += o.Opening.AreaM2()
		}
	}
	q.NetWallAreaM2 = math.Max(0, q.GrossWallAreaM2-q.OpeningAreaM2)

	blockFaceM2 := ((opts.BlockLengthMM + opts.MortarJointMM) / 1000) *
		((opts.BlockHeightMM + opts.MortarJointMM) / 1000)
	if blockFaceM2 > 0 {
		q.Blocks = int(math.Ceil(q.NetWallAreaM2 / blockFaceM2))
	}
	q.MortarM3 = q.NetWallAreaM2 * opts.MortarM3PerM2
	q.ConcreteM3 = q.Correction.CorrectedLengthM * opts.FoundationWidthM * opts.FoundationDepthM

	return q
}
