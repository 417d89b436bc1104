// Command plancalc compiles a plan file and prints the derived graph,
// areas and material quantities.
package main

import (
	"flag"
	"fmt"
	"os"

	"wallplan/internal/compile"
	"wallplan/internal/plan"
	"wallplan/internal/render"
)

func main() {
	planPath := flag.String("plan", "", "Path to plan file (.wallplan JSON)")
	scale := flag.Float64("scale", 0, "Override scale in mm per drawing unit (0 = use plan's)")
	renderPath := flag.String("render", "", "Optional PNG output of the compiled plan")
	flag.Parse()

	if *planPath == "" {
		fmt.Println("Usage: plancalc -plan <path> [-scale 50] [-render out.png]")
		os.Exit(1)
	}

	doc, err := plan.Load(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load plan: %v\n", err)
		os.Exit(1)
	}
	if *scale > 0 {
		doc.ScaleMMPerUnit = *scale
	}

	fmt.Printf("Loaded plan %q: %d walls, %d openings, scale %.1f mm/unit\n",
		doc.Name, len(doc.Walls), len(doc.Openings), doc.ScaleMMPerUnit)

	res, err := compile.Compile(doc, compile.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compile failed: %v\n", err)
		os.Exit(1)
	}

	d := res.Diagnostics
	fmt.Printf("\nTopology:\n")
	fmt.Printf("  Split: %d iterations, %d T-junctions, %d crossings, converged=%v\n",
		d.Split.Iterations, d.Split.TJunctions, d.Split.XCrossings, d.Split.Converged)
	fmt.Printf("  Graph: %d nodes, %d edges (%d walls dropped, %d collapsed, %d duplicates)\n",
		len(res.Graph.Nodes), len(res.Graph.Adjacency),
		d.DroppedWalls, d.CollapsedSegments, d.DuplicateEdges)
	if !d.Split.Converged {
		fmt.Println("  WARNING: splitting hit its iteration cap; result is best-effort")
	}

	fmt.Printf("\nNodes:\n")
	fmt.Printf("%-6s %12s %12s %8s\n", "ID", "X", "Y", "Degree")
	for _, n := range res.Graph.Nodes {
		fmt.Printf("%-6d %12.2f %12.2f %8d\n", n.ID, n.X, n.Y, n.Degree)
	}

	fmt.Printf("\nAreas:\n")
	fmt.Printf("  Floor area:      %10.3f m2 (%d rooms, %d open chains)\n",
		res.FloorAreaM2, len(res.Faces), d.OpenChains)
	fmt.Printf("  Wall footprint:  %10.3f m2\n", res.FootprintAreaM2)

	q := res.Quantities
	fmt.Printf("\nQuantities:\n")
	fmt.Printf("  Wall length:     %10.3f m naive, %.3f m corrected (-%.3f m over %d junctions)\n",
		res.NaiveWallLengthM, res.CorrectedWallLengthM,
		q.Correction.DeductionM, q.Correction.Junctions)
	fmt.Printf("  Wall face area:  %10.3f m2 gross, %.3f m2 net of openings\n",
		q.GrossWallAreaM2, q.NetWallAreaM2)
	fmt.Printf("  Blocks:          %10d\n", q.Blocks)
	fmt.Printf("  Mortar:          %10.3f m3\n", q.MortarM3)
	fmt.Printf("  Concrete:        %10.3f m3\n", q.ConcreteM3)

	if *renderPath != "" {
		if err := render.WritePNG(res, doc.ScaleMMPerUnit, *renderPath, render.DefaultOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *renderPath)
	}
}
