// Command overlapplot plots the junction overlap volume against the
// intersection angle, V = t^2*h/sin(theta), with the angle threshold
// below which the analytic correction stops being trustworthy.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	thickness := flag.Float64("thickness", 0.225, "Wall thickness in meters")
	height := flag.Float64("height", 3.0, "Wall height in meters")
	minAngle := flag.Float64("min-angle", 15, "Threshold angle in degrees")
	out := flag.String("o", "sensitivity.png", "Output image path")
	flag.Parse()

	overlap := func(thetaDeg float64) float64 {
		return *thickness * *thickness * *height / math.Sin(thetaDeg*math.Pi/180)
	}

	const n = 500
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		theta := 1 + float64(i)*(90-1)/(n-1)
		pts = append(pts, plotter.XY{X: theta, Y: overlap(theta)})
	}

	p := plot.New()
	p.Title.Text = "Sensitivity: overlap volume vs. intersection angle"
	p.X.Label.Text = "Intersection angle (degrees)"
	p.Y.Label.Text = "Overlap volume (m3)"
	p.X.Min, p.X.Max = 0, 90
	p.Y.Min, p.Y.Max = 0, 1

	curve, err := plotter.NewLine(pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build curve: %v\n", err)
		os.Exit(1)
	}
	p.Add(curve, plotter.NewGrid())
	p.Legend.Add("V = t^2 h / sin(theta)", curve)

	threshold, err := plotter.NewLine(plotter.XYs{
		{X: *minAngle, Y: 0},
		{X: *minAngle, Y: 1},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build threshold line: %v\n", err)
		os.Exit(1)
	}
	p.Add(threshold)
	p.Legend.Add(fmt.Sprintf("threshold %.0f deg", *minAngle), threshold)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Plot saved to %s\n", *out)
}
