// Package render rasterizes a compiled plan to a PNG for inspecting
// fixtures without the editor.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"wallplan/internal/compile"
	"wallplan/internal/footprint"
	"wallplan/pkg/geometry"
)

// Options configures the raster output.
type Options struct {
	Width    int
	Height   int
	Margin   float64 // fraction of the image kept clear around the plan
	Face     color.RGBA
	Wall     color.RGBA
	Backdrop color.RGBA
}

// DefaultOptions returns a 1024px-wide render with room faces under the
// wall footprints.
func DefaultOptions() Options {
	return Options{
		Width:    1024,
		Height:   1024,
		Margin:   0.05,
		Face:     color.RGBA{R: 0xb8, G: 0xd8, B: 0xf0, A: 0xff},
		Wall:     color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff},
		Backdrop: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WritePNG renders the result's faces and wall footprint to path.
// scaleMMPerUnit must match the scale the plan was compiled with so the
// face rings (drawing units) and footprint rings (mm) line up.
func WritePNG(res *compile.Result, scaleMMPerUnit float64, path string, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("render: non-positive image size %dx%d", opts.Width, opts.Height)
	}

	var pts []geometry.Point2D
	for _, poly := range res.Footprint {
		for _, ring := range poly {
			pts = append(pts, ring...)
		}
	}
	for _, f := range res.Faces {
		for _, p := range f.Ring {
			pts = append(pts, p.Scale(scaleMMPerUnit))
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("render: nothing to draw")
	}

	tx := fitTransform(geometry.BoundingBox(pts), opts)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fill := image.NewUniform(opts.Backdrop)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, fill.C)
		}
	}

	// Faces under walls, matching the editor's layering.
	for _, f := range res.Faces {
		ring := make(footprint.Ring, len(f.Ring))
		for i, p := range f.Ring {
			ring[i] = p.Scale(scaleMMPerUnit)
		}
		fillRings(img, []footprint.Ring{ring}, tx, opts.Face, opts)
	}
	for _, poly := range res.Footprint {
		fillRings(img, poly, tx, opts.Wall, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// transform maps plan millimeters into image pixels, flipping Y so the
// plan's up is the image's up.
type transform struct {
	scale      float64
	offX, offY float64
	height     float64
}

func (t transform) apply(p geometry.Point2D) (float32, float32) {
	return float32(p.X*t.scale + t.offX), float32(t.height - (p.Y*t.scale + t.offY))
}

func fitTransform(b geometry.Rect, opts Options) transform {
	margin := opts.Margin
	if margin < 0 || margin >= 0.5 {
		margin = 0.05
	}
	availW := float64(opts.Width) * (1 - 2*margin)
	availH := float64(opts.Height) * (1 - 2*margin)

	s := 1.0
	if b.Width > 0 || b.Height > 0 {
		sx, sy := availW/b.Width, availH/b.Height
		if b.Width == 0 {
			s = sy
		} else if b.Height == 0 {
			s = sx
		} else if sx < sy {
			s = sx
		} else {
			s = sy
		}
	}

	c := b.Center()
	return transform{
		scale:  s,
		offX:   float64(opts.Width)/2 - c.X*s,
		offY:   float64(opts.Height)/2 - c.Y*s,
		height: float64(opts.Height),
	}
}

// fillRings rasterizes a polygon's rings in one pass; the rasterizer's
// non-zero winding leaves correctly wound holes unfilled.
func fillRings(img *image.RGBA, rings []footprint.Ring, tx transform, c color.RGBA, opts Options) {
	r := vector.NewRasterizer(opts.Width, opts.Height)
	drawn := false
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		x, y := tx.apply(ring[0])
		r.MoveTo(x, y)
		for _, p := range ring[1:] {
			x, y = tx.apply(p)
			r.LineTo(x, y)
		}
		r.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}
