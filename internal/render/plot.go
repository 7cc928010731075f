// Package render produces diagnostic images from trajectories and maxima
// sequences: PNG scatter plots via gonum/plot and interactive HTML via
// go-echarts. It depends only on the (Trajectory, MaximaSequence) output
// surface of the simulator.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/avik-so/lorenzlab/internal/analysis"
	"github.com/avik-so/lorenzlab/internal/sim"
)

var scatterColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// ScatterPNG writes a scatter plot of pts to path (format from extension).
func ScatterPNG(path string, pts []analysis.Point, title, xLabel, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = scatterColor
	p.Add(sc)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// ProjectionPNG plots two trajectory components against each other.
func ProjectionPNG(path string, traj *sim.Trajectory, xIdx, yIdx int) error {
	names := [3]string{"x", "y", "z"}
	pts := make([]analysis.Point, traj.Len())
	for i, s := range traj.States {
		pts[i] = analysis.Point{X: s[xIdx], Y: s[yIdx]}
	}
	return ScatterPNG(path, pts, "trajectory projection", names[xIdx], names[yIdx])
}

// MaximaPNG plots the maxima sequence against its index.
func MaximaPNG(path string, maxima []float64) error {
	pts := make([]analysis.Point, len(maxima))
	for i, m := range maxima {
		pts[i] = analysis.Point{X: float64(i), Y: m}
	}
	return ScatterPNG(path, pts, "z maxima", "n", "M(n)")
}

// ReturnMapPNG plots successive maxima pairs, the Lorenz map.
func ReturnMapPNG(path string, maxima []float64) error {
	return ScatterPNG(path, analysis.ReturnMap(maxima), "return map", "M(n)", "M(n+1)")
}
