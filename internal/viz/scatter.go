package viz

import (
	"github.com/avik-so/lorenzlab/internal/analysis"
	"github.com/avik-so/lorenzlab/internal/sim"
)

// Scatter draws points on a braille canvas, auto-scaled to their bounding
// box with 10% padding. Returns "" for empty input.
func Scatter(points []analysis.Point, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	subW := width*2 - 1
	subH := height*4 - 1

	canvas := NewCanvas(width, height)
	for _, p := range points {
		x := int((p.X - minX) / rangeX * float64(subW))
		y := subH - int((p.Y-minY)/rangeY*float64(subH))
		canvas.Set(x, y)
	}
	return canvas.String()
}

// Projection scatters two components of a trajectory against each other,
// e.g. xIdx=0, yIdx=2 for the X-Z silhouette of the butterfly.
func Projection(traj *sim.Trajectory, xIdx, yIdx, width, height int) string {
	pts := make([]analysis.Point, traj.Len())
	for i, s := range traj.States {
		pts[i] = analysis.Point{X: s[xIdx], Y: s[yIdx]}
	}
	return Scatter(pts, width, height)
}
