package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/avik-so/lorenzlab/internal/sim"
)

var componentNames = [3]string{"x", "y", "z"}

// ComponentPlot renders one state component against time.
func ComponentPlot(traj *sim.Trajectory, idx, width, height int) string {
	caption := fmt.Sprintf("x%d vs time", idx)
	if idx >= 0 && idx < len(componentNames) {
		caption = fmt.Sprintf("%s vs time", componentNames[idx])
	}
	return asciigraph.Plot(traj.Component(idx),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// MaximaPlot renders the maxima sequence against its index.
func MaximaPlot(maxima []float64, width, height int) string {
	if len(maxima) == 0 {
		return "no maxima"
	}
	return asciigraph.Plot(maxima,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("z maxima (successive)"),
	)
}
