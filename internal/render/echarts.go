package render

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/avik-so/lorenzlab/internal/analysis"
)

// ReturnMapHTML renders the Lorenz return map as an interactive scatter
// chart.
func ReturnMapHTML(w io.Writer, maxima []float64) error {
	pts := analysis.ReturnMap(maxima)

	data := make([]opts.ScatterData, len(pts))
	for i, p := range pts {
		data[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Lorenz return map",
			Width:     "800px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Return map of successive z maxima",
			Subtitle: "M(n+1) vs M(n)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "M(n)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "M(n+1)", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("maxima", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	return scatter.Render(w)
}

// WriteReturnMapHTML writes the return map chart to a file.
func WriteReturnMapHTML(path string, maxima []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReturnMapHTML(f, maxima)
}
