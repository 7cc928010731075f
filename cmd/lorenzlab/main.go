package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/avik-so/lorenzlab/internal/analysis"
	"github.com/avik-so/lorenzlab/internal/config"
	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/experiment"
	"github.com/avik-so/lorenzlab/internal/render"
	"github.com/avik-so/lorenzlab/internal/sim"
	"github.com/avik-so/lorenzlab/internal/store"
	"github.com/avik-so/lorenzlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	fieldName  string
	integrator string
	dt         float64
	steps      int
	initX      float64
	initY      float64
	initZ      float64
	sigma      float64
	rParam     float64
	bParam     float64
	failFast   bool

	// scatter axes
	xAxis int
	yAxis int

	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepCount int

	// render output
	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenzlab",
		Short: "Lorenz attractor simulation and return map lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lorenzlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a trajectory and extract z maxima",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot trajectory components",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	maximaCmd := &cobra.Command{
		Use:   "maxima [run_id]",
		Short: "maxima statistics and return map",
		Args:  cobra.ExactArgs(1),
		RunE:  showMaxima,
	}

	scatterCmd := &cobra.Command{
		Use:   "scatter [run_id]",
		Short: "trajectory projection on a braille canvas",
		Args:  cobra.ExactArgs(1),
		RunE:  scatterRun,
	}
	scatterCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	scatterCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for y-axis")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live attractor view",
		RunE:  runLiveView,
	}
	addRunFlags(liveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a parameter or initial coordinate across runs",
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "r", "parameter or coordinate (x/y/z) to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 20.0, "sweep start value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 30.0, "sweep end value")
	sweepCmd.Flags().IntVar(&sweepCount, "count", 5, "number of sweep points")

	presetsCmd := &cobra.Command{
		Use:   "presets [field]",
		Short: "list available presets for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for field: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print run trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "write return map, maxima and projection PNGs",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&outPath, "out", ".", "output directory")

	htmlCmd := &cobra.Command{
		Use:   "html [run_id]",
		Short: "write an interactive return map HTML page",
		Args:  cobra.ExactArgs(1),
		RunE:  renderHTML,
	}
	htmlCmd.Flags().StringVar(&outPath, "out", "returnmap.html", "output file")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, maximaCmd, scatterCmd, liveCmd,
		sweepCmd, presetsCmd, exportCSVCmd, exportJSONCmd, renderCmd, htmlCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&fieldName, "field", "lorenz", "vector field")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of states to record")
	cmd.Flags().Float64Var(&initX, "x", 0.0, "initial x")
	cmd.Flags().Float64Var(&initY, "y", config.DefaultY0, "initial y")
	cmd.Flags().Float64Var(&initZ, "z", 0.0, "initial z")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "lorenz sigma")
	cmd.Flags().Float64Var(&rParam, "r", config.DefaultR, "lorenz r")
	cmd.Flags().Float64Var(&bParam, "b", config.DefaultB, "lorenz b")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort when the state leaves the finite range")
}

// buildConfig resolves preset, config file and flags into a run config.
// Precedence is flags over config file over preset over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(fieldName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(fieldName))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("field") {
		cfg.Field = fieldName
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("x") {
		cfg.Init.X = initX
	}
	if cmd.Flags().Changed("y") {
		cfg.Init.Y = initY
	}
	if cmd.Flags().Changed("z") {
		cfg.Init.Z = initZ
	}
	if cmd.Flags().Changed("fail-fast") {
		cfg.ValidateState = failFast
	}
	if cfg.Field == "lorenz" {
		if cmd.Flags().Changed("sigma") {
			cfg.Params["sigma"] = sigma
		}
		if cmd.Flags().Changed("r") {
			cfg.Params["r"] = rParam
		}
		if cmd.Flags().Changed("b") {
			cfg.Params["b"] = bParam
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s (%s, dt=%g, steps=%d)...\n", cfg.Field, cfg.Integrator, cfg.Dt, cfg.Steps)
	start := time.Now()

	out, err := experiment.New(cfg).Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Field, cfg.Integrator, cfg.Params, out.Trajectory, out.Maxima)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Print(viz.StatsView(analysis.Summary(out.Maxima)))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tDT\tSTEPS\tINTEG\tMAXIMA")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\t%s\t%d\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Integrator,
			run.MaximaCount,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("field: %s\n", meta.Field)
	fmt.Printf("samples: %d\n\n", traj.Len())

	for idx := 0; idx < len(traj.States[0]); idx++ {
		fmt.Println(viz.ComponentPlot(traj, idx, 80, 10))
		fmt.Println()
	}
	return nil
}

func showMaxima(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	maxima, err := st.LoadMaxima(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.StatsView(analysis.Summary(maxima)))
	fmt.Println()
	fmt.Println(viz.MaximaPlot(maxima, 80, 10))
	fmt.Println()

	pts := analysis.ReturnMap(maxima)
	if len(pts) > 0 {
		fmt.Println("return map M(n+1) vs M(n):")
		fmt.Print(viz.Scatter(pts, 60, 20))
	}
	return nil
}

func scatterRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}
	dim := len(traj.States[0])
	if xAxis < 0 || xAxis >= dim || yAxis < 0 || yAxis >= dim {
		return fmt.Errorf("axis out of range for %d-dimensional state", dim)
	}

	fmt.Print(viz.Projection(traj, xAxis, yAxis, 70, 24))
	return nil
}

func runLiveView(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	f, err := exp.BuildField()
	if err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	integ, err := reg.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	return viz.RunLive(f, integ, cfg.InitState(), cfg.Dt, cfg.Field)
}

type sweepResult struct {
	value float64
	stats analysis.Stats
	err   error
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if sweepCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	values := make([]float64, sweepCount)
	for i := range values {
		if sweepCount == 1 {
			values[i] = sweepMin
		} else {
			values[i] = sweepMin + (sweepMax-sweepMin)*float64(i)/float64(sweepCount-1)
		}
	}

	var results []sweepResult
	switch sweepParam {
	case "x", "y", "z":
		results, err = sweepInitial(cfg, sweepParam, values)
	default:
		results, err = sweepFieldParam(cfg, sweepParam, values)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMAXIMA\tMEAN\tSTDDEV\tMIN\tMAX\n", sweepParam)
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(w, "%.4f\terror: %v\n", res.value, res.err)
			continue
		}
		fmt.Fprintf(w, "%.4f\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			res.value, res.stats.Count, res.stats.Mean, res.stats.StdDev, res.stats.Min, res.stats.Max)
	}
	return w.Flush()
}

// sweepInitial varies one initial coordinate; the field is identical across
// trajectories so the ensemble runner applies directly.
func sweepInitial(cfg *config.Config, coord string, values []float64) ([]sweepResult, error) {
	// Surface bad field, integrator or parameter names before fanning out.
	if _, err := experiment.New(cfg).BuildField(); err != nil {
		return nil, err
	}

	reg := experiment.NewRegistry()
	newField, err := reg.FieldFactory(cfg.Field)
	if err != nil {
		return nil, err
	}
	newInteg, err := reg.IntegratorFactory(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	idx := map[string]int{"x": 0, "y": 1, "z": 2}[coord]
	starts := make([]dynamo.State, len(values))
	for i, v := range values {
		start := dynamo.State(cfg.InitState())
		start[idx] = v
		starts[i] = start
	}

	makeField := func() dynamo.Field {
		f := newField()
		if c, ok := f.(dynamo.Configurable); ok {
			for k, v := range cfg.Params {
				if err := c.SetParam(k, v); err != nil {
					break
				}
			}
		}
		return f
	}

	ens := sim.NewEnsemble(makeField, newInteg)
	trajs, err := ens.Run(context.Background(), starts, sim.Config{
		Dt:            cfg.Dt,
		Steps:         cfg.Steps,
		ValidateState: cfg.ValidateState,
	})
	if err != nil {
		return nil, err
	}

	results := make([]sweepResult, len(values))
	for i, traj := range trajs {
		maxima := analysis.LocalMaxima(traj.Component(2))
		results[i] = sweepResult{value: values[i], stats: analysis.Summary(maxima)}
	}
	return results, nil
}

// sweepFieldParam varies one field parameter, one run per value. Each run
// gets its own field and integrator so they can proceed concurrently.
func sweepFieldParam(cfg *config.Config, param string, values []float64) ([]sweepResult, error) {
	results := make([]sweepResult, len(values))

	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			runCfg := *cfg
			params := make(map[string]float64, len(cfg.Params)+1)
			for k, pv := range cfg.Params {
				params[k] = pv
			}
			params[param] = value
			runCfg.Params = params

			out, err := experiment.New(&runCfg).Run(context.Background())
			if err != nil {
				results[idx] = sweepResult{value: value, err: err}
				return
			}
			results[idx] = sweepResult{value: value, stats: analysis.Summary(out.Maxima)}
		}(i, v)
	}
	wg.Wait()

	return results, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	path := store.New(dataDir).TrajectoryPath(args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	maxima, err := st.LoadMaxima(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outPath, 0755); err != nil {
		return err
	}

	outputs := []struct {
		name string
		fn   func(string) error
	}{
		{"returnmap.png", func(p string) error { return render.ReturnMapPNG(p, maxima) }},
		{"maxima.png", func(p string) error { return render.MaximaPNG(p, maxima) }},
		{"xz.png", func(p string) error { return render.ProjectionPNG(p, traj, 0, 2) }},
	}
	for _, out := range outputs {
		p := filepath.Join(outPath, out.name)
		if err := out.fn(p); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}

func renderHTML(cmd *cobra.Command, args []string) error {
	maxima, err := store.New(dataDir).LoadMaxima(args[0])
	if err != nil {
		return err
	}
	if err := render.WriteReturnMapHTML(outPath, maxima); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
