package config

// Presets are named run configurations per field.
var Presets = map[string]map[string]*Config{
	"lorenz": {
		// The 1963 reference trajectory behind the classic maxima plots.
		"classic": {
			Field: "lorenz", Integrator: "rk4", Dt: 0.01, Steps: 6113,
			Init:   InitConfig{X: 0.0, Y: 0.1, Z: 0.0},
			Params: map[string]float64{"sigma": 10.0, "r": 28.0, "b": 8.0 / 3.0},
		},
		// Below the chaotic regime: spirals into a fixed point.
		"stable": {
			Field: "lorenz", Integrator: "rk4", Dt: 0.01, Steps: 6113,
			Init:   InitConfig{X: 0.0, Y: 0.1, Z: 0.0},
			Params: map[string]float64{"sigma": 10.0, "r": 14.0, "b": 8.0 / 3.0},
		},
		// Finer grid over the same interval for convergence comparisons.
		"fine": {
			Field: "lorenz", Integrator: "rk4", Dt: 0.001, Steps: 61130,
			Init:   InitConfig{X: 0.0, Y: 0.1, Z: 0.0},
			Params: map[string]float64{"sigma": 10.0, "r": 28.0, "b": 8.0 / 3.0},
		},
	},
	"rossler": {
		"classic": {
			Field: "rossler", Integrator: "rk4", Dt: 0.05, Steps: 12000,
			Init:   InitConfig{X: 1.0, Y: 1.0, Z: 1.0},
			Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 5.7},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers may mutate it
// without corrupting the shared table.
func GetPreset(fieldName, preset string) *Config {
	fieldPresets, ok := Presets[fieldName]
	if !ok {
		return nil
	}
	p, ok := fieldPresets[preset]
	if !ok {
		return nil
	}

	cfg := *p
	cfg.Params = make(map[string]float64, len(p.Params))
	for k, v := range p.Params {
		cfg.Params[k] = v
	}
	return &cfg
}

func ListPresets(fieldName string) []string {
	fieldPresets, ok := Presets[fieldName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fieldPresets))
	for name := range fieldPresets {
		names = append(names, name)
	}
	return names
}
