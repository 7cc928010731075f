package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Canonical run parameters: the Lorenz (1963) reference trajectory.
const (
	DefaultDt    = 0.01
	DefaultSteps = 6113
	DefaultY0    = 0.1
	DefaultSigma = 10.0
	DefaultR     = 28.0
	DefaultB     = 8.0 / 3.0
)

type Config struct {
	Field      string  `yaml:"field"`
	Integrator string  `yaml:"integrator"`
	Dt         float64 `yaml:"dt"`
	Steps      int     `yaml:"steps"`
	// ValidateState selects the fail-fast divergence policy; the default
	// (false) lets non-finite values propagate through the trajectory.
	ValidateState bool               `yaml:"validate_state"`
	Init          InitConfig         `yaml:"init"`
	Params        map[string]float64 `yaml:"params"`
}

type InitConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func Default() *Config {
	return &Config{
		Field:      "lorenz",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		Init:       InitConfig{X: 0.0, Y: DefaultY0, Z: 0.0},
		Params: map[string]float64{
			"sigma": DefaultSigma,
			"r":     DefaultR,
			"b":     DefaultB,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitState returns the initial state vector (X, Y, Z).
func (c *Config) InitState() []float64 {
	return []float64{c.Init.X, c.Init.Y, c.Init.Z}
}
