// Package config loads a YAML parameter card: device parameters,
// sweep bounds and figure outputs for one run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edp1096/diode-iv/pkg/analysis"
	"github.com/edp1096/diode-iv/pkg/device"
)

type Config struct {
	Device map[string]float64 `yaml:"device"`
	Sweep  SweepConfig        `yaml:"sweep"`
	Plot   PlotConfig         `yaml:"plot"`
}

// SweepConfig overrides the default sweep bounds. Fields are pointers
// so an explicit 0.0 is distinguishable from an absent key.
type SweepConfig struct {
	Start *float64 `yaml:"start"`
	Stop  *float64 `yaml:"stop"`
	Step  *float64 `yaml:"step"`
}

// PlotConfig names the figure outputs. Empty paths skip the figure.
type PlotConfig struct {
	Linear  string `yaml:"linear"`
	SemiLog string `yaml:"semilog"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Diode builds and validates the device from the parameter map.
func (c *Config) Diode() (*device.Diode, error) {
	return device.NewDiode(c.Device)
}

// SweepSpec applies the card's overrides to the default sweep.
func (c *Config) SweepSpec() analysis.SweepSpec {
	spec := analysis.DefaultSweep()
	if c.Sweep.Start != nil {
		spec.Start = *c.Sweep.Start
	}
	if c.Sweep.Stop != nil {
		spec.Stop = *c.Sweep.Stop
	}
	if c.Sweep.Step != nil {
		spec.Step = *c.Sweep.Step
	}
	return spec
}
