// Package config loads seeding-experiment configuration: topology spec,
// sampling parameters, store backend, and export location. Values come from
// the embedded defaults, optionally overlaid by a YAML file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sporos/internal/genome"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Topology TopologyConfig `yaml:"topology"`
	Seeding  SeedingConfig  `yaml:"seeding"`
	Store    StoreConfig    `yaml:"store"`
	Export   ExportConfig   `yaml:"export"`
}

type TopologyConfig struct {
	Inputs    int     `yaml:"inputs"`
	Outputs   int     `yaml:"outputs"`
	WeightMin float64 `yaml:"weight_min"`
	WeightMax float64 `yaml:"weight_max"`
	Acyclic   bool    `yaml:"acyclic"`
	Precision string  `yaml:"precision"`
}

type SeedingConfig struct {
	PopulationSize        int     `yaml:"population_size"`
	ConnectionsProportion float64 `yaml:"connections_proportion"`
	Seed                  int64   `yaml:"seed"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	DBPath  string `yaml:"db_path"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load starts from the defaults and overlays the YAML file at path when one
// is given. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TopologySpec maps the topology section onto the genome package's spec.
func (c *Config) TopologySpec() genome.TopologySpec {
	return genome.TopologySpec{
		Inputs:    c.Topology.Inputs,
		Outputs:   c.Topology.Outputs,
		WeightMin: c.Topology.WeightMin,
		WeightMax: c.Topology.WeightMax,
		Acyclic:   c.Topology.Acyclic,
		Precision: genome.Precision(c.Topology.Precision),
	}
}

// Validate surfaces configuration errors before any sampling begins.
func (c *Config) Validate() error {
	if err := c.TopologySpec().Validate(); err != nil {
		return err
	}
	if c.Seeding.PopulationSize < 1 {
		return fmt.Errorf("%w: got %d", genome.ErrPopulationSize, c.Seeding.PopulationSize)
	}
	if p := c.Seeding.ConnectionsProportion; p <= 0 || p > 1 {
		return fmt.Errorf("%w: got %g", genome.ErrConnectionProportion, p)
	}
	switch c.Store.Backend {
	case "", "memory", "sqlite":
	default:
		return fmt.Errorf("unsupported store backend: %s", c.Store.Backend)
	}
	return nil
}
