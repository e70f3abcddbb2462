package main

import (
	"flag"

	"sporos/internal/config"
)

// seedOptions holds the seed subcommand's flag values; only flags the user
// actually set override the loaded config.
type seedOptions struct {
	configPath   string
	populationID string

	inputs     int
	outputs    int
	weightMin  float64
	weightMax  float64
	acyclic    bool
	precision  string
	popSize    int
	proportion float64
	seed       int64
	storeKind  string
	dbPath     string
	exportDir  string
}

func newSeedFlagSet() (*flag.FlagSet, *seedOptions) {
	opts := &seedOptions{}
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML config path (defaults used when empty)")
	fs.StringVar(&opts.populationID, "id", "", "population snapshot id (generated when empty)")
	fs.IntVar(&opts.inputs, "inputs", 0, "input node count")
	fs.IntVar(&opts.outputs, "outputs", 0, "output node count")
	fs.Float64Var(&opts.weightMin, "weight-min", 0, "connection weight range lower bound")
	fs.Float64Var(&opts.weightMax, "weight-max", 0, "connection weight range upper bound")
	fs.BoolVar(&opts.acyclic, "acyclic", true, "require acyclic networks")
	fs.StringVar(&opts.precision, "precision", "", "weight precision: float32|float64")
	fs.IntVar(&opts.popSize, "pop", 0, "population size")
	fs.Float64Var(&opts.proportion, "proportion", 0, "initial connections proportion in (0, 1]")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed")
	fs.StringVar(&opts.storeKind, "store", "", "store backend: memory|sqlite")
	fs.StringVar(&opts.dbPath, "db-path", "", "sqlite database path")
	fs.StringVar(&opts.exportDir, "export-dir", "", "summary export directory")
	return fs, opts
}

// buildSeedConfig loads the config file (or the embedded defaults) and
// applies whichever flags were explicitly set on the command line.
func buildSeedConfig(fs *flag.FlagSet, opts *seedOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["inputs"] {
		cfg.Topology.Inputs = opts.inputs
	}
	if set["outputs"] {
		cfg.Topology.Outputs = opts.outputs
	}
	if set["weight-min"] {
		cfg.Topology.WeightMin = opts.weightMin
	}
	if set["weight-max"] {
		cfg.Topology.WeightMax = opts.weightMax
	}
	if set["acyclic"] {
		cfg.Topology.Acyclic = opts.acyclic
	}
	if set["precision"] {
		cfg.Topology.Precision = opts.precision
	}
	if set["pop"] {
		cfg.Seeding.PopulationSize = opts.popSize
	}
	if set["proportion"] {
		cfg.Seeding.ConnectionsProportion = opts.proportion
	}
	if set["seed"] {
		cfg.Seeding.Seed = opts.seed
	}
	if set["store"] {
		cfg.Store.Backend = opts.storeKind
	}
	if set["db-path"] {
		cfg.Store.DBPath = opts.dbPath
	}
	if set["export-dir"] {
		cfg.Export.Dir = opts.exportDir
	}
	return cfg, nil
}
