// Package sporos exposes the seeding core behind a storage-backed client:
// construct a population from an experiment config, persist it, inspect it,
// and export per-genome summaries.
package sporos

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"sporos/internal/config"
	"sporos/internal/genome"
	"sporos/internal/model"
	"sporos/internal/stats"
	"sporos/internal/storage"
)

const defaultExportsDir = "exports"

type Options struct {
	StoreKind  string
	DBPath     string
	ExportsDir string
}

type Client struct {
	store      storage.Store
	exportsDir string
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	kind := opts.StoreKind
	if kind == "" {
		kind = storage.DefaultStoreKind()
	}
	store, err := storage.NewStore(kind, opts.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}
	return &Client{store: store, exportsDir: exportsDir}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// SeedResult reports what one seeding pass produced.
type SeedResult struct {
	PopulationID    string
	Genomes         int
	CandidateCount  int
	MeanConnections float64
}

// SeedPopulation constructs and persists a seed population from cfg,
// dispatching once on the configured numeric precision. populationID may be
// empty to get a generated snapshot id.
func (c *Client) SeedPopulation(ctx context.Context, cfg *config.Config, populationID string) (SeedResult, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Default()
		if err != nil {
			return SeedResult{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return SeedResult{}, err
	}

	spec := cfg.TopologySpec()
	switch spec.Precision {
	case genome.PrecisionFloat32:
		return seedTyped[float32](ctx, c.store, cfg, spec, populationID)
	case genome.PrecisionFloat64:
		return seedTyped[float64](ctx, c.store, cfg, spec, populationID)
	default:
		return SeedResult{}, fmt.Errorf("%w: %q", genome.ErrPrecision, spec.Precision)
	}
}

func seedTyped[W constraints.Float](ctx context.Context, store storage.Store, cfg *config.Config, spec genome.TopologySpec, populationID string) (SeedResult, error) {
	factory, err := genome.NewFactory[W](spec, cfg.Seeding.Seed)
	if err != nil {
		return SeedResult{}, err
	}
	pop, err := factory.CreatePopulation(cfg.Seeding.ConnectionsProportion, cfg.Seeding.PopulationSize)
	if err != nil {
		return SeedResult{}, err
	}

	id, err := genome.SavePopulationSnapshot(ctx, store, populationID, pop)
	if err != nil {
		return SeedResult{}, err
	}

	total := 0
	for _, g := range pop.Genomes {
		total += g.Conns.Len()
	}
	return SeedResult{
		PopulationID:    id,
		Genomes:         len(pop.Genomes),
		CandidateCount:  spec.CandidateCount(),
		MeanConnections: float64(total) / float64(len(pop.Genomes)),
	}, nil
}

// PopulationSummary loads a snapshot and summarizes every genome in it.
func (c *Client) PopulationSummary(ctx context.Context, populationID string) (model.PopulationRecord, []stats.GenomeSummary, error) {
	rec, ok, err := c.store.GetPopulation(ctx, populationID)
	if err != nil {
		return model.PopulationRecord{}, nil, err
	}
	if !ok {
		return model.PopulationRecord{}, nil, fmt.Errorf("population not found: %s", populationID)
	}

	genomes := make([]model.GenomeRecord, 0, len(rec.GenomeIDs))
	for _, id := range rec.GenomeIDs {
		g, ok, err := c.store.GetGenome(ctx, populationID, id)
		if err != nil {
			return model.PopulationRecord{}, nil, err
		}
		if !ok {
			return model.PopulationRecord{}, nil, fmt.Errorf("genome not found for population %s id %d", populationID, id)
		}
		genomes = append(genomes, g)
	}
	return rec, stats.Summarize(genomes), nil
}

// ExportSummary writes a snapshot's per-genome summary CSV and returns the
// file path.
func (c *Client) ExportSummary(ctx context.Context, populationID string) (string, error) {
	_, rows, err := c.PopulationSummary(ctx, populationID)
	if err != nil {
		return "", err
	}
	return stats.WriteSummaryCSV(c.exportsDir, populationID+".csv", rows)
}

func (c *Client) ListPopulations(ctx context.Context) ([]string, error) {
	return c.store.ListPopulations(ctx)
}

func (c *Client) DeletePopulation(ctx context.Context, populationID string) error {
	_, ok, err := c.store.GetPopulation(ctx, populationID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("population not found: %s", populationID)
	}
	return c.store.DeletePopulation(ctx, populationID)
}
