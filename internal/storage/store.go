// Package storage persists population snapshots and their genomes behind a
// pluggable Store interface with in-memory and sqlite backends.
package storage

import (
	"context"

	"sporos/internal/model"
)

// Store defines persistence operations for seeded populations. Genomes are
// namespaced by the population snapshot that owns them, since genome ids are
// only unique within one Population's id space.
type Store interface {
	Init(ctx context.Context) error
	SaveGenome(ctx context.Context, populationID string, genome model.GenomeRecord) error
	GetGenome(ctx context.Context, populationID string, id uint32) (model.GenomeRecord, bool, error)
	SavePopulation(ctx context.Context, population model.PopulationRecord) error
	GetPopulation(ctx context.Context, id string) (model.PopulationRecord, bool, error)
	DeletePopulation(ctx context.Context, id string) error
	ListPopulations(ctx context.Context) ([]string, error)
}
