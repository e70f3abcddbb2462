package genome

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"sporos/internal/model"
	"sporos/internal/storage"
)

// SavePopulationSnapshot persists the population and all its genomes under
// populationID (a fresh uuid when empty) and returns the id used. Both
// sequence cursors are persisted so id allocation continues where it stopped
// after a reload.
func SavePopulationSnapshot[W constraints.Float](ctx context.Context, store storage.Store, populationID string, pop *Population[W]) (string, error) {
	if store == nil {
		return "", fmt.Errorf("store is required")
	}
	if pop == nil {
		return "", fmt.Errorf("population is required")
	}
	if populationID == "" {
		populationID = uuid.NewString()
	}

	genomeIDs := make([]uint32, 0, len(pop.Genomes))
	for _, g := range pop.Genomes {
		if err := store.SaveGenome(ctx, populationID, RecordFromGenome(g)); err != nil {
			return "", err
		}
		genomeIDs = append(genomeIDs, g.ID)
	}

	return populationID, store.SavePopulation(ctx, model.PopulationRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:               populationID,
		Inputs:           pop.Spec.Inputs,
		Outputs:          pop.Spec.Outputs,
		WeightMin:        pop.Spec.WeightMin,
		WeightMax:        pop.Spec.WeightMax,
		Acyclic:          pop.Spec.Acyclic,
		Precision:        string(pop.Spec.Precision),
		NextGenomeID:     pop.GenomeIDs.Peek(),
		NextInnovationID: pop.Innovations.Peek(),
		GenomeIDs:        genomeIDs,
	})
}

// LoadPopulationSnapshot restores a population, rebuilding both id sequences
// at their persisted cursors, validating every genome, and re-sorting any
// genome whose connections are not in canonical order.
func LoadPopulationSnapshot[W constraints.Float](ctx context.Context, store storage.Store, populationID string) (*Population[W], error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if populationID == "" {
		return nil, fmt.Errorf("population id is required")
	}

	rec, ok, err := store.GetPopulation(ctx, populationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("population not found: %s", populationID)
	}

	spec := SpecFromRecord(rec)
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if got := precisionOf[W](); got != spec.Precision {
		return nil, fmt.Errorf("%w: snapshot %s stores %q but caller requested %q",
			ErrPrecision, populationID, string(spec.Precision), string(got))
	}

	sorter := NewSorter[W]()
	genomes := make([]*Genome[W], 0, len(rec.GenomeIDs))
	for _, id := range rec.GenomeIDs {
		gr, ok, err := store.GetGenome(ctx, populationID, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("genome not found for population %s id %d", populationID, id)
		}

		g := GenomeFromRecord[W](gr)
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if !g.Conns.IsCanonical() {
			if err := sorter.SortConnections(&g.Conns); err != nil {
				return nil, err
			}
		}
		genomes = append(genomes, g)
	}

	return &Population[W]{
		Spec:        spec,
		Genomes:     genomes,
		GenomeIDs:   NewSequence(rec.NextGenomeID),
		Innovations: NewSequence(rec.NextInnovationID),
	}, nil
}

// RecordFromGenome converts a genome into its persisted form.
func RecordFromGenome[W constraints.Float](g *Genome[W]) model.GenomeRecord {
	conns := make([]model.ConnectionRecord, g.Conns.Len())
	for i := range conns {
		conns[i] = model.ConnectionRecord{
			ID:     g.Conns.IDs[i],
			Source: g.Conns.Sources[i],
			Target: g.Conns.Targets[i],
			Weight: float64(g.Conns.Weights[i]),
		}
	}
	return model.GenomeRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:          g.ID,
		Birth:       g.Birth,
		Connections: conns,
	}
}

// GenomeFromRecord converts a persisted genome back into working form,
// narrowing weights to the instantiated precision.
func GenomeFromRecord[W constraints.Float](rec model.GenomeRecord) *Genome[W] {
	n := len(rec.Connections)
	conns := Connections[W]{
		IDs:     make([]uint32, n),
		Sources: make([]int32, n),
		Targets: make([]int32, n),
		Weights: make([]W, n),
	}
	for i, c := range rec.Connections {
		conns.IDs[i] = c.ID
		conns.Sources[i] = c.Source
		conns.Targets[i] = c.Target
		conns.Weights[i] = W(c.Weight)
	}
	return &Genome[W]{ID: rec.ID, Birth: rec.Birth, Conns: conns}
}

// SpecFromRecord rebuilds the topology spec a snapshot was seeded under.
func SpecFromRecord(rec model.PopulationRecord) TopologySpec {
	return TopologySpec{
		Inputs:    rec.Inputs,
		Outputs:   rec.Outputs,
		WeightMin: rec.WeightMin,
		WeightMax: rec.WeightMax,
		Acyclic:   rec.Acyclic,
		Precision: Precision(rec.Precision),
	}
}
