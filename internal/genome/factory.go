package genome

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"golang.org/x/exp/constraints"
)

var (
	ErrPopulationSize       = errors.New("population size must be at least 1")
	ErrConnectionProportion = errors.New("connection proportion must be in (0, 1]")
)

// Factory constructs randomly connected seed genomes for one topology spec.
// It allocates from the two id sequences the returned Population takes over,
// so a Factory must not outlive the Population it seeds.
type Factory[W constraints.Float] struct {
	spec        TopologySpec
	candidates  []ConnectionCandidate
	genomeIDs   *Sequence
	innovations *Sequence
	weights     WeightSource[W]
	rng         *rand.Rand
}

// NewFactory validates the spec, checks the configured precision against the
// instantiated weight type, and precomputes the connection candidate table.
// The innovation sequence starts at Inputs+Outputs and is first exhausted by
// the candidate table in row-major order.
func NewFactory[W constraints.Float](spec TopologySpec, seed int64) (*Factory[W], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if got := precisionOf[W](); got != spec.Precision {
		return nil, fmt.Errorf("%w: factory instantiated for %q but spec declares %q",
			ErrPrecision, string(got), string(spec.Precision))
	}

	innovations := NewSequence(spec.FirstInnovationID())
	return &Factory[W]{
		spec:        spec,
		candidates:  BuildCandidates(spec, innovations),
		genomeIDs:   NewSequence(0),
		innovations: innovations,
		weights:     NewUniformWeights[W](spec, uint64(seed)),
		rng:         rand.New(rand.NewSource(seed)),
	}, nil
}

// Candidates exposes the precomputed candidate table. The table is immutable
// after construction and safe to read from any goroutine.
func (f *Factory[W]) Candidates() []ConnectionCandidate {
	return f.candidates
}

// CreatePopulation builds size genomes, each independently carrying a random
// proportion-sized subset of the candidate table, and returns the Population
// that now owns both id sequences.
func (f *Factory[W]) CreatePopulation(proportion float64, size int) (*Population[W], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPopulationSize, size)
	}
	if proportion <= 0 || proportion > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrConnectionProportion, proportion)
	}

	genomes := make([]*Genome[W], 0, size)
	for i := 0; i < size; i++ {
		g, err := f.newGenome(proportion)
		if err != nil {
			return nil, err
		}
		genomes = append(genomes, g)
	}

	return &Population[W]{
		Spec:        f.spec,
		Genomes:     genomes,
		GenomeIDs:   f.genomeIDs,
		Innovations: f.innovations,
	}, nil
}

func (f *Factory[W]) newGenome(proportion float64) (*Genome[W], error) {
	desired := stochasticRound(f.rng, float64(len(f.candidates))*proportion)
	if desired < 1 {
		// A genome with zero connections cannot be evaluated.
		desired = 1
	}

	idx, err := sampleDistinct(f.rng, len(f.candidates), desired)
	if err != nil {
		return nil, err
	}
	// The candidate table is already in canonical (source, target) order, so
	// ascending indices yield a canonical genome without invoking the sorter.
	slices.Sort(idx)

	conns := Connections[W]{
		IDs:     make([]uint32, desired),
		Sources: make([]int32, desired),
		Targets: make([]int32, desired),
		Weights: make([]W, desired),
	}
	for i, j := range idx {
		c := f.candidates[j]
		conns.IDs[i] = c.ID
		conns.Sources[i] = c.Source
		conns.Targets[i] = c.Target
		conns.Weights[i] = f.weights.Next()
	}

	return &Genome[W]{ID: f.genomeIDs.Next(), Birth: 0, Conns: conns}, nil
}
