// Package genome constructs and canonically orders the genetic encoding of
// evolvable neural networks: id sequences, the connection candidate table,
// the population factory, and the parallel-array connection sorter.
package genome

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrInvariant = errors.New("genome invariant violated")

// Connections holds a genome's connection genes as co-indexed parallel
// arrays so downstream evaluators can walk them in source-id order. The
// four slices always have equal length; element i of each describes one
// gene. Exclusively owned by one genome and copied, never shared, on clone.
type Connections[W constraints.Float] struct {
	IDs     []uint32
	Sources []int32
	Targets []int32
	Weights []W
}

func (c Connections[W]) Len() int {
	return len(c.Sources)
}

// Validate reports broken invariants: diverging array lengths, duplicate
// connection ids, duplicate (source, target) pairs, or negative node ids.
// Any of these indicates a programming defect, not bad configuration.
func (c Connections[W]) Validate() error {
	n := len(c.IDs)
	if len(c.Sources) != n || len(c.Targets) != n || len(c.Weights) != n {
		return fmt.Errorf("%w: parallel array lengths diverge (ids=%d sources=%d targets=%d weights=%d)",
			ErrInvariant, n, len(c.Sources), len(c.Targets), len(c.Weights))
	}

	seenID := make(map[uint32]struct{}, n)
	seenPair := make(map[[2]int32]struct{}, n)
	for i := 0; i < n; i++ {
		if _, ok := seenID[c.IDs[i]]; ok {
			return fmt.Errorf("%w: duplicate connection id %d", ErrInvariant, c.IDs[i])
		}
		seenID[c.IDs[i]] = struct{}{}

		if c.Sources[i] < 0 || c.Targets[i] < 0 {
			return fmt.Errorf("%w: negative node id in connection %d (%d→%d)",
				ErrInvariant, c.IDs[i], c.Sources[i], c.Targets[i])
		}

		pair := [2]int32{c.Sources[i], c.Targets[i]}
		if _, ok := seenPair[pair]; ok {
			return fmt.Errorf("%w: duplicate connection pair (%d→%d)", ErrInvariant, pair[0], pair[1])
		}
		seenPair[pair] = struct{}{}
	}
	return nil
}

// IsCanonical reports whether the genes are strictly ordered by
// (source, target) ascending. Equal adjacent keys fail the check because
// duplicate pairs are an invariant violation in their own right.
func (c Connections[W]) IsCanonical() bool {
	for i := 1; i < len(c.Sources); i++ {
		if c.Sources[i] < c.Sources[i-1] {
			return false
		}
		if c.Sources[i] == c.Sources[i-1] && c.Targets[i] <= c.Targets[i-1] {
			return false
		}
	}
	return true
}

func (c Connections[W]) Clone() Connections[W] {
	return Connections[W]{
		IDs:     append([]uint32(nil), c.IDs...),
		Sources: append([]int32(nil), c.Sources...),
		Targets: append([]int32(nil), c.Targets...),
		Weights: append([]W(nil), c.Weights...),
	}
}

// Genome is the genetic encoding of one candidate network, expressed purely
// as connections; the node set is whatever the connections imply plus the
// reserved input/output ids.
type Genome[W constraints.Float] struct {
	ID    uint32
	Birth uint32
	Conns Connections[W]
}

// Clone deep-copies the genome. Connection genes are owned by exactly one
// genome, so the arrays are copied rather than shared.
func (g *Genome[W]) Clone() *Genome[W] {
	return &Genome[W]{ID: g.ID, Birth: g.Birth, Conns: g.Conns.Clone()}
}

func (g *Genome[W]) Validate() error {
	if g.Conns.Len() == 0 {
		return fmt.Errorf("%w: genome %d has no connections", ErrInvariant, g.ID)
	}
	if err := g.Conns.Validate(); err != nil {
		return fmt.Errorf("genome %d: %w", g.ID, err)
	}
	return nil
}

// Population is the full set of genomes under evolution plus the shared id
// allocation state. Both sequences are owned here and consulted by every
// future id-allocating operation, including mutation operators outside this
// package; they must never be reset or duplicated.
type Population[W constraints.Float] struct {
	Spec        TopologySpec
	Genomes     []*Genome[W]
	GenomeIDs   *Sequence
	Innovations *Sequence
}
