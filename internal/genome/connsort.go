package genome

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// Sorter reorders co-indexed connection arrays into canonical order: source
// id ascending, target id breaking ties. One permutation is applied to every
// array, so element-wise correspondence is preserved.
//
// Scratch buffers come from internal pools sized to the largest recent
// request, so sorting once per genome per generation does not allocate per
// call. A single Sorter is safe for concurrent use: rented buffers are never
// visible to another sort until returned, and they are returned on every
// exit path.
type Sorter[W constraints.Float] struct {
	indexes sync.Pool // *[]int
	nodeIDs sync.Pool // *[]int32, sources then targets
	geneIDs sync.Pool // *[]uint32
	weights sync.Pool // *[]W
}

func NewSorter[W constraints.Float]() *Sorter[W] {
	return &Sorter[W]{
		indexes: sync.Pool{New: func() any { return new([]int) }},
		nodeIDs: sync.Pool{New: func() any { return new([]int32) }},
		geneIDs: sync.Pool{New: func() any { return new([]uint32) }},
		weights: sync.Pool{New: func() any { return new([]W) }},
	}
}

// Sort reorders sources, targets, and weights in place so sources are
// ascending with targets as the tie-break. The relative order of fully equal
// (source, target) keys is unspecified; valid genomes never contain equal
// keys, so the case is unreachable in practice.
func (s *Sorter[W]) Sort(sources, targets []int32, weights []W) error {
	n := len(sources)
	if len(targets) != n || len(weights) != n {
		return fmt.Errorf("%w: sorter array lengths diverge (sources=%d targets=%d weights=%d)",
			ErrInvariant, n, len(targets), len(weights))
	}
	if n < 2 {
		return nil
	}
	s.permute(s.sortedOrder(sources, targets), sources, targets, nil, weights)
	return nil
}

// SortConnections canonicalizes a genome's parallel arrays in place,
// carrying the connection ids through the same permutation.
func (s *Sorter[W]) SortConnections(c *Connections[W]) error {
	n := c.Len()
	if len(c.IDs) != n || len(c.Targets) != n || len(c.Weights) != n {
		return fmt.Errorf("%w: connection array lengths diverge (ids=%d sources=%d targets=%d weights=%d)",
			ErrInvariant, len(c.IDs), n, len(c.Targets), len(c.Weights))
	}
	if n < 2 {
		return nil
	}
	s.permute(s.sortedOrder(c.Sources, c.Targets), c.Sources, c.Targets, c.IDs, c.Weights)
	return nil
}

// sortedOrder rents an index buffer, fills it with [0..n), and sorts it by
// the (source, target) keys it points at. Ownership of the rented buffer
// passes to permute, which releases it.
func (s *Sorter[W]) sortedOrder(sources, targets []int32) *[]int {
	idx := rent[int](&s.indexes, len(sources))
	order := *idx
	for i := range order {
		order[i] = i
	}
	sort.Sort(&connOrder{order: order, sources: sources, targets: targets})
	return idx
}

// permute applies order to every array through rented scratch, then copies
// the permuted values back. ids may be nil for the three-array form. All
// rented buffers, including the order buffer, are released on return.
func (s *Sorter[W]) permute(idx *[]int, sources, targets []int32, ids []uint32, weights []W) {
	defer s.indexes.Put(idx)
	order := *idx
	n := len(order)

	nodeScratch := rent[int32](&s.nodeIDs, 2*n)
	defer s.nodeIDs.Put(nodeScratch)
	weightScratch := rent[W](&s.weights, n)
	defer s.weights.Put(weightScratch)

	srcTmp := (*nodeScratch)[:n]
	tgtTmp := (*nodeScratch)[n : 2*n]
	wTmp := *weightScratch
	for i, j := range order {
		srcTmp[i] = sources[j]
		tgtTmp[i] = targets[j]
		wTmp[i] = weights[j]
	}
	copy(sources, srcTmp)
	copy(targets, tgtTmp)
	copy(weights, wTmp)

	if ids != nil {
		idScratch := rent[uint32](&s.geneIDs, n)
		defer s.geneIDs.Put(idScratch)
		idTmp := *idScratch
		for i, j := range order {
			idTmp[i] = ids[j]
		}
		copy(ids, idTmp)
	}
}

// rent fetches a pooled slice grown to at least n elements and sliced to n.
func rent[T any](pool *sync.Pool, n int) *[]T {
	p := pool.Get().(*[]T)
	if cap(*p) < n {
		*p = make([]T, n)
	}
	*p = (*p)[:n]
	return p
}

// connOrder sorts an index permutation by the connection keys it refers to.
// Implementing sort.Interface directly avoids the per-call closure and
// interface churn of sort.Slice in this hot path.
type connOrder struct {
	order   []int
	sources []int32
	targets []int32
}

func (o *connOrder) Len() int { return len(o.order) }

func (o *connOrder) Swap(i, j int) { o.order[i], o.order[j] = o.order[j], o.order[i] }

func (o *connOrder) Less(i, j int) bool {
	a, b := o.order[i], o.order[j]
	if o.sources[a] != o.sources[b] {
		return o.sources[a] < o.sources[b]
	}
	return o.targets[a] < o.targets[b]
}
