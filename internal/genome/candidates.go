package genome

// ConnectionCandidate is one feasible input→output pairing with the
// connection id it keeps for the lifetime of its Population.
type ConnectionCandidate struct {
	ID     uint32
	Source int32
	Target int32
}

// BuildCandidates enumerates every (input, output) pair in row-major order
// (source ascending, then target ascending), assigning each the next
// innovation id. The enumeration order is load-bearing: it fixes which id
// belongs to which pair, and it leaves the table pre-sorted in canonical
// connection order so sampled index subsets inherit that order for free.
func BuildCandidates(spec TopologySpec, innovations *Sequence) []ConnectionCandidate {
	table := make([]ConnectionCandidate, 0, spec.CandidateCount())
	for src := 0; src < spec.Inputs; src++ {
		for tgt := spec.Inputs; tgt < spec.Inputs+spec.Outputs; tgt++ {
			table = append(table, ConnectionCandidate{
				ID:     innovations.Next(),
				Source: int32(src),
				Target: int32(tgt),
			})
		}
	}
	return table
}
