package genome

import (
	"errors"
	"fmt"
)

// Precision selects the floating-point width genome weights are generated
// and carried in. The supported set is closed; dispatch happens once at
// factory construction, never per weight.
type Precision string

const (
	PrecisionFloat32 Precision = "float32"
	PrecisionFloat64 Precision = "float64"
)

var (
	ErrTopology  = errors.New("invalid topology spec")
	ErrPrecision = errors.New("unsupported numeric precision")
)

func (p Precision) Validate() error {
	switch p {
	case PrecisionFloat32, PrecisionFloat64:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrPrecision, string(p))
	}
}

// TopologySpec is the immutable description of the seed networks' outer
// shape. Node ids [0, Inputs) are input nodes and [Inputs, Inputs+Outputs)
// are output nodes; both ranges are reserved by convention and never issued
// by the innovation sequence.
type TopologySpec struct {
	Inputs    int
	Outputs   int
	WeightMin float64
	WeightMax float64
	Acyclic   bool
	Precision Precision
}

func (s TopologySpec) Validate() error {
	if s.Inputs < 1 {
		return fmt.Errorf("%w: input count must be at least 1, got %d", ErrTopology, s.Inputs)
	}
	if s.Outputs < 1 {
		return fmt.Errorf("%w: output count must be at least 1, got %d", ErrTopology, s.Outputs)
	}
	if !(s.WeightMin < s.WeightMax) {
		return fmt.Errorf("%w: weight range [%g, %g) is empty", ErrTopology, s.WeightMin, s.WeightMax)
	}
	return s.Precision.Validate()
}

// NodeCount returns the number of reserved input and output node ids.
func (s TopologySpec) NodeCount() int {
	return s.Inputs + s.Outputs
}

// FirstInnovationID is where the innovation sequence starts: immediately
// after the reserved input/output node id ranges.
func (s TopologySpec) FirstInnovationID() uint32 {
	return uint32(s.Inputs + s.Outputs)
}

// CandidateCount is the size of the full input×output candidate table.
func (s TopologySpec) CandidateCount() int {
	return s.Inputs * s.Outputs
}
