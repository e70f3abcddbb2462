package genome

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// splitmix64Gamma decorrelates the two PCG stream words derived from one
// user seed (the canonical SplitMix64 increment).
const splitmix64Gamma = 0x9e3779b97f4a7c15

// WeightSource yields connection weights in the configured range, abstracted
// over the genome's floating-point precision.
type WeightSource[W constraints.Float] interface {
	Next() W
}

type uniformWeights[W constraints.Float] struct {
	dist distuv.Uniform
}

// NewUniformWeights builds the default weight source for a topology spec:
// uniform over [WeightMin, WeightMax), deterministic for a given seed.
func NewUniformWeights[W constraints.Float](spec TopologySpec, seed uint64) WeightSource[W] {
	return &uniformWeights[W]{
		dist: distuv.Uniform{
			Min: spec.WeightMin,
			Max: spec.WeightMax,
			Src: rand.NewPCG(seed, seed^splitmix64Gamma),
		},
	}
}

func (u *uniformWeights[W]) Next() W {
	return W(u.dist.Rand())
}

// precisionOf maps the instantiated weight type back onto the configured
// precision tag. This runs once per factory construction; the closed set
// means a named float type falls through to the empty tag and fails the
// construction-time match.
func precisionOf[W constraints.Float]() Precision {
	switch any(W(0)).(type) {
	case float32:
		return PrecisionFloat32
	case float64:
		return PrecisionFloat64
	default:
		return Precision("")
	}
}
