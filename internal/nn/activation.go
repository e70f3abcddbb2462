// Package nn provides the activation-function library applied at network
// nodes during evaluation. Each function is a stateless strategy exposing a
// scalar form and two batched forms; evaluators pick one function per
// network and call it once per node batch, so the batched loops are written
// out per function to stay vectorizable.
package nn

import "math"

// Activation is one network nonlinearity.
//
// ApplyInPlace overwrites values element-wise. ApplyTo writes the transform
// of src into dst, which must be at least len(src) long; dst and src may be
// disjoint buffers with no aliasing guarantees required. Both batched forms
// are semantically equivalent to mapping Apply, and all three forms are pure.
type Activation interface {
	Name() string
	Apply(x float64) float64
	ApplyInPlace(values []float64)
	ApplyTo(dst, src []float64)
}

// Scaled exponential linear unit constants from Klambauer et al. The exact
// decimals are load-bearing: they make SELU self-normalizing.
const (
	seluAlpha = 1.6732632423543772848170429916717
	seluScale = 1.0507009873554804934193349852946
)

// SELU is the scaled exponential linear unit: scale·x for x ≥ 0,
// scale·(α·eˣ − α) for x < 0.
type SELU struct{}

func (SELU) Name() string { return "selu" }

func (SELU) Apply(x float64) float64 {
	if x >= 0 {
		return seluScale * x
	}
	return seluScale * (seluAlpha*math.Exp(x) - seluAlpha)
}

func (SELU) ApplyInPlace(values []float64) {
	for i, x := range values {
		if x >= 0 {
			values[i] = seluScale * x
		} else {
			values[i] = seluScale * (seluAlpha*math.Exp(x) - seluAlpha)
		}
	}
}

func (SELU) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		if x >= 0 {
			dst[i] = seluScale * x
		} else {
			dst[i] = seluScale * (seluAlpha*math.Exp(x) - seluAlpha)
		}
	}
}

// ELU is the exponential linear unit with α = 1.
type ELU struct{}

func (ELU) Name() string { return "elu" }

func (ELU) Apply(x float64) float64 {
	if x >= 0 {
		return x
	}
	return math.Exp(x) - 1
}

func (ELU) ApplyInPlace(values []float64) {
	for i, x := range values {
		if x < 0 {
			values[i] = math.Exp(x) - 1
		}
	}
}

func (ELU) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		if x >= 0 {
			dst[i] = x
		} else {
			dst[i] = math.Exp(x) - 1
		}
	}
}

// Identity passes values through unchanged; its in-place form is a no-op
// and its buffered form is a copy.
type Identity struct{}

func (Identity) Name() string { return "identity" }

func (Identity) Apply(x float64) float64 { return x }

func (Identity) ApplyInPlace(_ []float64) {}

func (Identity) ApplyTo(dst, src []float64) {
	copy(dst[:len(src)], src)
}

type ReLU struct{}

func (ReLU) Name() string { return "relu" }

func (ReLU) Apply(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func (ReLU) ApplyInPlace(values []float64) {
	for i, x := range values {
		if x < 0 {
			values[i] = 0
		}
	}
}

func (ReLU) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		if x < 0 {
			dst[i] = 0
		} else {
			dst[i] = x
		}
	}
}

const leakyReLUSlope = 0.01

type LeakyReLU struct{}

func (LeakyReLU) Name() string { return "leaky-relu" }

func (LeakyReLU) Apply(x float64) float64 {
	if x < 0 {
		return leakyReLUSlope * x
	}
	return x
}

func (LeakyReLU) ApplyInPlace(values []float64) {
	for i, x := range values {
		if x < 0 {
			values[i] = leakyReLUSlope * x
		}
	}
}

func (LeakyReLU) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		if x < 0 {
			dst[i] = leakyReLUSlope * x
		} else {
			dst[i] = x
		}
	}
}

// Sigmoid is the logistic function 1/(1+e⁻ˣ).
type Sigmoid struct{}

func (Sigmoid) Name() string { return "sigmoid" }

func (Sigmoid) Apply(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func (Sigmoid) ApplyInPlace(values []float64) {
	for i, x := range values {
		values[i] = 1.0 / (1.0 + math.Exp(-x))
	}
}

func (Sigmoid) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = 1.0 / (1.0 + math.Exp(-x))
	}
}

type Tanh struct{}

func (Tanh) Name() string { return "tanh" }

func (Tanh) Apply(x float64) float64 { return math.Tanh(x) }

func (Tanh) ApplyInPlace(values []float64) {
	for i, x := range values {
		values[i] = math.Tanh(x)
	}
}

func (Tanh) ApplyTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = math.Tanh(x)
	}
}
