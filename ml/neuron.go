package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Initial parameters are drawn from [InitLow, InitHigh].
const (
	InitLow  = -1.0
	InitHigh = 1.0
)

// Neuron holds one bias and one weight per input.
type Neuron struct {
	bias    float64
	weights []float64
}

// NewNeuron builds a neuron from explicit parameters. The weights are copied.
func NewNeuron(bias float64, weights []float64) Neuron {
	w := make([]float64, len(weights))
	copy(w, weights)
	return Neuron{bias: bias, weights: w}
}

// RandomNeuron draws the bias first, then each weight in index order.
// Changing this order changes every network built from a fixed seed.
func RandomNeuron(inputWidth int, rng RandomSource) Neuron {
	bias := rng.Uniform(InitLow, InitHigh)
	weights := make([]float64, inputWidth)
	for i := range weights {
		weights[i] = rng.Uniform(InitLow, InitHigh)
	}
	return Neuron{bias: bias, weights: weights}
}

func (n Neuron) Bias() float64 { return n.bias }

// Weights returns a copy of the neuron's weights.
func (n Neuron) Weights() []float64 {
	w := make([]float64, len(n.weights))
	copy(w, n.weights)
	return w
}

func (n Neuron) InputWidth() int { return len(n.weights) }

// Propagate returns relu(inputs·weights + bias).
func (n Neuron) Propagate(inputs []float64) (float64, error) {
	if len(inputs) != len(n.weights) {
		return 0, fmt.Errorf("neuron expects %d inputs, got %d: %w", len(n.weights), len(inputs), ErrDimensionMismatch)
	}
	return Relu(floats.Dot(inputs, n.weights) + n.bias), nil
}

func (n Neuron) clone() Neuron {
	return NewNeuron(n.bias, n.weights)
}

func Relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
