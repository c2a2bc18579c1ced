package ml

import (
	"fmt"
	"sync"
)

// Layer is a non-empty set of neurons sharing one input width.
type Layer struct {
	neurons []Neuron
}

// NewLayer assembles neurons into a layer. Every neuron must have the same,
// non-zero number of weights.
func NewLayer(neurons ...Neuron) (Layer, error) {
	if len(neurons) == 0 {
		return Layer{}, fmt.Errorf("layer has no neurons: %w", ErrInvalidTopology)
	}
	width := neurons[0].InputWidth()
	if width == 0 {
		return Layer{}, fmt.Errorf("layer input width is 0: %w", ErrInvalidTopology)
	}
	l := Layer{neurons: make([]Neuron, len(neurons))}
	for i, n := range neurons {
		if n.InputWidth() != width {
			return Layer{}, fmt.Errorf("neuron %d has %d weights, neuron 0 has %d: %w", i, n.InputWidth(), width, ErrInvalidTopology)
		}
		l.neurons[i] = n.clone()
	}
	return l, nil
}

// RandomLayer draws outputWidth neurons of inputWidth weights each, neuron
// by neuron.
func RandomLayer(inputWidth, outputWidth int, rng RandomSource) (Layer, error) {
	if inputWidth <= 0 || outputWidth <= 0 {
		return Layer{}, fmt.Errorf("layer %dx%d: %w", inputWidth, outputWidth, ErrInvalidTopology)
	}
	l := Layer{neurons: make([]Neuron, outputWidth)}
	for i := range l.neurons {
		l.neurons[i] = RandomNeuron(inputWidth, rng)
	}
	return l, nil
}

// Neurons returns a copy of the layer's neurons.
func (l Layer) Neurons() []Neuron {
	out := make([]Neuron, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.clone()
	}
	return out
}

func (l Layer) InputWidth() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].InputWidth()
}

func (l Layer) OutputWidth() int { return len(l.neurons) }

// Propagate evaluates every neuron on inputs, in neuron order.
func (l Layer) Propagate(inputs []float64) ([]float64, error) {
	if err := l.checkInputs(inputs); err != nil {
		return nil, err
	}
	out := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Propagate(inputs)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// PropagateParallel gives the same result as Propagate but evaluates each
// neuron in its own goroutine. inputs is only read.
func (l Layer) PropagateParallel(inputs []float64) ([]float64, error) {
	if err := l.checkInputs(inputs); err != nil {
		return nil, err
	}
	out := make([]float64, len(l.neurons))
	var wg sync.WaitGroup
	wg.Add(len(l.neurons))
	for i := range l.neurons {
		go func(id int) {
			defer wg.Done()
			// width was checked above, so the error is always nil
			out[id], _ = l.neurons[id].Propagate(inputs)
		}(i)
	}
	wg.Wait()
	return out, nil
}

func (l Layer) checkInputs(inputs []float64) error {
	if len(inputs) != l.InputWidth() {
		return fmt.Errorf("layer expects %d inputs, got %d: %w", l.InputWidth(), len(inputs), ErrDimensionMismatch)
	}
	return nil
}

func (l Layer) clone() Layer {
	return Layer{neurons: l.Neurons()}
}
