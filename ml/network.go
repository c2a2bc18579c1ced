package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Network is an ordered, non-empty sequence of layers where each layer's
// output width equals the next layer's input width.
//
// A Network is never modified after construction; every accessor returns
// copies so values can be passed around freely.
type Network struct {
	layers []Layer
}

// NewNetwork assembles pre-built layers, checking that adjacent widths match.
func NewNetwork(layers ...Layer) (Network, error) {
	if len(layers) == 0 {
		return Network{}, fmt.Errorf("network has no layers: %w", ErrInvalidTopology)
	}
	nw := Network{layers: make([]Layer, len(layers))}
	for i, l := range layers {
		if l.OutputWidth() == 0 {
			return Network{}, fmt.Errorf("layer %d has no neurons: %w", i, ErrInvalidTopology)
		}
		if i > 0 && layers[i-1].OutputWidth() != l.InputWidth() {
			return Network{}, fmt.Errorf("layer %d outputs %d values, layer %d expects %d: %w",
				i-1, layers[i-1].OutputWidth(), i, l.InputWidth(), ErrInvalidTopology)
		}
		nw.layers[i] = l.clone()
	}
	return nw, nil
}

// RandomNetwork builds one layer per consecutive pair of topology entries.
//
// Draws are taken from rng in a fixed order: layers in order, neurons in
// order within a layer, and for each neuron the bias followed by its
// weights. The result is therefore a pure function of the source's state
// and the topology.
func RandomNetwork(topology []LayerTopology, rng RandomSource) (Network, error) {
	if err := ValidateTopology(topology); err != nil {
		return Network{}, err
	}
	nw := Network{layers: make([]Layer, 0, len(topology)-1)}
	for i := 0; i+1 < len(topology); i++ {
		l, err := RandomLayer(topology[i].Neurons, topology[i+1].Neurons, rng)
		if err != nil {
			return Network{}, fmt.Errorf("layer %d: %w", i, err)
		}
		nw.layers = append(nw.layers, l)
	}
	return nw, nil
}

// Propagate threads inputs through every layer and returns the last
// layer's output.
func (nw Network) Propagate(inputs []float64) ([]float64, error) {
	if len(nw.layers) == 0 {
		return nil, fmt.Errorf("empty network: %w", ErrInvalidTopology)
	}
	activation := inputs
	for i, l := range nw.layers {
		out, err := l.Propagate(activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		activation = out
	}
	return activation, nil
}

// Layers returns a deep copy of the network's layers.
func (nw Network) Layers() []Layer {
	out := make([]Layer, len(nw.layers))
	for i, l := range nw.layers {
		out[i] = l.clone()
	}
	return out
}

func (nw Network) InputWidth() int {
	if len(nw.layers) == 0 {
		return 0
	}
	return nw.layers[0].InputWidth()
}

func (nw Network) OutputWidth() int {
	if len(nw.layers) == 0 {
		return 0
	}
	return nw.layers[len(nw.layers)-1].OutputWidth()
}

// Topology reports the widths the network was built from, input first.
func (nw Network) Topology() []LayerTopology {
	if len(nw.layers) == 0 {
		return nil
	}
	t := make([]LayerTopology, 0, len(nw.layers)+1)
	t = append(t, LayerTopology{Neurons: nw.InputWidth()})
	for _, l := range nw.layers {
		t = append(t, LayerTopology{Neurons: l.OutputWidth()})
	}
	return t
}

// ParamCount is the number of biases plus weights.
func (nw Network) ParamCount() int {
	total := 0
	for _, l := range nw.layers {
		total += l.OutputWidth() * (l.InputWidth() + 1)
	}
	return total
}

// Clone returns a copy sharing no memory with nw.
func (nw Network) Clone() Network {
	return Network{layers: nw.Layers()}
}

// Equal reports whether both networks have the same shape and bit-identical
// parameters.
func (nw Network) Equal(other Network) bool {
	if len(nw.layers) != len(other.layers) {
		return false
	}
	for i, l := range nw.layers {
		ol := other.layers[i]
		if len(l.neurons) != len(ol.neurons) {
			return false
		}
		for j, n := range l.neurons {
			on := ol.neurons[j]
			if n.bias != on.bias || !floats.Equal(n.weights, on.weights) {
				return false
			}
		}
	}
	return true
}
