// Package genome converts between an ml.Network and a flat chromosome of
// its parameters, for optimizers that mutate weights directly.
//
// The chromosome layout matches the random draw order of ml.RandomNetwork:
// layer by layer, neuron by neuron, each neuron's bias followed by its
// weights. Restoring a chromosome produced by a seeded source therefore
// yields the same network RandomNetwork would have built from that seed.
package genome

import (
	"errors"
	"fmt"

	"github.com/b0tShaman/ffnet/ml"
)

var ErrGenomeLength = errors.New("genome: chromosome length does not match topology")

// Len returns the chromosome length for topology.
func Len(topology []ml.LayerTopology) (int, error) {
	if err := ml.ValidateTopology(topology); err != nil {
		return 0, err
	}
	total := 0
	for i := 0; i+1 < len(topology); i++ {
		total += topology[i+1].Neurons * (topology[i].Neurons + 1)
	}
	return total, nil
}

// Flatten copies every parameter of nw into a new slice.
func Flatten(nw ml.Network) []float64 {
	out := make([]float64, 0, nw.ParamCount())
	for _, l := range nw.Layers() {
		for _, n := range l.Neurons() {
			out = append(out, n.Bias())
			out = append(out, n.Weights()...)
		}
	}
	return out
}

// Restore rebuilds a network of the given topology from chromosome.
func Restore(topology []ml.LayerTopology, chromosome []float64) (ml.Network, error) {
	want, err := Len(topology)
	if err != nil {
		return ml.Network{}, err
	}
	if len(chromosome) != want {
		return ml.Network{}, fmt.Errorf("want %d genes, got %d: %w", want, len(chromosome), ErrGenomeLength)
	}
	// Replaying the genes as a random source reuses RandomNetwork's order.
	r := &replay{genes: chromosome}
	return ml.RandomNetwork(topology, r)
}

type replay struct {
	genes []float64
	pos   int
}

func (r *replay) Uniform(_, _ float64) float64 {
	g := r.genes[r.pos]
	r.pos++
	return g
}
