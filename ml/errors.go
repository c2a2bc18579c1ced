package ml

import "errors"

var (
	// ErrDimensionMismatch is returned when an input vector's length differs
	// from the width a neuron, layer or network expects.
	ErrDimensionMismatch = errors.New("ml: dimension mismatch")

	// ErrInvalidTopology is returned when a network or layer cannot be built
	// from the given shape: fewer than two topology entries, a layer with no
	// neurons, or neurons with differing weight counts.
	ErrInvalidTopology = errors.New("ml: invalid topology")
)
