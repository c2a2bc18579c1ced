package ml

import (
	"fmt"
	"strconv"
	"strings"
)

// LayerTopology describes the width of one layer. A topology of n entries
// describes n-1 layers; the first entry is the network's input width.
type LayerTopology struct {
	Neurons int
}

// Topology builds a topology from plain widths.
func Topology(widths ...int) []LayerTopology {
	t := make([]LayerTopology, len(widths))
	for i, w := range widths {
		t[i] = LayerTopology{Neurons: w}
	}
	return t
}

// ParseTopology reads whitespace separated widths, e.g. "3 8 2".
func ParseTopology(s string) ([]LayerTopology, error) {
	parts := strings.Fields(s)
	t := make([]LayerTopology, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("topology entry %d %q: %w", i, p, ErrInvalidTopology)
		}
		t[i] = LayerTopology{Neurons: n}
	}
	if err := ValidateTopology(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ValidateTopology requires at least two entries, all positive.
func ValidateTopology(topology []LayerTopology) error {
	if len(topology) < 2 {
		return fmt.Errorf("topology needs at least 2 entries, got %d: %w", len(topology), ErrInvalidTopology)
	}
	for i, lt := range topology {
		if lt.Neurons <= 0 {
			return fmt.Errorf("topology entry %d has %d neurons: %w", i, lt.Neurons, ErrInvalidTopology)
		}
	}
	return nil
}
