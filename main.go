package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/b0tShaman/ffnet/genome"
	. "github.com/b0tShaman/ffnet/ml"
)

// Config describes one demo run.
type Config struct {
	Topology string // e.g. "3 8 2"
	Seed     uint64
	Input    string // comma separated input vector
}

func main() {
	cfg := Config{}
	flag.StringVar(&cfg.Topology, "topology", "3 8 2", "layer widths, input first")
	flag.Uint64Var(&cfg.Seed, "seed", 42, "random source seed")
	flag.StringVar(&cfg.Input, "input", "0.5,0.6,0.7", "comma separated input vector")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	topology, input, err := validateConfig(cfg)
	if err != nil {
		return err
	}

	// 1. Build
	nw, err := RandomNetwork(topology, NewSeededSource(cfg.Seed))
	if err != nil {
		return err
	}
	fmt.Printf("Network: topology %v, %d parameters\n", widths(nw.Topology()), nw.ParamCount())

	// 2. Propagate
	out, err := nw.Propagate(input)
	if err != nil {
		return err
	}
	fmt.Printf("Input:  %v\nOutput: %v\n", input, out)

	// 3. Genome round trip
	chromosome := genome.Flatten(nw)
	back, err := genome.Restore(topology, chromosome)
	if err != nil {
		return err
	}
	fmt.Printf("Genome: %d genes, round trip equal: %v\n", len(chromosome), back.Equal(nw))
	return nil
}

func validateConfig(cfg Config) ([]LayerTopology, []float64, error) {
	topology, err := ParseTopology(cfg.Topology)
	if err != nil {
		return nil, nil, err
	}
	var input []float64
	for _, f := range strings.Split(cfg.Input, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("input value %q: %w", f, err)
		}
		input = append(input, v)
	}
	if len(input) != topology[0].Neurons {
		return nil, nil, errors.Join(
			fmt.Errorf("input has %d values, topology expects %d", len(input), topology[0].Neurons),
			ErrDimensionMismatch,
		)
	}
	return topology, input, nil
}

func widths(t []LayerTopology) []int {
	w := make([]int, len(t))
	for i, lt := range t {
		w[i] = lt.Neurons
	}
	return w
}
