package ml

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource draws a uniform value from the closed interval [lo, hi].
//
// Network construction consumes draws strictly in order, so a source must
// not be shared with other goroutines while a network is being built.
type RandomSource interface {
	Uniform(lo, hi float64) float64
}

// RandomSourceFunc adapts a plain function to RandomSource.
type RandomSourceFunc func(lo, hi float64) float64

func (f RandomSourceFunc) Uniform(lo, hi float64) float64 {
	return f(lo, hi)
}

// UniformSource draws from a math/rand/v2 source through gonum's uniform
// distribution. A nil Src falls back to the global generator.
type UniformSource struct {
	Src rand.Source
}

// NewUniformSource wraps src. Use rand.NewPCG with a fixed seed for
// reproducible networks.
func NewUniformSource(src rand.Source) *UniformSource {
	return &UniformSource{Src: src}
}

// NewSeededSource returns a PCG-backed source seeded with seed.
func NewSeededSource(seed uint64) *UniformSource {
	return NewUniformSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (u *UniformSource) Uniform(lo, hi float64) float64 {
	d := distuv.Uniform{Min: lo, Max: hi, Src: u.Src}
	return d.Rand()
}
