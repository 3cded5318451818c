package random

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the random capability generators draw from.
//
// Collection operations work on indices into a collection of length n, so one
// non-generic interface serves collections of any element type.
type Source interface {
	io.Reader

	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int

	Uniform(a, b float64) float64
	Normal(mu, sigma float64) float64
	LogNormal(mu, sigma float64) float64
	Triangular(low, high, mode float64) float64
	Beta(alpha, beta float64) float64
	Exponential(lambda float64) float64
	// Gamma draws with shape alpha and scale beta.
	Gamma(alpha, beta float64) float64
	// Pareto draws with shape alpha and scale 1.
	Pareto(alpha float64) float64
	// Weibull draws with scale alpha and shape beta.
	Weibull(alpha, beta float64) float64
	Bernoulli(p float64) bool
	// Categorical returns an index drawn proportionally to weights.
	Categorical(weights []float64) int

	// Choose returns one index in [0, n).
	Choose(n int) int
	// ChooseWithReplacement returns k indices in [0, n), repeats allowed.
	ChooseWithReplacement(n, k int) []int
	// ChooseWithoutReplacement returns k distinct indices in [0, n) in draw order.
	ChooseWithoutReplacement(n, k int) []int
}

var (
	// ErrUnsupportedAlgorithm is returned for an unknown bit source name.
	ErrUnsupportedAlgorithm = errors.New("random: unsupported algorithm")
	// ErrSnapshotUnsupported is returned when the bit source cannot be checkpointed.
	ErrSnapshotUnsupported = errors.New("random: source state cannot be snapshotted")
)

var _ Source = (*Rand)(nil)

// Rand is the default Source. All draws share one underlying bit source.
type Rand struct {
	src rand.Source
	rng *rand.Rand
}

// New returns a PCG-backed Rand seeded with seed.
func New(seed uint64) *Rand {
	return NewFromSource(rand.NewSource(seed))
}

// NewMT19937 returns a Mersenne Twister backed Rand seeded with seed.
func NewMT19937(seed uint64) *Rand {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return NewFromSource(mt)
}

// NewFromSource wraps an arbitrary bit source.
func NewFromSource(src rand.Source) *Rand {
	return &Rand{src: src, rng: rand.New(src)}
}

// NewWith builds a Rand for the named algorithm.
func NewWith(alg Algorithm, seed uint64) (*Rand, error) {
	switch alg {
	case PCG:
		return New(seed), nil
	case MT19937:
		return NewMT19937(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

func (r *Rand) Float64() float64 { return r.rng.Float64() }

func (r *Rand) Intn(n int) int { return r.rng.Intn(n) }

// Read fills p from the bit source. It never buffers leftover bytes between
// calls, so Snapshot always captures the complete state.
func (r *Rand) Read(p []byte) (int, error) {
	return rand.New(r.src).Read(p)
}

func (r *Rand) Uniform(a, b float64) float64 {
	return distuv.Uniform{Min: a, Max: b, Src: r.src}.Rand()
}

func (r *Rand) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

func (r *Rand) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

func (r *Rand) Triangular(low, high, mode float64) float64 {
	return distuv.NewTriangle(low, high, mode, r.src).Rand()
}

func (r *Rand) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: r.src}.Rand()
}

func (r *Rand) Exponential(lambda float64) float64 {
	return distuv.Exponential{Rate: lambda, Src: r.src}.Rand()
}

func (r *Rand) Gamma(alpha, beta float64) float64 {
	// distuv parameterizes by rate.
	return distuv.Gamma{Alpha: alpha, Beta: 1 / beta, Src: r.src}.Rand()
}

func (r *Rand) Pareto(alpha float64) float64 {
	return distuv.Pareto{Xm: 1, Alpha: alpha, Src: r.src}.Rand()
}

func (r *Rand) Weibull(alpha, beta float64) float64 {
	return distuv.Weibull{K: beta, Lambda: alpha, Src: r.src}.Rand()
}

func (r *Rand) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: r.src}.Rand() == 1
}

func (r *Rand) Categorical(weights []float64) int {
	idx := distuv.NewCategorical(weights, r.src).Rand()
	return int(math.Round(idx))
}

func (r *Rand) Choose(n int) int { return r.rng.Intn(n) }

func (r *Rand) ChooseWithReplacement(n, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = r.rng.Intn(n)
	}
	return out
}

// ChooseWithoutReplacement runs k steps of a Fisher-Yates shuffle over [0, n).
func (r *Rand) ChooseWithoutReplacement(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// Snapshot captures the bit source state.
func (r *Rand) Snapshot() ([]byte, error) {
	m, ok := r.src.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrSnapshotUnsupported, r.src)
	}
	return m.MarshalBinary()
}

// Restore rewinds the bit source to a state captured by Snapshot.
func (r *Rand) Restore(state []byte) error {
	u, ok := r.src.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T", ErrSnapshotUnsupported, r.src)
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return fmt.Errorf("restore %T: %w", r.src, err)
	}
	return nil
}
