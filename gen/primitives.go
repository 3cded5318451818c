package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/on-the-ground/fakir_go/random"
	"github.com/on-the-ground/fakir_go/shared/helper"
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// check panics when a distribution parameter is out of its domain.
func check(ok bool, format string, args ...any) {
	if !ok {
		panic(invalidf(format, args...))
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Fixed always yields v.
func Fixed[T any](v T) *Generator[T] {
	return newGenerator[T](constant[T]{value: v})
}

// Uniform draws from [a, b].
func Uniform(a, b float64) *Generator[float64] {
	check(finite(a, b), "uniform(%v, %v)", a, b)
	return FromSource(func(src random.Source) float64 {
		return src.Uniform(a, b)
	})
}

// Uniform01 draws from [0, 1).
func Uniform01() *Generator[float64] {
	return FromSource(random.Source.Float64)
}

// UniformInt draws an integer from [lo, hi], both ends included.
func UniformInt(lo, hi int) *Generator[int] {
	check(lo <= hi, "uniform int [%d, %d]", lo, hi)
	return FromSource(func(src random.Source) int {
		return lo + src.Intn(hi-lo+1)
	})
}

// Flip yields true with probability p.
func Flip(p float64) *Generator[bool] {
	check(p >= 0 && p <= 1, "flip probability %v", p)
	return FromSource(func(src random.Source) bool {
		return src.Bernoulli(p)
	})
}

func Normal(mu, sigma float64) *Generator[float64] {
	check(finite(mu, sigma) && sigma >= 0, "normal(%v, %v)", mu, sigma)
	return FromSource(func(src random.Source) float64 {
		return src.Normal(mu, sigma)
	})
}

type truncOptions struct {
	lo, hi      float64
	maxAttempts int
}

// TruncOption bounds a TruncatedNormal.
type TruncOption func(*truncOptions)

// Above rejects draws below lo.
func Above(lo float64) TruncOption {
	return func(o *truncOptions) { o.lo = lo }
}

// Below rejects draws above hi.
func Below(hi float64) TruncOption {
	return func(o *truncOptions) { o.hi = hi }
}

// MaxAttempts caps the number of draws before sampling fails with
// ErrRejectionExhausted. It overrides WithRejectionLimit.
func MaxAttempts(n int) TruncOption {
	return func(o *truncOptions) { o.maxAttempts = n }
}

// TruncatedNormal draws from a normal distribution restricted to the bounds
// set by Above and Below, by rejection. Without MaxAttempts or
// WithRejectionLimit it loops until a draw lands inside the bounds.
func TruncatedNormal(mu, sigma float64, opts ...TruncOption) *Generator[float64] {
	check(finite(mu, sigma) && sigma >= 0, "truncated normal(%v, %v)", mu, sigma)
	o := truncOptions{lo: math.Inf(-1), hi: math.Inf(1)}
	for _, opt := range opts {
		opt(&o)
	}
	check(!math.IsNaN(o.lo) && !math.IsNaN(o.hi) && o.lo <= o.hi, "truncation bounds [%v, %v]", o.lo, o.hi)
	return newGenerator[float64](rejection[float64]{
		draw: func(src random.Source) float64 {
			return src.Normal(mu, sigma)
		},
		accept: func(v float64) bool {
			return v >= o.lo && v <= o.hi
		},
		maxAttempts: o.maxAttempts,
	})
}

var errRejected = errors.New("draw rejected")

type rejection[T any] struct {
	draw        func(random.Source) T
	accept      func(T) bool
	maxAttempts int
}

func (n rejection[T]) compute(env *Env) (T, error) {
	limit := n.maxAttempts
	if limit <= 0 {
		limit = env.rejectionLimit
	}
	var v T
	err := helper.Retry(limit, func() error {
		v = n.draw(env.src)
		if n.accept(v) {
			return nil
		}
		return errRejected
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrRejectionExhausted, err)
	}
	return v, nil
}

func (n rejection[T]) rebuild(cloneMemo) node[T] { return n }

func LogNormal(mu, sigma float64) *Generator[float64] {
	check(finite(mu, sigma) && sigma >= 0, "lognormal(%v, %v)", mu, sigma)
	return FromSource(func(src random.Source) float64 {
		return src.LogNormal(mu, sigma)
	})
}

// Triangular draws from [low, high] with the density peaking at mode.
func Triangular(low, high, mode float64) *Generator[float64] {
	check(finite(low, high, mode) && low < high && low <= mode && mode <= high,
		"triangular(%v, %v, %v)", low, high, mode)
	return FromSource(func(src random.Source) float64 {
		return src.Triangular(low, high, mode)
	})
}

func Beta(alpha, beta float64) *Generator[float64] {
	check(finite(alpha, beta) && alpha > 0 && beta > 0, "beta(%v, %v)", alpha, beta)
	return FromSource(func(src random.Source) float64 {
		return src.Beta(alpha, beta)
	})
}

// Exponential draws with rate lambda.
func Exponential(lambda float64) *Generator[float64] {
	check(finite(lambda) && lambda > 0, "exponential(%v)", lambda)
	return FromSource(func(src random.Source) float64 {
		return src.Exponential(lambda)
	})
}

// Gamma draws with shape alpha and scale beta.
func Gamma(alpha, beta float64) *Generator[float64] {
	check(finite(alpha, beta) && alpha > 0 && beta > 0, "gamma(%v, %v)", alpha, beta)
	return FromSource(func(src random.Source) float64 {
		return src.Gamma(alpha, beta)
	})
}

// Pareto draws with shape alpha and minimum 1.
func Pareto(alpha float64) *Generator[float64] {
	check(finite(alpha) && alpha > 0, "pareto(%v)", alpha)
	return FromSource(func(src random.Source) float64 {
		return src.Pareto(alpha)
	})
}

// Weibull draws with scale alpha and shape beta.
func Weibull(alpha, beta float64) *Generator[float64] {
	check(finite(alpha, beta) && alpha > 0 && beta > 0, "weibull(%v, %v)", alpha, beta)
	return FromSource(func(src random.Source) float64 {
		return src.Weibull(alpha, beta)
	})
}
