package gen

import (
	"fmt"
	"slices"
)

func emptyDomain(op string) error {
	return fmt.Errorf("%w: %s from an empty collection", ErrEmptyDomain, op)
}

func pick[T any](xs []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

type choice[T any] struct {
	xs []T
}

func (n choice[T]) compute(env *Env) (T, error) {
	if len(n.xs) == 0 {
		var zero T
		return zero, emptyDomain("choice")
	}
	return n.xs[env.src.Choose(len(n.xs))], nil
}

func (n choice[T]) rebuild(cloneMemo) node[T] { return n }

type bootstrap[T any] struct {
	xs    []T
	count int
}

func (n bootstrap[T]) compute(env *Env) ([]T, error) {
	if len(n.xs) == 0 {
		return nil, emptyDomain("bootstrap")
	}
	return pick(n.xs, env.src.ChooseWithReplacement(len(n.xs), n.count)), nil
}

func (n bootstrap[T]) rebuild(cloneMemo) node[[]T] { return n }

type permutation[T any] struct {
	xs     []T
	choose int
}

func (n permutation[T]) compute(env *Env) ([]T, error) {
	if len(n.xs) == 0 {
		return nil, emptyDomain("permutation")
	}
	return pick(n.xs, env.src.ChooseWithoutReplacement(len(n.xs), n.choose)), nil
}

func (n permutation[T]) rebuild(cloneMemo) node[[]T] { return n }

type weighted[T any] struct {
	xs      []T
	weights []float64
}

func (n weighted[T]) compute(env *Env) (T, error) {
	if len(n.xs) == 0 {
		var zero T
		return zero, emptyDomain("weighted choice")
	}
	return n.xs[env.src.Categorical(n.weights)], nil
}

func (n weighted[T]) rebuild(cloneMemo) node[T] { return n }

// Choice picks one element of xs uniformly. xs is copied.
func Choice[T any](xs []T) *Generator[T] {
	return newGenerator[T](choice[T]{xs: slices.Clone(xs)})
}

// Bootstrap draws count elements of xs with replacement.
func Bootstrap[T any](xs []T, count int) *Generator[[]T] {
	check(count >= 0, "bootstrap count %d", count)
	return newGenerator[[]T](bootstrap[T]{xs: slices.Clone(xs), count: count})
}

// Permute yields a random ordering of all of xs.
func Permute[T any](xs []T) *Generator[[]T] {
	return newGenerator[[]T](permutation[T]{xs: slices.Clone(xs), choose: len(xs)})
}

// PermuteN draws choose distinct positions of xs, in random order.
// choose must lie in [0, len(xs)].
func PermuteN[T any](xs []T, choose int) (*Generator[[]T], error) {
	if choose < 0 || choose > len(xs) {
		return nil, invalidf("permute %d of %d elements", choose, len(xs))
	}
	return newGenerator[[]T](permutation[T]{xs: slices.Clone(xs), choose: choose}), nil
}

// Weighted picks one element of xs with probability proportional to its
// weight. Weights must be finite, non-negative and not all zero.
func Weighted[T any](xs []T, weights []float64) (*Generator[T], error) {
	if len(xs) != len(weights) {
		return nil, invalidf("%d elements with %d weights", len(xs), len(weights))
	}
	total := 0.0
	for i, w := range weights {
		if !finite(w) || w < 0 {
			return nil, invalidf("weight %v at %d", w, i)
		}
		total += w
	}
	if len(xs) > 0 && total == 0 {
		return nil, invalidf("all weights are zero")
	}
	return newGenerator[T](weighted[T]{xs: slices.Clone(xs), weights: slices.Clone(weights)}), nil
}
