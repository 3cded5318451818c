package gen

import (
	"fmt"

	"github.com/on-the-ground/fakir_go/pure"
	"github.com/on-the-ground/fakir_go/random"
)

type constant[T any] struct {
	value T
}

func (n constant[T]) compute(*Env) (T, error) { return n.value, nil }
func (n constant[T]) rebuild(cloneMemo) node[T] { return n }

type primitive[T any] struct {
	draw func(random.Source) T
}

func (n primitive[T]) compute(env *Env) (T, error) { return n.draw(env.src), nil }
func (n primitive[T]) rebuild(cloneMemo) node[T] { return n }

type custom[T any] struct {
	fn func(*Env) (T, error)
}

func (n custom[T]) compute(env *Env) (T, error) { return n.fn(env) }
func (n custom[T]) rebuild(cloneMemo) node[T] { return n }

type mapped[A, B any] struct {
	src *Generator[A]
	f   func(A) (B, error)
}

func (n mapped[A, B]) compute(env *Env) (B, error) {
	a, err := Eval(env, n.src)
	if err != nil {
		var zero B
		return zero, err
	}
	return n.f(a)
}

func (n mapped[A, B]) rebuild(memo cloneMemo) node[B] {
	return mapped[A, B]{src: cloneWith(memo, n.src), f: n.f}
}

type bound[A, B any] struct {
	src *Generator[A]
	f   func(A) *Generator[B]
}

func (n bound[A, B]) compute(env *Env) (B, error) {
	var zero B
	a, err := Eval(env, n.src)
	if err != nil {
		return zero, err
	}
	next := n.f(a)
	if next == nil {
		return zero, fmt.Errorf("%w: bind continuation returned nil for %v", ErrInvalidArgument, a)
	}
	return Eval(env, next)
}

func (n bound[A, B]) rebuild(memo cloneMemo) node[B] {
	return bound[A, B]{src: cloneWith(memo, n.src), f: n.f}
}

type conditional[T any] struct {
	cond    *Generator[bool]
	ifTrue  *Generator[T]
	ifFalse *Generator[T]
}

func (n conditional[T]) compute(env *Env) (T, error) {
	c, err := Eval(env, n.cond)
	if err != nil {
		var zero T
		return zero, err
	}
	if c {
		return Eval(env, n.ifTrue)
	}
	return Eval(env, n.ifFalse)
}

func (n conditional[T]) rebuild(memo cloneMemo) node[T] {
	return conditional[T]{
		cond:    cloneWith(memo, n.cond),
		ifTrue:  cloneWith(memo, n.ifTrue),
		ifFalse: cloneWith(memo, n.ifFalse),
	}
}

// Map transforms every value drawn from g with the pure function f.
func Map[A, B any](g *Generator[A], f func(A) B) *Generator[B] {
	return newGenerator[B](mapped[A, B]{
		src: g,
		f: func(a A) (B, error) {
			return f(a), nil
		},
	})
}

// TryMap is Map for transforms that can fail.
func TryMap[A, B any](g *Generator[A], f func(A) (B, error)) *Generator[B] {
	return newGenerator[B](mapped[A, B]{src: g, f: f})
}

// Bind draws a from g, then draws from the generator f(a) in the same pass.
// The generator f returns takes part in the cache like any other, so it may
// reuse generators already drawn in this pass.
func Bind[A, B any](g *Generator[A], f func(A) *Generator[B]) *Generator[B] {
	return newGenerator[B](bound[A, B]{src: g, f: f})
}

// IfElse draws cond, then draws exactly one of the branches. The other branch
// consumes no randomness.
func IfElse[T any](cond *Generator[bool], ifTrue, ifFalse *Generator[T]) *Generator[T] {
	return newGenerator[T](conditional[T]{cond: cond, ifTrue: ifTrue, ifFalse: ifFalse})
}

// Repeat draws n independent values from g's distribution. Each element is a
// separate Clone of g, so none of them share a value with g or each other.
func Repeat[T any](g *Generator[T], n int) *Generator[[]T] {
	if n < 0 {
		panic(fmt.Errorf("%w: repeat count %d", ErrInvalidArgument, n))
	}
	clones := make([]*Generator[T], n)
	for i := range clones {
		clones[i] = g.Clone()
	}
	return Listed(clones...)
}

// MapTabled is Map for an expensive pure f. Results of f are remembered across
// samples, up to maxTableSize per table generation. Values of g are still
// drawn fresh on every pass.
func MapTabled[A, B any](g *Generator[A], f func(A) B, maxTableSize uint32) *Generator[B] {
	return Map(g, pure.Tableize1(f, maxTableSize))
}

// Lift2Tabled is Lift2 for an expensive pure f; see MapTabled.
func Lift2Tabled[A, B, R any](f func(A, B) R, a *Generator[A], b *Generator[B], maxTableSize uint32) *Generator[R] {
	return Lift2(pure.Tableize2(f, maxTableSize), a, b)
}

// Custom wraps an evaluation function with direct access to the pass. fn draws
// sub-generators with Eval and randomness from env.Source().
//
// Generators fn closes over are not rebuilt by Clone.
func Custom[T any](fn func(env *Env) (T, error)) *Generator[T] {
	return newGenerator[T](custom[T]{fn: fn})
}

// FromSource wraps a single draw from the random source.
func FromSource[T any](fn func(random.Source) T) *Generator[T] {
	return newGenerator[T](primitive[T]{draw: fn})
}

// Must panics if err is non-nil. It is meant for package-level generators
// built by constructors that return an error.
func Must[T any](g *Generator[T], err error) *Generator[T] {
	if err != nil {
		panic(err)
	}
	return g
}
