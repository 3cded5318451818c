package gen

import (
	"sync/atomic"

	"github.com/on-the-ground/fakir_go/random"
	"github.com/on-the-ground/fakir_go/shared/helper"
)

// ID identifies one generator instance. It is the evaluation cache key.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// node is the variant-specific part of a generator.
type node[T any] interface {
	compute(env *Env) (T, error)
	// rebuild returns an equivalent node whose child generators are cloned
	// through memo.
	rebuild(memo cloneMemo) node[T]
}

// Generator is an immutable description of how to draw a T.
type Generator[T any] struct {
	id   ID
	node node[T]
}

func newGenerator[T any](n node[T]) *Generator[T] {
	return &Generator[T]{id: nextID(), node: n}
}

func (g *Generator[T]) ID() ID {
	return g.id
}

// Sample draws one value from src with a fresh evaluation cache.
func (g *Generator[T]) Sample(src random.Source, opts ...SampleOption) (T, error) {
	return Eval(NewEnv(src, opts...), g)
}

// Any is the type-erased view of a *Generator[T], used where generators of
// different value types travel together.
type Any interface {
	ID() ID
	evalAny(env *Env) (any, error)
	cloneAny(memo cloneMemo) Any
}

func (g *Generator[T]) evalAny(env *Env) (any, error) {
	return Eval(env, g)
}

func (g *Generator[T]) cloneAny(memo cloneMemo) Any {
	return cloneWith(memo, g)
}

// Env is the state of one evaluation pass: the random source and the cache of
// values already drawn in this pass.
type Env struct {
	src            random.Source
	cache          map[ID]any
	hits           int
	misses         int
	rejectionLimit int
}

// SampleOption configures an Env.
type SampleOption func(*Env)

// WithRejectionLimit bounds rejection samplers that did not set their own
// limit. n <= 0 leaves them unbounded.
func WithRejectionLimit(n int) SampleOption {
	return func(env *Env) {
		env.rejectionLimit = n
	}
}

// NewEnv starts an evaluation pass. Generator.Sample calls it once per draw;
// callers that want cache statistics create their own and use Eval.
func NewEnv(src random.Source, opts ...SampleOption) *Env {
	env := &Env{
		src:   src,
		cache: make(map[ID]any),
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

func (env *Env) Source() random.Source {
	return env.src
}

// Len reports how many generators have a cached value in this pass.
func (env *Env) Len() int {
	return len(env.cache)
}

func (env *Env) Hits() int {
	return env.hits
}

func (env *Env) Misses() int {
	return env.misses
}

// Eval returns g's value for this pass, computing and caching it on first use.
// A failed computation caches nothing.
func Eval[T any](env *Env, g *Generator[T]) (T, error) {
	if v, ok := helper.MustLoadTyped[T](func() (any, bool) {
		v, ok := env.cache[g.id]
		return v, ok
	}); ok {
		env.hits++
		return v, nil
	}
	env.misses++

	v, err := g.node.compute(env)
	if err != nil {
		var zero T
		return zero, err
	}
	env.cache[g.id] = v
	return v, nil
}
