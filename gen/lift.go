package gen

type lifted[R any] struct {
	args []Any
	f    func(args []any) (R, error)
}

// compute draws the arguments left to right.
func (n lifted[R]) compute(env *Env) (R, error) {
	vals := make([]any, len(n.args))
	for i, arg := range n.args {
		v, err := arg.evalAny(env)
		if err != nil {
			var zero R
			return zero, err
		}
		vals[i] = v
	}
	return n.f(vals)
}

func (n lifted[R]) rebuild(memo cloneMemo) node[R] {
	args := make([]Any, len(n.args))
	for i, arg := range n.args {
		args[i] = arg.cloneAny(memo)
	}
	return lifted[R]{args: args, f: n.f}
}

func newLifted[R any](f func(args []any) (R, error), args ...Any) *Generator[R] {
	return newGenerator[R](lifted[R]{args: args, f: f})
}

// as asserts v to T, mapping a nil interface to the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

// Lift2 applies f to one draw from each argument generator.
func Lift2[A, B, R any](f func(A, B) R, a *Generator[A], b *Generator[B]) *Generator[R] {
	return newLifted(func(args []any) (R, error) {
		return f(as[A](args[0]), as[B](args[1])), nil
	}, a, b)
}

// Lift3 applies f to one draw from each argument generator.
func Lift3[A, B, C, R any](f func(A, B, C) R, a *Generator[A], b *Generator[B], c *Generator[C]) *Generator[R] {
	return newLifted(func(args []any) (R, error) {
		return f(as[A](args[0]), as[B](args[1]), as[C](args[2])), nil
	}, a, b, c)
}

// Lift4 applies f to one draw from each argument generator.
func Lift4[A, B, C, D, R any](
	f func(A, B, C, D) R,
	a *Generator[A], b *Generator[B], c *Generator[C], d *Generator[D],
) *Generator[R] {
	return newLifted(func(args []any) (R, error) {
		return f(as[A](args[0]), as[B](args[1]), as[C](args[2]), as[D](args[3])), nil
	}, a, b, c, d)
}

// tryLift2 is Lift2 for functions that can fail.
func tryLift2[A, B, R any](f func(A, B) (R, error), a *Generator[A], b *Generator[B]) *Generator[R] {
	return newLifted(func(args []any) (R, error) {
		return f(as[A](args[0]), as[B](args[1]))
	}, a, b)
}

// LiftList applies f to the values of gs, drawn in order.
func LiftList[T, R any](f func([]T) R, gs ...*Generator[T]) *Generator[R] {
	args := make([]Any, len(gs))
	for i, g := range gs {
		args[i] = g
	}
	return newLifted(func(vals []any) (R, error) {
		xs := make([]T, len(vals))
		for i, v := range vals {
			xs[i] = as[T](v)
		}
		return f(xs), nil
	}, args...)
}

// LiftAny applies f to the values of generators of mixed types, drawn in
// order. f receives each value as the dynamic type of its generator.
func LiftAny[R any](f func([]any) R, gs ...Any) *Generator[R] {
	return newLifted(func(vals []any) (R, error) {
		return f(vals), nil
	}, gs...)
}

// Listed collects one draw from each generator into a slice.
func Listed[T any](gs ...*Generator[T]) *Generator[[]T] {
	return LiftList(func(xs []T) []T { return xs }, gs...)
}

// ListedAny is Listed for generators of mixed types.
func ListedAny(gs ...Any) *Generator[[]any] {
	return LiftAny(func(vals []any) []any { return vals }, gs...)
}

type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func Tupled2[A, B any](a *Generator[A], b *Generator[B]) *Generator[Tuple2[A, B]] {
	return Lift2(func(a A, b B) Tuple2[A, B] {
		return Tuple2[A, B]{a, b}
	}, a, b)
}

func Tupled3[A, B, C any](a *Generator[A], b *Generator[B], c *Generator[C]) *Generator[Tuple3[A, B, C]] {
	return Lift3(func(a A, b B, c C) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{a, b, c}
	}, a, b, c)
}

func Tupled4[A, B, C, D any](
	a *Generator[A], b *Generator[B], c *Generator[C], d *Generator[D],
) *Generator[Tuple4[A, B, C, D]] {
	return Lift4(func(a A, b B, c C, d D) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{a, b, c, d}
	}, a, b, c, d)
}
