package gen

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Real is the set of integer and floating-point types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number adds complex types to Real.
type Number interface {
	Real | constraints.Complex
}

// Signed is the set of types with a meaningful negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Addable is the set of types with a + operator.
type Addable interface {
	Number | ~string
}

func isIntegral[T Real]() bool {
	var one T = 1
	return one/2 == 0
}

func Add[T Addable](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x + y }, a, b)
}

func Sub[T Number](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x - y }, a, b)
}

func Mul[T Number](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x * y }, a, b)
}

// Div divides a by b. Integer division truncates toward zero and fails with
// ErrDivisionByZero on a zero divisor; float division follows IEEE 754.
func Div[T Real](a, b *Generator[T]) *Generator[T] {
	return tryLift2(func(x, y T) (T, error) {
		if y == 0 && isIntegral[T]() {
			return 0, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, x)
		}
		return x / y, nil
	}, a, b)
}

// FloorDiv divides a by b rounding toward negative infinity.
func FloorDiv[T constraints.Integer](a, b *Generator[T]) *Generator[T] {
	return tryLift2(func(x, y T) (T, error) {
		if y == 0 {
			return 0, fmt.Errorf("%w: %v // 0", ErrDivisionByZero, x)
		}
		q := x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			q--
		}
		return q, nil
	}, a, b)
}

// Mod is the remainder of FloorDiv, so it takes the sign of b.
func Mod[T constraints.Integer](a, b *Generator[T]) *Generator[T] {
	return tryLift2(func(x, y T) (T, error) {
		if y == 0 {
			return 0, fmt.Errorf("%w: %v %% 0", ErrDivisionByZero, x)
		}
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return r, nil
	}, a, b)
}

// FMod is Mod for floats. The result takes the sign of b.
func FMod[T constraints.Float](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T {
		r := math.Mod(float64(x), float64(y))
		if r != 0 && (r < 0) != (y < 0) {
			r += float64(y)
		}
		return T(r)
	}, a, b)
}

// Pow raises a to the power b in float64 and converts back to T.
func Pow[T Real](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T {
		return T(math.Pow(float64(x), float64(y)))
	}, a, b)
}

func Neg[T Signed](a *Generator[T]) *Generator[T] {
	return Map(a, func(x T) T { return -x })
}

func Abs[T Signed](a *Generator[T]) *Generator[T] {
	return Map(a, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

func Lt[T cmp.Ordered](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x < y }, a, b)
}

func Le[T cmp.Ordered](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x <= y }, a, b)
}

func Gt[T cmp.Ordered](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x > y }, a, b)
}

func Ge[T cmp.Ordered](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x >= y }, a, b)
}

func Eq[T comparable](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x == y }, a, b)
}

func Ne[T comparable](a, b *Generator[T]) *Generator[bool] {
	return Lift2(func(x, y T) bool { return x != y }, a, b)
}

// And draws both operands; it does not short-circuit. Use IfElse for that.
func And(a, b *Generator[bool]) *Generator[bool] {
	return Lift2(func(x, y bool) bool { return x && y }, a, b)
}

// Or draws both operands; it does not short-circuit.
func Or(a, b *Generator[bool]) *Generator[bool] {
	return Lift2(func(x, y bool) bool { return x || y }, a, b)
}

func Xor(a, b *Generator[bool]) *Generator[bool] {
	return Lift2(func(x, y bool) bool { return x != y }, a, b)
}

func Not(a *Generator[bool]) *Generator[bool] {
	return Map(a, func(x bool) bool { return !x })
}

func BitAnd[T constraints.Integer](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x & y }, a, b)
}

func BitOr[T constraints.Integer](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x | y }, a, b)
}

func BitXor[T constraints.Integer](a, b *Generator[T]) *Generator[T] {
	return Lift2(func(x, y T) T { return x ^ y }, a, b)
}

func BitNot[T constraints.Integer](a *Generator[T]) *Generator[T] {
	return Map(a, func(x T) T { return ^x })
}

// Shl shifts a left by n. A negative n fails with ErrInvalidArgument.
func Shl[T, S constraints.Integer](a *Generator[T], n *Generator[S]) *Generator[T] {
	return tryLift2(func(x T, s S) (T, error) {
		if s < 0 {
			return 0, invalidf("negative shift count %v", s)
		}
		return x << s, nil
	}, a, n)
}

// Shr shifts a right by n. A negative n fails with ErrInvalidArgument.
func Shr[T, S constraints.Integer](a *Generator[T], n *Generator[S]) *Generator[T] {
	return tryLift2(func(x T, s S) (T, error) {
		if s < 0 {
			return 0, invalidf("negative shift count %v", s)
		}
		return x >> s, nil
	}, a, n)
}

// Index yields xs[i]. A negative i counts from the end.
func Index[T any](xs *Generator[[]T], i *Generator[int]) *Generator[T] {
	return tryLift2(func(s []T, i int) (T, error) {
		j := i
		if j < 0 {
			j += len(s)
		}
		if j < 0 || j >= len(s) {
			var zero T
			return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s))
		}
		return s[j], nil
	}, xs, i)
}

func Lookup[K comparable, V any](m *Generator[map[K]V], k *Generator[K]) *Generator[V] {
	return tryLift2(func(m map[K]V, k K) (V, error) {
		v, ok := m[k]
		if !ok {
			return v, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		return v, nil
	}, m, k)
}

func Contains[T comparable](xs *Generator[[]T], x *Generator[T]) *Generator[bool] {
	return Lift2(slices.Contains[[]T, T], xs, x)
}

// Concat yields a new slice holding a's elements followed by b's.
func Concat[T any](a, b *Generator[[]T]) *Generator[[]T] {
	return Lift2(func(x, y []T) []T {
		return slices.Concat(x, y)
	}, a, b)
}

func Len[T any](xs *Generator[[]T]) *Generator[int] {
	return Map(xs, func(s []T) int { return len(s) })
}
