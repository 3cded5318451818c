package gen_test

import (
	"testing"

	"github.com/on-the-ground/fakir_go/gen"
	"github.com/on-the-ground/fakir_go/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw[T any](t *testing.T, g *gen.Generator[T]) T {
	t.Helper()
	v, err := g.Sample(random.New(1))
	require.NoError(t, err)
	return v
}

func drawErr[T any](g *gen.Generator[T]) error {
	_, err := g.Sample(random.New(1))
	return err
}

func TestOps_Arithmetic(t *testing.T) {
	seven, two := gen.Fixed(7), gen.Fixed(2)
	assert.Equal(t, 9, draw(t, gen.Add(seven, two)))
	assert.Equal(t, 5, draw(t, gen.Sub(seven, two)))
	assert.Equal(t, 14, draw(t, gen.Mul(seven, two)))
	assert.Equal(t, 3, draw(t, gen.Div(seven, two)))
	assert.Equal(t, 49, draw(t, gen.Pow(seven, two)))
	assert.Equal(t, -7, draw(t, gen.Neg(seven)))
	assert.Equal(t, 7, draw(t, gen.Abs(gen.Fixed(-7))))
	assert.Equal(t, 3.5, draw(t, gen.Div(gen.Fixed(7.0), gen.Fixed(2.0))))
	assert.Equal(t, "Wolf Karst", draw(t, gen.Add(gen.Add(gen.Fixed("Wolf"), gen.Fixed(" ")), gen.Fixed("Karst"))))
}

func TestOps_FloorSemantics(t *testing.T) {
	cases := []struct{ a, b, div, mod int }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
	}
	for _, tc := range cases {
		a, b := gen.Fixed(tc.a), gen.Fixed(tc.b)
		assert.Equal(t, tc.div, draw(t, gen.FloorDiv(a, b)), "%d // %d", tc.a, tc.b)
		assert.Equal(t, tc.mod, draw(t, gen.Mod(a, b)), "%d %% %d", tc.a, tc.b)
	}
	assert.InDelta(t, 1.5, draw(t, gen.FMod(gen.Fixed(-5.5), gen.Fixed(3.5))), 1e-12)
}

func TestOps_DivisionByZero(t *testing.T) {
	zero := gen.Fixed(0)
	assert.ErrorIs(t, drawErr(gen.Div(gen.Fixed(1), zero)), gen.ErrDivisionByZero)
	assert.ErrorIs(t, drawErr(gen.FloorDiv(gen.Fixed(1), zero)), gen.ErrDivisionByZero)
	assert.ErrorIs(t, drawErr(gen.Mod(gen.Fixed(1), zero)), gen.ErrDivisionByZero)
	assert.NoError(t, drawErr(gen.Div(gen.Fixed(1.0), gen.Fixed(0.0))))
}

func TestOps_Comparison(t *testing.T) {
	one, two := gen.Fixed(1), gen.Fixed(2)
	assert.True(t, draw(t, gen.Lt(one, two)))
	assert.True(t, draw(t, gen.Le(one, one)))
	assert.False(t, draw(t, gen.Gt(one, two)))
	assert.True(t, draw(t, gen.Ge(two, one)))
	assert.True(t, draw(t, gen.Eq(gen.Fixed("Oil"), gen.Fixed("Oil"))))
	assert.True(t, draw(t, gen.Ne(one, two)))
}

func TestOps_Comparison_SharedOperand(t *testing.T) {
	x := gen.Normal(0, 1)
	assert.True(t, draw(t, gen.Eq(x, x)))
	assert.False(t, draw(t, gen.Lt(x, x)))
}

func TestOps_Logic(t *testing.T) {
	tr, fa := gen.Fixed(true), gen.Fixed(false)
	assert.False(t, draw(t, gen.And(tr, fa)))
	assert.True(t, draw(t, gen.Or(tr, fa)))
	assert.True(t, draw(t, gen.Xor(tr, fa)))
	assert.False(t, draw(t, gen.Xor(tr, tr)))
	assert.False(t, draw(t, gen.Not(tr)))
}

func TestOps_Bits(t *testing.T) {
	a, b := gen.Fixed(uint8(0b1100)), gen.Fixed(uint8(0b1010))
	assert.Equal(t, uint8(0b1000), draw(t, gen.BitAnd(a, b)))
	assert.Equal(t, uint8(0b1110), draw(t, gen.BitOr(a, b)))
	assert.Equal(t, uint8(0b0110), draw(t, gen.BitXor(a, b)))
	assert.Equal(t, uint8(0b11110011), draw(t, gen.BitNot(a)))
	assert.Equal(t, 12, draw(t, gen.Shl(gen.Fixed(3), gen.Fixed(uint(2)))))
	assert.Equal(t, 3, draw(t, gen.Shr(gen.Fixed(12), gen.Fixed(2))))
	assert.ErrorIs(t, drawErr(gen.Shl(gen.Fixed(1), gen.Fixed(-1))), gen.ErrInvalidArgument)
}

func TestOps_Collections(t *testing.T) {
	xs := gen.Fixed([]string{"Wolf", "Eagle", "Cheetah"})
	assert.Equal(t, "Eagle", draw(t, gen.Index(xs, gen.Fixed(1))))
	assert.Equal(t, "Cheetah", draw(t, gen.Index(xs, gen.Fixed(-1))))
	assert.ErrorIs(t, drawErr(gen.Index(xs, gen.Fixed(3))), gen.ErrIndexOutOfRange)
	assert.ErrorIs(t, drawErr(gen.Index(xs, gen.Fixed(-4))), gen.ErrIndexOutOfRange)

	assert.True(t, draw(t, gen.Contains(xs, gen.Fixed("Wolf"))))
	assert.False(t, draw(t, gen.Contains(xs, gen.Fixed("Tundra"))))
	assert.Equal(t, 3, draw(t, gen.Len(xs)))
	assert.Equal(t,
		[]string{"Wolf", "Eagle", "Cheetah", "Karst"},
		draw(t, gen.Concat(xs, gen.Fixed([]string{"Karst"}))),
	)

	prices := gen.Fixed(map[string]float64{"Oil": 45})
	assert.Equal(t, 45.0, draw(t, gen.Lookup(prices, gen.Fixed("Oil"))))
	assert.ErrorIs(t, drawErr(gen.Lookup(prices, gen.Fixed("Gas"))), gen.ErrKeyNotFound)
}

func TestOps_IndexByRandomPosition(t *testing.T) {
	names := gen.Fixed([]string{"a", "b", "c"})
	pos := gen.UniformInt(0, 2)
	row := gen.Tupled2(pos, gen.Index(names, pos))

	src := random.New(3)
	for i := 0; i < 50; i++ {
		v, err := row.Sample(src)
		require.NoError(t, err)
		assert.Equal(t, string(rune('a'+v.First)), v.Second)
	}
}
