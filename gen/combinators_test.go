package gen_test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/fakir_go/gen"
	"github.com/on-the-ground/fakir_go/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_ValueDependentStructure(t *testing.T) {
	phase := gen.Choice([]string{"Oil", "Gas"})
	price := gen.Bind(phase, func(p string) *gen.Generator[float64] {
		if p == "Oil" {
			return gen.Uniform(30, 60)
		}
		return gen.Uniform(1.5, 4.5)
	})
	row := gen.Tupled2(phase, price)

	src := random.New(12345)
	seen := map[string]int{}
	for i := 0; i < 1000; i++ {
		v, err := row.Sample(src)
		require.NoError(t, err)
		seen[v.First]++
		switch v.First {
		case "Oil":
			assert.True(t, v.Second >= 30 && v.Second <= 60, "oil price %v", v.Second)
		case "Gas":
			assert.True(t, v.Second >= 1.5 && v.Second <= 4.5, "gas price %v", v.Second)
		default:
			t.Fatalf("unexpected phase %q", v.First)
		}
	}
	assert.Len(t, seen, 2)
}

func TestBind_ResultParticipatesInCache(t *testing.T) {
	shared := gen.Uniform01()
	b := gen.Bind(gen.Fixed(1), func(int) *gen.Generator[float64] {
		return shared
	})
	row := gen.Tupled2(shared, b)

	v, err := row.Sample(random.New(9))
	require.NoError(t, err)
	assert.Equal(t, v.First, v.Second)
}

func TestBind_NilContinuation(t *testing.T) {
	b := gen.Bind(gen.Fixed(1), func(int) *gen.Generator[int] { return nil })
	_, err := b.Sample(random.New(1))
	assert.ErrorIs(t, err, gen.ErrInvalidArgument)
}

func recording[T any](v T, flag *atomic.Bool) *gen.Generator[T] {
	return gen.Custom(func(*gen.Env) (T, error) {
		flag.Store(true)
		return v, nil
	})
}

func TestIfElse_ShortCircuits(t *testing.T) {
	var aHit, bHit atomic.Bool
	a := recording("a", &aHit)
	b := recording("b", &bHit)

	v, err := gen.IfElse(gen.Fixed(true), a, b).Sample(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.True(t, aHit.Load())
	assert.False(t, bHit.Load())

	aHit.Store(false)
	v, err = gen.IfElse(gen.Fixed(false), a, b).Sample(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.False(t, aHit.Load())
	assert.True(t, bHit.Load())
}

func TestIfElse_UntakenBranchConsumesNoRandomness(t *testing.T) {
	g := gen.IfElse(gen.Fixed(true), gen.Fixed(0.5), gen.Uniform01())
	src, ref := random.New(4), random.New(4)

	_, err := g.Sample(src)
	require.NoError(t, err)
	assert.Equal(t, ref.Float64(), src.Float64())
}

func TestIfElse_BranchesShareWithCondition(t *testing.T) {
	phase := gen.Choice([]string{"Oil", "Gas"})
	label := gen.IfElse(
		gen.Eq(phase, gen.Fixed("Oil")),
		gen.Map(phase, strings.ToUpper),
		gen.Map(phase, strings.ToLower),
	)
	row := gen.Tupled2(phase, label)

	src := random.New(77)
	for i := 0; i < 100; i++ {
		v, err := row.Sample(src)
		require.NoError(t, err)
		if v.First == "Oil" {
			assert.Equal(t, "OIL", v.Second)
		} else {
			assert.Equal(t, "gas", v.Second)
		}
	}
}

func TestRepeat_ProducesIndependentElements(t *testing.T) {
	g := gen.Uniform01()
	xs, err := gen.Repeat(g, 5).Sample(random.New(1))
	require.NoError(t, err)
	require.Len(t, xs, 5)

	seen := map[float64]bool{}
	for _, x := range xs {
		seen[x] = true
	}
	assert.Len(t, seen, 5)
}

func TestRepeat_DoesNotShareWithSource(t *testing.T) {
	g := gen.Uniform01()
	row := gen.Tupled2(g, gen.Repeat(g, 3))

	v, err := row.Sample(random.New(2))
	require.NoError(t, err)
	assert.NotContains(t, v.Second, v.First)
}

func TestRepeat_Bounds(t *testing.T) {
	xs, err := gen.Repeat(gen.Uniform01(), 0).Sample(random.New(1))
	require.NoError(t, err)
	assert.NotNil(t, xs)
	assert.Empty(t, xs)

	assert.PanicsWithError(t, fmt.Sprintf("%v: repeat count -1", gen.ErrInvalidArgument), func() {
		gen.Repeat(gen.Uniform01(), -1)
	})
}

func TestLift_EvaluatesLeftToRight(t *testing.T) {
	a, b, c := gen.Uniform01(), gen.Uniform01(), gen.Uniform01()
	sum := gen.Lift3(func(x, y, z float64) []float64 {
		return []float64{x, y, z}
	}, a, b, c)

	got, err := sum.Sample(random.New(8))
	require.NoError(t, err)

	ref := random.New(8)
	assert.Equal(t, []float64{ref.Float64(), ref.Float64(), ref.Float64()}, got)
}

func TestLiftList_And_Listed(t *testing.T) {
	g := gen.Uniform(0, 10)
	total := gen.LiftList(func(xs []float64) float64 {
		s := 0.0
		for _, x := range xs {
			s += x
		}
		return s
	}, g, g, g)

	v, err := gen.Tupled2(g, total).Sample(random.New(5))
	require.NoError(t, err)
	assert.InDelta(t, 3*v.First, v.Second, 1e-9)

	xs, err := gen.Listed(gen.Fixed(1), gen.Fixed(2), gen.Fixed(3)).Sample(random.New(5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, xs)
}

func TestLiftAny_MixedTypes(t *testing.T) {
	name := gen.Choice([]string{"Wolf", "Eagle"})
	count := gen.UniformInt(1, 3)
	missing := gen.Fixed[error](nil)

	label := gen.LiftAny(func(vals []any) string {
		return fmt.Sprintf("%s x%d %v", vals[0].(string), vals[1].(int), vals[2])
	}, name, count, missing)

	v, err := label.Sample(random.New(6))
	require.NoError(t, err)
	assert.Regexp(t, `^(Wolf|Eagle) x[1-3] <nil>$`, v)

	vals, err := gen.ListedAny(name, count).Sample(random.New(6))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.IsType(t, "", vals[0])
	assert.IsType(t, 0, vals[1])
}

func TestTupled_Shapes(t *testing.T) {
	v3, err := gen.Tupled3(gen.Fixed("a"), gen.Fixed(1), gen.Fixed(true)).Sample(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, gen.Tuple3[string, int, bool]{First: "a", Second: 1, Third: true}, v3)

	v4, err := gen.Tupled4(gen.Fixed(1), gen.Fixed(2), gen.Fixed(3), gen.Fixed(4)).Sample(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, 4, v4.Fourth)
}

func TestTryMap(t *testing.T) {
	parsed := gen.TryMap(gen.Choice([]string{"x"}), func(s string) (int, error) {
		return 0, fmt.Errorf("parse %q: %w", s, errBoom)
	})
	_, err := parsed.Sample(random.New(1))
	assert.ErrorIs(t, err, errBoom)
}

func TestMapTabled_CallsPureFunctionOncePerInput(t *testing.T) {
	var calls atomic.Int32
	class := gen.MapTabled(gen.UniformInt(0, 3), func(n int) string {
		calls.Add(1)
		return fmt.Sprintf("class-%d", n)
	}, 16)

	src := random.New(10)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		v, err := class.Sample(src)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.EqualValues(t, 4, calls.Load())
}

func TestLift2Tabled(t *testing.T) {
	var calls atomic.Int32
	grid := gen.Lift2Tabled(func(x, y int) int {
		calls.Add(1)
		return x*10 + y
	}, gen.UniformInt(0, 1), gen.UniformInt(0, 1), 8)

	src := random.New(11)
	for i := 0; i < 100; i++ {
		v, err := grid.Sample(src)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 1, 10, 11}, v)
	}
	assert.LessOrEqual(t, calls.Load(), int32(4))
}

func TestFromSource_And_Custom(t *testing.T) {
	die := gen.FromSource(func(src random.Source) int { return 1 + src.Intn(6) })
	sumOfTwo := gen.Custom(func(env *gen.Env) (int, error) {
		a, err := gen.Eval(env, die)
		if err != nil {
			return 0, err
		}
		b, err := gen.Eval(env, die.Clone())
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})

	src := random.New(12)
	for i := 0; i < 100; i++ {
		v, err := sumOfTwo.Sample(src)
		require.NoError(t, err)
		assert.True(t, v >= 2 && v <= 12)
	}
}

func TestMust(t *testing.T) {
	g := gen.Must(gen.PermuteN([]int{1, 2, 3}, 2))
	assert.NotNil(t, g)
	assert.Panics(t, func() { gen.Must(gen.PermuteN([]int{1}, 2)) })
}
