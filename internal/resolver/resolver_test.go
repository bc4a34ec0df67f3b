package resolver

import (
	"math"
	"testing"

	. "github.com/dball/visattr/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floats(xs ...float64) []Value {
	values := make([]Value, len(xs))
	for i, x := range xs {
		values[i] = Float(x)
	}
	return values
}

func strs(xs ...string) []Value {
	values := make([]Value, len(xs))
	for i, x := range xs {
		values[i] = String(x)
	}
	return values
}

func TestDiscrete(t *testing.T) {
	values := strs("c1", "c2", "c3")
	t.Run("wraparound", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			value, err := Discrete(i, values)
			require.NoError(t, err)
			assert.Equal(t, values[i%3], value)
		}
	})
	t.Run("negative", func(t *testing.T) {
		value, err := Discrete(-1, values)
		require.NoError(t, err)
		assert.Equal(t, String("c3"), value)
	})
	t.Run("constant", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			value, err := Discrete(i, strs("only"))
			require.NoError(t, err)
			assert.Equal(t, String("only"), value)
		}
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Discrete(0, nil)
		assert.ErrorIs(t, err, ErrEmptyValues)
	})
}

func TestLinear(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		for k := 2; k < 6; k++ {
			values := make([]float64, k)
			for i := range values {
				values[i] = float64(i*i) + 3
			}
			first, err := Linear(0, floats(values...), Numeric)
			require.NoError(t, err)
			assert.Equal(t, Float(values[0]), first)
			last, err := Linear(1, floats(values...), Numeric)
			require.NoError(t, err)
			assert.Equal(t, Float(values[k-1]), last)
		}
	})
	t.Run("midpoint", func(t *testing.T) {
		value, err := Linear(0.5, floats(0, 100), Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(50), value)
		value, err = Linear(0.5, floats(0, 1), Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(0.5), value)
	})
	t.Run("segments", func(t *testing.T) {
		values := floats(0, 10, 100)
		value, err := Linear(0.4, values, Numeric)
		require.NoError(t, err)
		assert.InDelta(t, 8, float64(value.(Float)), 1e-9)
		value, err = Linear(0.8, values, Numeric)
		require.NoError(t, err)
		assert.InDelta(t, 64, float64(value.(Float)), 1e-9)
		value, err = Linear(0.5, values, Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(10), value)
	})
	t.Run("clamps", func(t *testing.T) {
		values := floats(2, 4)
		value, err := Linear(-3, values, Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(2), value)
		value, err = Linear(7, values, Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(4), value)
		value, err = Linear(math.NaN(), values, Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(2), value)
	})
	t.Run("single", func(t *testing.T) {
		value, err := Linear(0.7, floats(9), Numeric)
		require.NoError(t, err)
		assert.Equal(t, Float(9), value)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Linear(0.7, nil, Numeric)
		assert.ErrorIs(t, err, ErrEmptyValues)
	})
	t.Run("not interpolable", func(t *testing.T) {
		_, err := Linear(0.3, strs("a", "b"), Numeric)
		assert.ErrorIs(t, err, ErrNotInterpolable)
		value, err := Linear(1, strs("a", "b"), Numeric)
		require.NoError(t, err)
		assert.Equal(t, String("b"), value)
	})
}

func TestStep(t *testing.T) {
	values := strs("s1", "s2")
	cases := []struct {
		p        float64
		expected Value
	}{
		{0, String("s1")},
		{0.4, String("s1")},
		{0.5, String("s2")},
		{0.9, String("s2")},
		{1, String("s2")},
		{1.5, String("s2")},
		{-1, String("s1")},
	}
	for _, c := range cases {
		value, err := Step(c.p, values)
		require.NoError(t, err)
		assert.Equal(t, c.expected, value, "p=%v", c.p)
	}
	_, err := Step(0.5, nil)
	assert.ErrorIs(t, err, ErrEmptyValues)
	value, err := Step(0.99, strs("s1", "s2", "s3"))
	require.NoError(t, err)
	assert.Equal(t, String("s3"), value)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, float32(1.5), Lerp(float32(1), float32(2), float32(0.5)))
}
