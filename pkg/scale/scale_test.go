package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	s := NewIdentity("type", "red")
	assert.Equal(t, "type", s.Field())
	assert.Equal(t, Identity, s.Kind())
	assert.False(t, IsCategorical(s))
	assert.Equal(t, "red", s.(Passthrough).Passthrough(0))
	_, err := s.Normalize(0)
	assert.ErrorIs(t, err, ErrNotNumeric)
	_, err = s.Index("red")
	assert.ErrorIs(t, err, ErrNotCategorical)

	raw := NewIdentity("x", nil)
	assert.Equal(t, 0.3, raw.(Passthrough).Passthrough(0.3))
	p, err := raw.Normalize(0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, p)
}

func TestCategory(t *testing.T) {
	s := NewCategory("type", "a", "b", "c", "d", "e")
	assert.Equal(t, Category, s.Kind())
	assert.True(t, IsCategorical(s))
	assert.Equal(t, 5, s.Cardinality())

	i, err := s.Index("c")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	p, err := s.Normalize("b")
	require.NoError(t, err)
	assert.Equal(t, 0.25, p)

	_, err = s.Normalize("z")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	raw, err := s.Denormalize(0.75)
	require.NoError(t, err)
	assert.Equal(t, "d", raw)
	_, err = s.Denormalize(2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	single := NewCategory("type", "only")
	p, err = single.Normalize("only")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestLinear(t *testing.T) {
	s := NewLinear("age", 0, 10)
	assert.Equal(t, Linear, s.Kind())
	assert.Equal(t, 0, s.Cardinality())

	for raw, expected := range map[any]float64{0: 0, 5: 0.5, 10.0: 1, int64(3): 0.3, float32(2.5): 0.25} {
		p, err := s.Normalize(raw)
		require.NoError(t, err)
		assert.InDelta(t, expected, p, 1e-9, "raw=%v", raw)
	}
	_, err := s.Normalize("ten")
	assert.ErrorIs(t, err, ErrNotNumeric)
	_, err = s.Index(3)
	assert.ErrorIs(t, err, ErrNotCategorical)

	raw, err := s.Denormalize(0.4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, raw)

	flat := NewLinear("age", 3, 3)
	p, err := flat.Normalize(3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}
