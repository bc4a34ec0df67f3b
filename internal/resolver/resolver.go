// Package resolver turns a normalized scale output into one of a configured list of
// output values, by index lookup, by piecewise-linear interpolation between evenly
// spaced anchors, or by stepping through equal-width buckets.
package resolver

import (
	"math"

	. "github.com/dball/visattr/internal/types"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyValues is returned when there are no values to resolve against.
	ErrEmptyValues = NewError("resolver.emptyValues")
	// ErrNotInterpolable is returned when linear interpolation is asked of values that are not numbers.
	ErrNotInterpolable = NewError("resolver.notInterpolable")
)

// Interpolator blends two adjacent anchors at offset t, where t is in [0,1).
type Interpolator func(from Value, to Value, t float64) (Value, error)

// Discrete returns values[i mod k]. Negative indices wrap as well.
func Discrete(i int, values []Value) (value Value, err error) {
	k := len(values)
	if k == 0 {
		err = ErrEmptyValues
		return
	}
	i %= k
	if i < 0 {
		i += k
	}
	value = values[i]
	return
}

// Linear treats values as anchors at 0, 1/(k-1), ..., 1 and interpolates between the two
// anchors enclosing the clamped position p. A position landing exactly on an anchor
// returns that anchor unchanged.
func Linear(p float64, values []Value, interpolate Interpolator) (value Value, err error) {
	k := len(values)
	switch k {
	case 0:
		err = ErrEmptyValues
		return
	case 1:
		value = values[0]
		return
	}
	steps := k - 1
	scaled := float64(steps) * Clamp(p)
	j := int(math.Floor(scaled))
	if j >= steps {
		value = values[steps]
		return
	}
	t := scaled - float64(j)
	if t == 0 {
		value = values[j]
		return
	}
	value, err = interpolate(values[j], values[j+1], t)
	return
}

// Step partitions [0,1] into k equal buckets and returns the value of the bucket holding
// the clamped position p. Buckets are half-open [lo, hi) except the last, which is closed,
// so p == 1 selects the last value.
func Step(p float64, values []Value) (value Value, err error) {
	k := len(values)
	if k == 0 {
		err = ErrEmptyValues
		return
	}
	bucket := int(math.Floor(Clamp(p) * float64(k)))
	if bucket >= k {
		bucket = k - 1
	}
	value = values[bucket]
	return
}

// Clamp bounds p to [0,1]. NaN clamps to 0.
func Clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Lerp returns a + (b-a)*t.
func Lerp[X constraints.Float](a X, b X, t X) X {
	// The conversion rounds the product, so no fused multiply-add is emitted.
	return a + X((b-a)*t)
}

// Numeric interpolates Float anchors.
func Numeric(from Value, to Value, t float64) (value Value, err error) {
	a, ok := from.(Float)
	if !ok {
		err = NewError("resolver.notInterpolable", "value", from)
		return
	}
	b, ok := to.(Float)
	if !ok {
		err = NewError("resolver.notInterpolable", "value", to)
		return
	}
	value = Float(Lerp(float64(a), float64(b), t))
	return
}
