package attr

import (
	"reflect"

	"github.com/dball/visattr/internal/colors"
	"github.com/dball/visattr/internal/iterator"
	"github.com/dball/visattr/internal/resolver"
	"github.com/dball/visattr/internal/types"
	"github.com/dball/visattr/pkg/scale"
)

func resolverFor(kind ChannelKind) func(attr *Attribute, raw []any) ([]Value, error) {
	switch kind {
	case Color:
		return valueResolver(colors.Interpolate)
	case Size, Opacity:
		return valueResolver(resolver.Numeric)
	case Position:
		return resolvePosition
	default:
		// Shapes are opaque identifiers, so continuous positions step through them.
		return valueResolver(nil)
	}
}

func isPassthrough(s scale.Scale) bool {
	_, ok := s.(scale.Passthrough)
	return ok
}

// valueResolver resolves one domain value against the governing scale. Categorical scales
// look values up by index unless the attribute is linear; continuous positions are
// interpolated, or stepped if there is no interpolator.
func valueResolver(interpolate resolver.Interpolator) func(attr *Attribute, raw []any) ([]Value, error) {
	return func(attr *Attribute, raw []any) (values []Value, err error) {
		if len(raw) == 0 {
			err = types.NewError("attr.missingValue", "kind", attr.kind)
			return
		}
		governing := attr.scales[0]
		if pt, ok := governing.(scale.Passthrough); ok {
			values = []Value{types.ValueOf(pt.Passthrough(raw[0]))}
			return
		}
		var value Value
		if scale.IsCategorical(governing) && !attr.linear {
			var index int
			index, err = governing.Index(raw[0])
			if err != nil {
				return
			}
			value, err = resolver.Discrete(index, attr.values)
		} else {
			var p float64
			p, err = governing.Normalize(raw[0])
			if err != nil {
				return
			}
			if interpolate == nil {
				value, err = resolver.Step(p, attr.values)
			} else {
				value, err = resolver.Linear(p, attr.values, interpolate)
			}
		}
		if err != nil {
			return
		}
		values = []Value{value}
		return
	}
}

// resolvePosition normalizes x through the first scale and y through the second. Either
// may be a sequence; a scalar on one axis is paired with every element on the other.
func resolvePosition(attr *Attribute, raw []any) (values []Value, err error) {
	var x, y any
	if len(raw) > 0 {
		x = raw[0]
	}
	if len(raw) > 1 {
		y = raw[1]
	}
	xs, xSeq := sequence(x)
	ys, ySeq := sequence(y)
	if xSeq && ySeq && len(xs) != len(ys) {
		err = types.NewError("attr.lengthMismatch", "x", len(xs), "y", len(ys))
		return
	}
	xv, err := normalizeAxis(attr.scales[0], x, xs, xSeq)
	if err != nil {
		return
	}
	yv, err := normalizeAxis(attr.scales[1], y, ys, ySeq)
	if err != nil {
		return
	}
	values = []Value{xv, yv}
	return
}

func normalizeAxis(s scale.Scale, raw any, items []any, isSeq bool) (value Value, err error) {
	if !isSeq {
		var p float64
		p, err = s.Normalize(raw)
		if err == nil {
			value = types.Float(p)
		}
		return
	}
	positions, err := iterator.Map[any](iterator.Slice[any](items), s.Normalize)
	if err != nil {
		return
	}
	value = types.Floats(positions)
	return
}

// sequence returns the elements of slices and arrays. Strings and byte slices are scalars.
func sequence(raw any) (items []any, ok bool) {
	if raw == nil {
		return
	}
	if _, isBytes := raw.([]byte); isBytes {
		return
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items = make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		ok = true
	}
	return
}
