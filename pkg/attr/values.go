package attr

import (
	"reflect"

	"github.com/dball/visattr/internal/colors"
	"github.com/dball/visattr/internal/types"
)

// outputSpec is one of gradient, list, or single.
type outputSpec interface {
	// canonical returns the values as a list, and whether they came from a gradient.
	canonical() (values []Value, gradient bool)
}

type gradient struct {
	stops []colors.RGB
}

type list struct {
	values []Value
}

type single struct {
	value Value
}

func (g gradient) canonical() (values []Value, isGradient bool) {
	values = make([]Value, len(g.stops))
	for i, stop := range g.stops {
		values[i] = types.String(stop.Hex())
	}
	isGradient = true
	return
}

func (l list) canonical() ([]Value, bool) {
	return l.values, false
}

func (s single) canonical() ([]Value, bool) {
	return []Value{s.value}, false
}

// parseOutputSpec resolves the raw values of a config. Strings given to color attributes are
// gradients when they contain the delimiter, otherwise single colors normalized to hex.
func parseOutputSpec(kind ChannelKind, raw any) (spec outputSpec, err error) {
	if raw == nil {
		spec = list{values: []Value{}}
		return
	}
	if s, ok := raw.(string); ok && kind == Color {
		var stops []colors.RGB
		var isGradient bool
		stops, isGradient, err = colors.ParseGradient(s)
		if err != nil {
			return
		}
		if isGradient {
			spec = gradient{stops: stops}
			return
		}
		var c colors.RGB
		c, err = colors.Parse(s)
		if err != nil {
			return
		}
		spec = single{value: types.String(c.Hex())}
		return
	}
	if values, ok := raw.([]Value); ok {
		spec = list{values: append([]Value{}, values...)}
		return
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, ok := raw.([]byte); ok {
			break
		}
		values := make([]Value, rv.Len())
		for i := range values {
			values[i] = types.ValueOf(rv.Index(i).Interface())
		}
		spec = list{values: values}
		return
	}
	spec = single{value: types.ValueOf(raw)}
	return
}

// validate checks values that will be interpolated, so misconfiguration surfaces when the
// attribute is built rather than on the first mapping.
func (attr *Attribute) validate() (err error) {
	if !attr.linear || len(attr.scales) == 0 || isPassthrough(attr.scales[0]) {
		return
	}
	switch attr.kind {
	case Color:
		err = colors.Validate(attr.values)
	case Size, Opacity:
		for _, value := range attr.values {
			if _, ok := value.(types.Float); !ok {
				err = types.NewError("resolver.notInterpolable", "kind", attr.kind, "value", value)
				return
			}
		}
	}
	return
}
