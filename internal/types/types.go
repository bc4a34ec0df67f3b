// Package types defines the core system types.
package types

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value is an immutable visual channel value: a color, a size, an opacity,
// a shape identifier, or a position. Nil is not a valid value.
type Value interface {
	IsEmpty() bool
}

// String is a color or shape identifier.
type String string

func (s String) String() string {
	return fmt.Sprintf("#str(%q)", string(s))
}

// Float is a size, opacity, or normalized coordinate.
type Float float64

func (f Float) String() string {
	return fmt.Sprintf("#float(%v)", float64(f))
}

// Floats is a sequence of normalized coordinates, produced when a position
// axis is given a sequence of domain values.
type Floats []float64

func (fs Floats) String() string {
	return fmt.Sprintf("#floats(%v)", []float64(fs))
}

// Opaque is any other caller-supplied value, held as given.
type Opaque struct {
	V any
}

func (o Opaque) String() string {
	return fmt.Sprintf("#opaque(%v)", o.V)
}

func (x String) IsEmpty() bool { return string(x) == "" }
func (x Float) IsEmpty() bool  { return float64(x) == 0 }
func (x Floats) IsEmpty() bool { return len(x) == 0 }
func (x Opaque) IsEmpty() bool { return x.V == nil }

// ValueOf wraps a raw go value as a Value. Strings become String, any
// numeric kind becomes Float, float slices become Floats, and Values pass
// through. Everything else is held as Opaque.
func ValueOf(raw any) (value Value) {
	switch v := raw.(type) {
	case Value:
		value = v
	case string:
		value = String(v)
	case []float64:
		value = Floats(append([]float64(nil), v...))
	default:
		if f, ok := ToFloat(raw); ok {
			value = Float(f)
		} else {
			value = Opaque{V: raw}
		}
	}
	return
}

// ToFloat converts any go numeric kind, or a numeric Value, to a float64.
// Numeric strings are not converted.
func ToFloat(raw any) (f float64, ok bool) {
	switch v := raw.(type) {
	case Float:
		return float64(v), true
	case String, string, nil:
		return
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok = float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f, ok = float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f, ok = rv.Float(), true
	}
	return
}

// ChannelKind is the visual channel an attribute drives.
type ChannelKind int

const (
	ChannelColor ChannelKind = iota + 1
	ChannelSize
	ChannelShape
	ChannelOpacity
	ChannelPosition
)

var channelNames = map[ChannelKind]string{
	ChannelColor:    "color",
	ChannelSize:     "size",
	ChannelShape:    "shape",
	ChannelOpacity:  "opacity",
	ChannelPosition: "position",
}

func (kind ChannelKind) String() string {
	name, ok := channelNames[kind]
	if !ok {
		return "#channel(" + strconv.Itoa(int(kind)) + ")"
	}
	return name
}

// Valid reports whether the kind is one of the known channels.
func (kind ChannelKind) Valid() bool {
	_, ok := channelNames[kind]
	return ok
}
