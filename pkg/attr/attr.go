// Package attr maps domain values onto visual channel values: colors, sizes, shapes,
// opacities, and positions.
//
// An Attribute binds one or two scales to a channel and a set of output values. It is
// immutable once built, and Mapping may be called concurrently.
package attr

import (
	"io"

	"github.com/dball/visattr/internal/resolver"
	"github.com/dball/visattr/internal/types"
	"github.com/dball/visattr/pkg/scale"
	"github.com/sirupsen/logrus"
)

// ChannelKind is the visual channel an attribute drives.
type ChannelKind = types.ChannelKind

const (
	Color    = types.ChannelColor
	Size     = types.ChannelSize
	Shape    = types.ChannelShape
	Opacity  = types.ChannelOpacity
	Position = types.ChannelPosition
)

// Value is a mapped visual value. It is one of String, Float, Floats, or Opaque.
type Value = types.Value

type (
	String = types.String
	Float  = types.Float
	Floats = types.Floats
	Opaque = types.Opaque
)

var (
	// ErrUnboundScale is returned by Mapping on an attribute without scales.
	ErrUnboundScale = types.NewError("attr.unboundScale")
	// ErrEmptyValues is returned by Mapping when there are no output values to choose from.
	ErrEmptyValues = resolver.ErrEmptyValues
	// ErrNotInterpolable is returned for continuous size or opacity attributes with non-numeric values.
	ErrNotInterpolable = resolver.ErrNotInterpolable
	// ErrLengthMismatch is returned when a position is given two sequences of different lengths.
	ErrLengthMismatch = types.NewError("attr.lengthMismatch")
	// ErrPositionScales is returned when a position attribute is not built with exactly two scales.
	ErrPositionScales = types.NewError("attr.positionScales")
	// ErrUnknownKind is returned when building an attribute for an unknown channel.
	ErrUnknownKind = types.NewError("attr.unknownKind")
	// ErrMissingValue is returned when Mapping is called without a domain value.
	ErrMissingValue = types.NewError("attr.missingValue")
)

// Callback computes a channel value directly from raw domain values, bypassing scales.
type Callback func(raw ...any) any

// Config specifies an attribute.
type Config struct {
	// Scales are the scales that normalize the domain values, in argument order. Position
	// attributes take exactly two: x then y. Other attributes are governed by the first.
	Scales []scale.Scale
	// Values are the output values. They may be a slice of values, a single value, or, for
	// color attributes, a gradient specification such as "#000000-#0000ff".
	Values any
	// Callback, if given, overrides the scales and values.
	Callback Callback
	// Logger receives debug entries when attributes are built. Output is discarded if nil.
	Logger logrus.FieldLogger
}

var defaultLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}()

// Attribute maps domain values to the values of a visual channel.
type Attribute struct {
	kind     ChannelKind
	scales   []scale.Scale
	names    []string
	values   []Value
	linear   bool
	dispatch dispatcher
}

// dispatcher is either overridden, holding a callback, or algorithmic, holding the
// channel's resolver. The choice is made once, at construction.
type dispatcher interface {
	dispatch(attr *Attribute, raw []any) ([]Value, error)
}

type overridden struct {
	callback Callback
}

func (o overridden) dispatch(attr *Attribute, raw []any) ([]Value, error) {
	return []Value{types.ValueOf(o.callback(raw...))}, nil
}

type algorithmic struct {
	resolve func(attr *Attribute, raw []any) ([]Value, error)
}

func (a algorithmic) dispatch(attr *Attribute, raw []any) ([]Value, error) {
	if len(attr.scales) == 0 {
		return nil, types.NewError("attr.unboundScale", "kind", attr.kind)
	}
	return a.resolve(attr, raw)
}

// NewColor builds a color attribute.
func NewColor(config Config) (*Attribute, error) { return New(Color, config) }

// NewSize builds a size attribute.
func NewSize(config Config) (*Attribute, error) { return New(Size, config) }

// NewShape builds a shape attribute.
func NewShape(config Config) (*Attribute, error) { return New(Shape, config) }

// NewOpacity builds an opacity attribute.
func NewOpacity(config Config) (*Attribute, error) { return New(Opacity, config) }

// NewPosition builds a position attribute from an x scale and a y scale.
func NewPosition(config Config) (*Attribute, error) { return New(Position, config) }

// NewUnbound builds an attribute without scales, useful to introspect an attribute before
// its data is available. Mapping fails with ErrUnboundScale unless a callback is given.
func NewUnbound(kind ChannelKind, callback Callback) (attr *Attribute, err error) {
	if !kind.Valid() {
		err = types.NewError("attr.unknownKind", "kind", kind)
		return
	}
	attr = &Attribute{kind: kind, names: []string{}}
	if callback != nil {
		attr.dispatch = overridden{callback: callback}
	} else {
		attr.dispatch = algorithmic{resolve: resolverFor(kind)}
	}
	return
}

// New builds an attribute for the given channel.
func New(kind ChannelKind, config Config) (attr *Attribute, err error) {
	if !kind.Valid() {
		err = types.NewError("attr.unknownKind", "kind", kind)
		return
	}
	if kind == Position && len(config.Scales) != 2 {
		err = types.NewError("attr.positionScales", "scales", len(config.Scales))
		return
	}
	scales := append([]scale.Scale(nil), config.Scales...)
	names := make([]string, len(scales))
	for i, s := range scales {
		names[i] = s.Field()
	}
	spec, err := parseOutputSpec(kind, config.Values)
	if err != nil {
		return
	}
	values, isGradient := spec.canonical()
	linear := isGradient
	if len(scales) > 0 && !scale.IsCategorical(scales[0]) {
		linear = true
	}
	attr = &Attribute{
		kind:   kind,
		scales: scales,
		names:  names,
		values: values,
		linear: linear,
	}
	if config.Callback != nil {
		attr.dispatch = overridden{callback: config.Callback}
	} else {
		if err = attr.validate(); err != nil {
			attr = nil
			return
		}
		attr.dispatch = algorithmic{resolve: resolverFor(kind)}
	}
	logger := config.Logger
	if logger == nil {
		logger = defaultLogger
	}
	fields := logrus.Fields{
		"kind":       kind.String(),
		"names":      names,
		"linear":     linear,
		"values":     len(values),
		"overridden": config.Callback != nil,
	}
	if len(scales) > 0 && !linear && scales[0].Cardinality() > len(values) {
		fields["cycles"] = true
	}
	logger.WithFields(fields).Debug("attribute built")
	return
}

// Mapping returns the channel values for the given domain values. Position attributes take
// an x and a y value, either of which may be a slice, and return a pair; all others take
// one domain value and return one channel value.
func (attr *Attribute) Mapping(raw ...any) ([]Value, error) {
	return attr.dispatch.dispatch(attr, raw)
}

// Names returns the field of each scale, in order.
func (attr *Attribute) Names() []string {
	return append([]string{}, attr.names...)
}

// Type returns the channel.
func (attr *Attribute) Type() ChannelKind {
	return attr.kind
}

// Linear reports whether values are interpolated rather than looked up by category.
func (attr *Attribute) Linear() bool {
	return attr.linear
}

// Values returns the canonical output values.
func (attr *Attribute) Values() []Value {
	return append([]Value{}, attr.values...)
}

// Scales returns the scales.
func (attr *Attribute) Scales() []scale.Scale {
	return append([]scale.Scale{}, attr.scales...)
}
