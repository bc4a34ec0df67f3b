// Package scale contains the scale contract consumed by attributes, along with identity,
// category, and linear scales.
package scale

import (
	"github.com/dball/visattr/internal/types"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownCategory is returned when a category scale is given a value it does not know.
	ErrUnknownCategory = types.NewError("scale.unknownCategory")
	// ErrNotNumeric is returned when a continuous scale is given a value that is not a number.
	ErrNotNumeric = types.NewError("scale.notNumeric")
	// ErrNotCategorical is returned when a category index is asked of a scale without categories.
	ErrNotCategorical = types.NewError("scale.notCategorical")
	// ErrOutOfRange is returned when a position cannot be denormalized.
	ErrOutOfRange = types.NewError("scale.outOfRange")
)

// Kind distinguishes the ways a scale normalizes values.
type Kind int

const (
	Identity Kind = iota + 1
	Category
	Linear
)

func (kind Kind) String() string {
	switch kind {
	case Identity:
		return "identity"
	case Category:
		return "category"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Scale normalizes raw values of a single field. Scales are immutable and safe
// for concurrent use.
type Scale interface {
	// Field is the name of the domain field this scale normalizes.
	Field() string
	// Kind is the kind of the scale.
	Kind() Kind
	// Cardinality is the number of categories, or 0 for scales without categories.
	Cardinality() int
	// Index returns the category index of the raw value.
	Index(raw any) (index int, err error)
	// Normalize returns the position of the raw value in [0,1]. Category scales
	// normalize index i to i/(n-1).
	Normalize(raw any) (position float64, err error)
	// Denormalize is the inverse of Normalize.
	Denormalize(position float64) (raw any, err error)
}

// Passthrough is implemented by scales whose values are already visual values.
type Passthrough interface {
	Passthrough(raw any) any
}

// IsCategorical reports whether the scale maps values to category indices.
func IsCategorical(s Scale) bool {
	return s.Kind() == Category
}

type identityScale struct {
	field string
	value any
}

var _ Scale = (*identityScale)(nil)
var _ Passthrough = (*identityScale)(nil)

// NewIdentity returns a scale that passes values through unchanged. If a value is given,
// every raw value passes through as that value instead.
func NewIdentity(field string, value any) Scale {
	return &identityScale{field: field, value: value}
}

func (s *identityScale) Field() string    { return s.field }
func (s *identityScale) Kind() Kind       { return Identity }
func (s *identityScale) Cardinality() int { return 0 }

func (s *identityScale) Index(raw any) (index int, err error) {
	err = types.NewError("scale.notCategorical", "field", s.field)
	return
}

func (s *identityScale) Normalize(raw any) (position float64, err error) {
	position, ok := types.ToFloat(s.Passthrough(raw))
	if !ok {
		err = types.NewError("scale.notNumeric", "field", s.field, "value", raw)
	}
	return
}

func (s *identityScale) Denormalize(position float64) (raw any, err error) {
	if s.value != nil {
		raw = s.value
		return
	}
	raw = position
	return
}

func (s *identityScale) Passthrough(raw any) any {
	if s.value != nil {
		return s.value
	}
	return raw
}

type categoryScale struct {
	field  string
	values []any
}

var _ Scale = (*categoryScale)(nil)

// NewCategory returns a scale over the given ordered categories. Values are compared with ==,
// so they must be comparable.
func NewCategory(field string, values ...any) Scale {
	return &categoryScale{field: field, values: slices.Clone(values)}
}

func (s *categoryScale) Field() string    { return s.field }
func (s *categoryScale) Kind() Kind       { return Category }
func (s *categoryScale) Cardinality() int { return len(s.values) }

func (s *categoryScale) Index(raw any) (index int, err error) {
	index = slices.IndexFunc(s.values, func(v any) bool { return v == raw })
	if index < 0 {
		err = types.NewError("scale.unknownCategory", "field", s.field, "value", raw)
	}
	return
}

func (s *categoryScale) Normalize(raw any) (position float64, err error) {
	index, err := s.Index(raw)
	if err != nil {
		return
	}
	n := len(s.values)
	if n > 1 {
		position = float64(index) / float64(n-1)
	}
	return
}

func (s *categoryScale) Denormalize(position float64) (raw any, err error) {
	n := len(s.values)
	if n == 0 || position < 0 || position > 1 {
		err = types.NewError("scale.outOfRange", "field", s.field, "position", position)
		return
	}
	index := 0
	if n > 1 {
		index = int(position*float64(n-1) + 0.5)
	}
	raw = s.values[index]
	return
}

type linearScale struct {
	field string
	min   float64
	max   float64
}

var _ Scale = (*linearScale)(nil)

// NewLinear returns a continuous scale over [min, max]. Values outside the range normalize
// outside [0,1]; attributes clamp as needed.
func NewLinear(field string, min float64, max float64) Scale {
	return &linearScale{field: field, min: min, max: max}
}

func (s *linearScale) Field() string    { return s.field }
func (s *linearScale) Kind() Kind       { return Linear }
func (s *linearScale) Cardinality() int { return 0 }

func (s *linearScale) Index(raw any) (index int, err error) {
	err = types.NewError("scale.notCategorical", "field", s.field)
	return
}

func (s *linearScale) Normalize(raw any) (position float64, err error) {
	v, ok := types.ToFloat(raw)
	if !ok {
		err = types.NewError("scale.notNumeric", "field", s.field, "value", raw)
		return
	}
	if s.max == s.min {
		return
	}
	position = (v - s.min) / (s.max - s.min)
	return
}

func (s *linearScale) Denormalize(position float64) (raw any, err error) {
	raw = s.min + (s.max-s.min)*position
	return
}
