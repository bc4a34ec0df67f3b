package attr

import (
	"github.com/dball/visattr/internal/iterator"
	"github.com/dball/visattr/internal/types"
	"github.com/dball/visattr/pkg/scale"
)

// LegendItem pairs a domain value with the channel value it maps to.
type LegendItem struct {
	Raw   any
	Value Value
}

// ErrLegendUnsupported is returned when a legend is asked of a position or unbound attribute.
var ErrLegendUnsupported = types.NewError("attr.legendUnsupported")

// Legend expands the governing scale into legend items. Categorical scales yield one item per
// category, in order; continuous scales yield n items evenly spaced across the domain, ends
// included.
func (attr *Attribute) Legend(n int) (items []LegendItem, err error) {
	if attr.kind == Position || len(attr.scales) == 0 {
		err = types.NewError("attr.legendUnsupported", "kind", attr.kind, "scales", len(attr.scales))
		return
	}
	governing := attr.scales[0]
	var positions iterator.Collection[float64]
	if scale.IsCategorical(governing) {
		positions = iterator.Spaced(governing.Cardinality())
	} else {
		if n < 2 {
			err = types.NewError("attr.legendUnsupported", "kind", attr.kind, "n", n)
			return
		}
		positions = iterator.Spaced(n)
	}
	items, err = iterator.Map(positions, func(p float64) (item LegendItem, err error) {
		item.Raw, err = governing.Denormalize(p)
		if err != nil {
			return
		}
		values, err := attr.Mapping(item.Raw)
		if err != nil {
			return
		}
		item.Value = values[0]
		return
	})
	return
}
