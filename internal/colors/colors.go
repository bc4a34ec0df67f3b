// Package colors parses color strings, expands gradient specifications and
// interpolates colors channel by channel in 8-bit RGB space.
package colors

import (
	"fmt"
	"math"
	"strings"

	. "github.com/dball/visattr/internal/types"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// GradientDelimiter separates the colors of a gradient specification.
const GradientDelimiter = "-"

// ErrInvalidColor is returned for strings that are not hex codes, rgb() triples, or css color names.
var ErrInvalidColor = NewError("colors.invalidColor")

// RGB is an opaque 8-bit color. Alpha is not modeled.
type RGB struct {
	R, G, B uint8
}

// Hex returns the lower-case #rrggbb form of the color.
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// Parse parses #rgb and #rrggbb hex codes, rgb(r, g, b) triples, and css color names.
func Parse(s string) (c RGB, err error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(spec, "#"):
		if len(spec) != 4 && len(spec) != 7 {
			err = NewError("colors.invalidColor", "color", s)
			return
		}
		var parsed colorful.Color
		parsed, err = colorful.Hex(spec)
		if err != nil {
			err = NewError("colors.invalidColor", "color", s, "cause", err)
			return
		}
		c.R, c.G, c.B = parsed.RGB255()
	case strings.HasPrefix(spec, "rgb("):
		var r, g, b int
		_, err = fmt.Sscanf(strings.ReplaceAll(spec, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b)
		if err != nil || !inByte(r) || !inByte(g) || !inByte(b) {
			err = NewError("colors.invalidColor", "color", s)
			return
		}
		c = RGB{uint8(r), uint8(g), uint8(b)}
	default:
		named, ok := colornames.Map[spec]
		if !ok {
			err = NewError("colors.invalidColor", "color", s)
			return
		}
		parsed, _ := colorful.MakeColor(named)
		c.R, c.G, c.B = parsed.RGB255()
	}
	return
}

func inByte(x int) bool {
	return x >= 0 && x <= 255
}

// ParseGradient splits a gradient specification such as "#000000-#0000ff" into its colors.
// A string with no delimiter is not a gradient; ok is false and no error is returned.
func ParseGradient(spec string) (stops []RGB, ok bool, err error) {
	if !strings.Contains(spec, GradientDelimiter) {
		return
	}
	ok = true
	parts := strings.Split(spec, GradientDelimiter)
	stops = make([]RGB, 0, len(parts))
	for _, part := range parts {
		var c RGB
		c, err = Parse(part)
		if err != nil {
			stops = nil
			return
		}
		stops = append(stops, c)
	}
	return
}

// Lerp interpolates each channel independently, rounding to the nearest integer.
func Lerp(from RGB, to RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
	}
}

func lerpChannel(a uint8, b uint8, t float64) uint8 {
	x := math.Round(float64(a) + float64((float64(b)-float64(a))*t))
	switch {
	case x < 0:
		x = 0
	case x > 255:
		x = 255
	}
	return uint8(x)
}

// Interpolate blends two String color values, returning the hex String of the blend.
// It satisfies resolver.Interpolator.
func Interpolate(from Value, to Value, t float64) (value Value, err error) {
	a, err := parseValue(from)
	if err != nil {
		return
	}
	b, err := parseValue(to)
	if err != nil {
		return
	}
	value = String(Lerp(a, b, t).Hex())
	return
}

func parseValue(value Value) (c RGB, err error) {
	s, ok := value.(String)
	if !ok {
		err = NewError("colors.invalidColor", "color", value)
		return
	}
	c, err = Parse(string(s))
	return
}

// Validate checks that every value is a parseable color String.
func Validate(values []Value) (err error) {
	for _, value := range values {
		if _, err = parseValue(value); err != nil {
			return
		}
	}
	return
}
