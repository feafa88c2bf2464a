package renderer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

type colorKind int

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is an SVG paint value. The zero value renders as "none".
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

// NoneColor renders as "none".
var NoneColor = Color{}

// Named returns a color given by name, e.g. "white" or "#ff0000".
func Named(name string) Color { return Color{kind: colorNamed, name: name} }

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// RGBA returns a color with opacity in [0, 1].
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatNumber(c.opacity))
	default:
		return "none"
	}
}

// fromComponents builds a color from a [r,g,b] or [r,g,b,a] array. Any other
// length yields NoneColor. Channels are clamped to 0-255.
func fromComponents(v []float64) Color {
	switch len(v) {
	case 3:
		return RGB(channel(v[0]), channel(v[1]), channel(v[2]))
	case 4:
		return RGBA(channel(v[0]), channel(v[1]), channel(v[2]), v[3])
	default:
		return NoneColor
	}
}

func channel(f float64) uint8 {
	switch {
	case f <= 0 || math.IsNaN(f):
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// UnmarshalJSON accepts a string or a numeric array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Named(name)
		return nil
	}
	var comps []float64
	if err := json.Unmarshal(data, &comps); err != nil {
		return fmt.Errorf("color must be a string or an array of numbers: %w", err)
	}
	*c = fromComponents(comps)
	return nil
}

// UnmarshalYAML accepts a scalar or a numeric sequence.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = Named(value.Value)
		return nil
	case yaml.SequenceNode:
		comps := make([]float64, 0, len(value.Content))
		for _, n := range value.Content {
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return fmt.Errorf("line %d: color component %q: %w", n.Line, n.Value, err)
			}
			comps = append(comps, f)
		}
		*c = fromComponents(comps)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a scalar or a sequence", value.Line)
	}
}
