package style

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/portwire/pkg/errors"
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var namedColors = map[string]Color{
	"black":     {0, 0, 0},
	"white":     {255, 255, 255},
	"gray":      {160, 160, 164},
	"darkgray":  {128, 128, 128},
	"lightgray": {192, 192, 192},
	"darkcyan":  {0, 139, 139},
	"lightcyan": {224, 255, 255},
	"cyan":      {0, 255, 255},
	"orange":    {255, 165, 0},
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"blue":      {0, 0, 255},
}

// ParseColor accepts "#rrggbb" or one of a few colour names.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid colour %q", s)
	}
	return fromColorful(cf), nil
}

// MustParseColor is ParseColor for package-level literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// Lerp interpolates each RGB component linearly from c to o; t is clamped
// to [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = min(max(t, 0), 1)
	return fromColorful(c.colorful().BlendRgb(o.colorful(), t))
}

// Darker returns a darker colour: factor 200 halves the HSV value. A factor
// below 100 lightens, matching the usual toolkit convention; non-positive
// factors return c unchanged.
func (c Color) Darker(factor int) Color {
	if factor <= 0 {
		return c
	}
	h, s, v := c.colorful().Hsv()
	v = min(v*100/float64(factor), 1)
	return fromColorful(colorful.Hsv(h, s, v))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Hash-derived palette bounds, on a 0..255 scale.
const (
	hueRange  = 0xFF
	satBase   = 120
	satSpread = 129
	lightness = 160
)

// ColorForType derives a stable colour from a data type id: hue from the
// hash, a saturation in [120, 248] and a fixed lightness.
func ColorForType(id string) Color {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()

	hue := float64((sum >> 8) % hueRange)
	sat := float64(satBase+sum%satSpread) / 255
	return fromColorful(colorful.Hsl(hue, sat, lightness/255.0))
}
