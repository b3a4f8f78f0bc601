// Package style holds the connection style policy.
//
// A [ConnectionStyle] is an explicit configuration value passed to the
// painter; there is no process-wide style. Styles load from TOML and start
// from [Default], so a file only needs to name what it changes:
//
//	line_width = 4.0
//	use_data_defined_colors = true
//
//	[type_colors]
//	integer = "#3b82f6"
package style

import (
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/geometry"
)

// DefaultGradientSegments is the number of flat segments approximating a
// gradient stroke.
const DefaultGradientSegments = 20

// DefaultSelectedDarken is the Darker factor applied to selected gradients.
const DefaultSelectedDarken = 200

// ConnectionStyle controls how connections are stroked.
type ConnectionStyle struct {
	ConstructionColor     Color            `toml:"construction_color"`
	NormalColor           Color            `toml:"normal_color"`
	SelectedColor         Color            `toml:"selected_color"`
	SelectedHaloColor     Color            `toml:"selected_halo_color"`
	HoveredColor          Color            `toml:"hovered_color"`
	LineWidth             float64          `toml:"line_width"`
	ConstructionLineWidth float64          `toml:"construction_line_width"`
	PointDiameter         float64          `toml:"point_diameter"`
	UseDataDefinedColors  bool             `toml:"use_data_defined_colors"`
	GradientSegments      int              `toml:"gradient_segments"`
	SelectedDarken        int              `toml:"selected_darken"`
	TypeColors            map[string]Color `toml:"type_colors,omitempty"`
	Curve                 geometry.Curve   `toml:"curve"`
}

// Default returns the stock connection style.
func Default() ConnectionStyle {
	return ConnectionStyle{
		ConstructionColor:     namedColors["gray"],
		NormalColor:           namedColors["darkcyan"],
		SelectedColor:         RGB(100, 100, 100),
		SelectedHaloColor:     namedColors["orange"],
		HoveredColor:          namedColors["lightcyan"],
		LineWidth:             3.0,
		ConstructionLineWidth: 2.0,
		PointDiameter:         10.0,
		UseDataDefinedColors:  false,
		GradientSegments:      DefaultGradientSegments,
		SelectedDarken:        DefaultSelectedDarken,
		Curve:                 geometry.DefaultCurve,
	}
}

// TypeColor returns the normal colour for a data type id: an explicit
// override when configured, otherwise a colour derived from the id.
func (s ConnectionStyle) TypeColor(id string) Color {
	if c, ok := s.TypeColors[id]; ok {
		return c
	}
	return ColorForType(id)
}

// Validate rejects values no painter can honour.
func (s ConnectionStyle) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"line_width", s.LineWidth},
		{"construction_line_width", s.ConstructionLineWidth},
		{"point_diameter", s.PointDiameter},
		{"curve.min_offset", s.Curve.MinOffset},
		{"curve.offset_ratio", s.Curve.OffsetRatio},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must be finite: %v", f.name, f.v)
		}
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must not be negative: %v", f.name, f.v)
		}
	}
	if s.GradientSegments < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "gradient_segments must not be negative: %d", s.GradientSegments)
	}
	return nil
}

// Decode reads a TOML style from r on top of Default.
func Decode(r io.Reader) (ConnectionStyle, error) {
	s := Default()
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return ConnectionStyle{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode style")
	}
	if err := s.Validate(); err != nil {
		return ConnectionStyle{}, err
	}
	return s, nil
}

// Load reads a TOML style file.
func Load(path string) (ConnectionStyle, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return ConnectionStyle{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
	}
	if err != nil {
		return ConnectionStyle{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "open style %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes s as TOML.
func (s ConnectionStyle) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}
