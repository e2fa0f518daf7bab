package view

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/pkg/lidar"
)

// Named colors used by the palettes
var (
	Yellow            = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange            = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	DarkBrown         = color.RGBA{R: 92, G: 64, B: 51, A: 255}
	LimeGreen         = color.RGBA{R: 50, G: 204, B: 50, A: 255}
	MediumForestGreen = color.RGBA{R: 107, G: 142, B: 35, A: 255}
	ForestGreen       = color.RGBA{R: 35, G: 142, B: 35, A: 255}
	Copper            = color.RGBA{R: 184, G: 115, B: 51, A: 255}
	Magenta           = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	White             = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue              = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Gray              = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Wheat             = color.RGBA{R: 216, G: 216, B: 191, A: 255}
	Silver            = color.RGBA{R: 230, G: 232, B: 250, A: 255}
	Red               = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green             = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan              = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// Palette maps classification codes to colors
type Palette map[lidar.Code]color.RGBA

// ASPRSPalette returns the classification palette
func ASPRSPalette() Palette {
	return Palette{
		lidar.NeverClassified:   Yellow,
		lidar.Unassigned:        Orange,
		lidar.Ground:            DarkBrown,
		lidar.LowVegetation:     LimeGreen,
		lidar.MediumVegetation:  MediumForestGreen,
		lidar.HighVegetation:    ForestGreen,
		lidar.Building:          Copper,
		lidar.LowPoint:          Magenta,
		lidar.ModelKeyPoint:     White,
		lidar.Water:             Blue,
		lidar.Rail:              Gray,
		lidar.RoadSurface:       Gray,
		lidar.Overlap:           White,
		lidar.WireGuard:         Gray,
		lidar.WireConductor:     Gray,
		lidar.TransmissionTower: Wheat,
		lidar.WireConnector:     Blue,
		lidar.BridgeDeck:        Blue,
		lidar.HighNoise:         Magenta,
	}
}

// Lookup returns the color of a code and whether the palette maps it
func (p Palette) Lookup(code lidar.Code) (color.RGBA, bool) {
	c, ok := p[code]
	return c, ok
}

// Clone returns a copy that can be modified independently
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// UnknownClassificationCodeError reports a code the active palette does not map
type UnknownClassificationCodeError struct {
	Code lidar.Code
	Mode ColorMode
}

func (e *UnknownClassificationCodeError) Error() string {
	return fmt.Sprintf("unknown classification code %d in %s color mode", e.Code, e.Mode)
}

// ColorPolicy colors visible points according to the state's color mode
type ColorPolicy struct {
	Uniform  color.RGBA
	Fallback color.RGBA
	Source   Palette
	Derived  Palette

	// Report receives every distinct unknown code once per mode.
	// Defaults to a glog warning.
	Report func(err error)

	reported map[UnknownClassificationCodeError]bool
}

// NewColorPolicy creates a policy with the default palettes
func NewColorPolicy() *ColorPolicy {
	return &ColorPolicy{
		Uniform:  Yellow,
		Fallback: Silver,
		Source:   ASPRSPalette(),
		Derived:  ASPRSPalette(),
	}
}

// ColorOf returns the display color of p. Unmapped codes fall back to the
// Fallback color and are reported, never failing the frame.
func (c *ColorPolicy) ColorOf(p *lidar.Point, s *ViewState) color.RGBA {
	switch s.ColorMode {
	case ColorBySource:
		return c.lookup(c.Source, p.Code, s.ColorMode)
	case ColorByDerived:
		return c.lookup(c.Derived, p.Derived, s.ColorMode)
	default:
		return c.Uniform
	}
}

func (c *ColorPolicy) lookup(palette Palette, code lidar.Code, mode ColorMode) color.RGBA {
	if col, ok := palette.Lookup(code); ok {
		return col
	}
	c.report(UnknownClassificationCodeError{Code: code, Mode: mode})
	return c.Fallback
}

func (c *ColorPolicy) report(e UnknownClassificationCodeError) {
	if c.reported == nil {
		c.reported = make(map[UnknownClassificationCodeError]bool)
	}
	if c.reported[e] {
		return
	}
	c.reported[e] = true
	if c.Report != nil {
		c.Report(&e)
		return
	}
	glog.Warningf("%v, using fallback color", &e)
}

// ParseHexColor parses "#rrggbb" or "rrggbb"
func ParseHexColor(value string) (color.RGBA, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", value)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(v, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
