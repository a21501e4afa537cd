package anim

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named, ordered set of stroke colours.
type Palette struct {
	Name   string
	Colors []colorful.Color
}

func hexes(name string, hex ...string) Palette {
	p := Palette{Name: name, Colors: make([]colorful.Color, 0, len(hex))}
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("anim: bad palette colour " + h)
		}
		p.Colors = append(p.Colors, c)
	}
	return p
}

// Palettes are the presets cycled through on click.
var Palettes = []Palette{
	hexes("lesbian", "#D52D00", "#EF7627", "#FF9A56", "#FFFFFF", "#D162A4", "#B55690", "#A30262"),
	hexes("bisexual", "#D60270", "#D60270", "#9B4F96", "#0038A8", "#0038A8"),
	hexes("transgender", "#5BCEFA", "#F5A9B8", "#FFFFFF", "#F5A9B8", "#5BCEFA"),
	hexes("pansexual", "#FF218C", "#FFD800", "#21B1FF"),
	hexes("nonbinary", "#FCF434", "#FFFFFF", "#9C59D1", "#6B6B6B"),
	hexes("asexual", "#A3A3A3", "#FFFFFF", "#800080"),
	hexes("rainbow", "#E40303", "#FF8C00", "#FFED00", "#008026", "#004DFF", "#750787"),
}

// PaletteIndex returns the index of the named preset.
func PaletteIndex(name string) (int, bool) {
	for i, p := range Palettes {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// At blends continuously along the palette; t is clamped to [0,1].
func (p Palette) At(t float64) colorful.Color {
	switch len(p.Colors) {
	case 0:
		return white
	case 1:
		return p.Colors[0]
	}
	pos := clampf(finite(t, 0), 0, 1) * float64(len(p.Colors)-1)
	i := int(math.Floor(pos))
	if i >= len(p.Colors)-1 {
		return p.Colors[len(p.Colors)-1]
	}
	if f := pos - float64(i); f > 0 {
		return p.Colors[i].BlendLab(p.Colors[i+1], f).Clamped()
	}
	return p.Colors[i]
}

// Nearest returns the palette entry closest to position t in [0,1].
func (p Palette) Nearest(t float64) colorful.Color {
	if len(p.Colors) == 0 {
		return white
	}
	i := int(math.Round(clampf(finite(t, 0), 0, 1) * float64(len(p.Colors)-1)))
	return p.Colors[i]
}

// withAlpha converts c to a non-premultiplied colour with the given opacity.
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clampf(alpha, 0, 1) * 255))}
}
