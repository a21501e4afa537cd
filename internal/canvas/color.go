package canvas

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

func (c colorRGB) key() uint32 { return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B) }

// blend mixes the background bg toward c by alpha in [0,1].
func (c colorRGB) blend(bg colorRGB, alpha float64) colorRGB {
	alpha = max(0, min(alpha, 1))
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*alpha) }
	return colorRGB{R: mix(bg.R, c.R), G: mix(bg.G, c.G), B: mix(bg.B, c.B)}
}

// toRGB splits c into an opaque colour and its opacity.
func toRGB(c color.Color) (colorRGB, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorRGB{R: n.R, G: n.G, B: n.B}, float64(n.A) / 255
}

// currentColorProfile is the profile lipgloss renders the rest of the UI
// with, so the canvas and the panel agree.
func currentColorProfile() termenv.Profile {
	return lipgloss.ColorProfile()
}

// ProfileName describes the detected terminal colour support.
func ProfileName() string {
	switch currentColorProfile() {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "none"
	}
}

// seqCache maps profile and colour to a finished escape sequence.
var seqCache sync.Map

// colorSequence returns the foreground escape for c, downsampled by termenv
// to what p can show. Ascii gets no sequence.
func colorSequence(p termenv.Profile, c colorRGB) string {
	key := uint64(p)<<24 | uint64(c.key())
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch p {
	case termenv.Ascii:
	case termenv.TrueColor:
		seq = fmt.Sprintf("%s38;2;%d;%d;%dm", termenv.CSI, c.R, c.G, c.B)
	default:
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		if s := p.Convert(termenv.RGBColor(hex)).Sequence(false); s != "" {
			seq = termenv.CSI + s + "m"
		}
	}

	seqCache.Store(key, seq)
	return seq
}

// ansiState writes a colour escape only when the colour changes.
type ansiState struct {
	profile termenv.Profile
	current uint32
	active  bool
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.active && s.current == c.key() {
		return
	}
	seq := colorSequence(s.profile, c)
	if seq == "" {
		return
	}
	sb.WriteString(seq)
	s.current, s.active = c.key(), true
}

func (s *ansiState) reset(sb *strings.Builder) {
	if !s.active {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.active = false
}
