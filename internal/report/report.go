// Package report renders generated bodies as terminal text or JSON.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/litescript/stargen/internal/celestial"
)

const (
	// discFrame is the half-width of the star disc grid (21x21 cells).
	discFrame = 10

	// Disc radius bounds in grid cells.
	discMinRadius = 4
	discMaxRadius = discFrame

	glyphFilled = "█"
	glyphEmpty  = " "
)

// Renderer formats bodies. With color off every style collapses to plain
// text, which is what pipes and tests want.
type Renderer struct {
	lg      *lipgloss.Renderer
	profile termenv.Profile
	color   bool

	title lipgloss.Style
}

// NewRenderer creates a renderer. color selects truecolor output; otherwise
// the ASCII profile is used and no escape sequences are emitted.
func NewRenderer(color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.TrueColor
	}
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(profile)
	return &Renderer{
		lg:      lg,
		profile: profile,
		color:   color,
		title:   lg.NewStyle().Bold(true),
	}
}

// Color reports whether the renderer emits color.
func (r *Renderer) Color() bool {
	return r.color
}

// Render formats any body.
func (r *Renderer) Render(b celestial.Body) (string, error) {
	switch v := b.(type) {
	case celestial.Star:
		return r.Star(v), nil
	case celestial.Planet:
		return r.Planet(v), nil
	case celestial.Satellite:
		return r.Satellite(v), nil
	default:
		return "", fmt.Errorf("unsupported body type %T", b)
	}
}

// Write renders b followed by a newline.
func (r *Renderer) Write(w io.Writer, b celestial.Body) error {
	s, err := r.Render(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// DiscRadius returns the disc radius in grid cells for a star diameter (km):
// 10*d/(7*Sun), clamped to [4, 10] and truncated.
func DiscRadius(diameter float64) int {
	radius := discFrame * diameter / (7 * celestial.Sun.Diameter)
	if !(radius >= discMinRadius) { // also catches NaN
		radius = discMinRadius
	} else if radius > discMaxRadius {
		radius = discMaxRadius
	}
	return int(radius)
}

// Disc draws the star as a filled circle on a 21x21 grid. Each row ends with
// a newline.
func (r *Renderer) Disc(s celestial.Star) string {
	radius := DiscRadius(s.Diameter)
	fill := glyphFilled
	if c, ok := parseHex(s.Class.Color()); ok {
		fill = r.profile.String(glyphFilled).Foreground(c).String()
	}

	var b strings.Builder
	for y := -discFrame; y <= discFrame; y++ {
		for x := -discFrame; x <= discFrame; x++ {
			if x*x+y*y < radius*radius {
				b.WriteString(fill)
			} else {
				b.WriteString(glyphEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// rgb is a termenv.Color that emits its channels verbatim. Colors built by
// lipgloss or termenv.RGBColor pass through float conversion and can come
// out one step off (#0066C4 renders blue as 195).
type rgb struct {
	r, g, b uint8
}

func (c rgb) Sequence(bg bool) string {
	prefix := "38"
	if bg {
		prefix = "48"
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.r, c.g, c.b)
}

// parseHex parses "#rrggbb".
func parseHex(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, true
}

// Star renders the disc and the statistics block.
func (r *Renderer) Star(s celestial.Star) string {
	ratios := s.RelativeToSun()

	var b strings.Builder
	b.WriteString(r.Disc(s))
	b.WriteString("\n")
	b.WriteString(r.title.Render(s.Name + ":"))
	fmt.Fprintf(&b, "\n-- Star Class: %s", s.Class)
	fmt.Fprintf(&b, "\n-- %s", s.Class.Label())
	fmt.Fprintf(&b, "\n-- Diameter: %.3e km  ==>  %.2f of sun", s.Diameter, ratios.Diameter)
	fmt.Fprintf(&b, "\n-- Surface Temperature: %.3e ˚K -- %.3e ˚C   ==>   %.2f of sun",
		s.Temp, s.TempCelsius(), ratios.Temp)
	return b.String()
}

// Planet renders the planet statistics block.
func (r *Renderer) Planet(p celestial.Planet) string {
	ratios := p.RelativeToEarth()

	var b strings.Builder
	b.WriteString(r.title.Render(p.Name + ":"))
	fmt.Fprintf(&b, "\n-- Planet Type: %s", p.Type)
	fmt.Fprintf(&b, "\n-- Diameter: %.3e km   ==>   %.2f of earth", p.Diameter, ratios.Diameter)
	fmt.Fprintf(&b, "\n-- Mass: %.3e kg   ==>   %.2f of earth", p.Mass, ratios.Mass)
	fmt.Fprintf(&b, "\n-- Orbital Period: %.2f days   ==>   %.2f of earth", p.OrbitalPeriod, ratios.OrbitalPeriod)
	fmt.Fprintf(&b, "\n-- Surface Gravity: %.2f m/s^2   ==>   %.2f g", p.SurfaceGravity(), ratios.Gravity)
	return b.String()
}

// Satellite renders the satellite statistics block.
func (r *Renderer) Satellite(s celestial.Satellite) string {
	ratios := s.RelativeToLuna()

	var b strings.Builder
	b.WriteString(r.title.Render(s.Name + ":"))
	fmt.Fprintf(&b, "\n-- Diameter: %.3e km  ==>  %.2f of luna", s.Diameter, ratios.Diameter)
	fmt.Fprintf(&b, "\n-- Orbital Distance: %.3e km  ==>  %.2f of luna", s.OrbitalDistance, ratios.OrbitalDistance)
	return b.String()
}
