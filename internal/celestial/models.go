// Package celestial provides the body types, classification tables and
// generators for stars, planets and satellites.
package celestial

import "github.com/litescript/stargen/internal/astro"

// Kind selects which body to generate.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindSatellite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindSatellite:
		return "satellite"
	default:
		return "unknown"
	}
}

// StarClass is a Harvard spectral class, ordered hottest first.
type StarClass int

const (
	ClassO StarClass = iota
	ClassB
	ClassA
	ClassF
	ClassG
	ClassK
	ClassM
)

// StarClasses lists every class in table order (hottest first).
var StarClasses = []StarClass{ClassO, ClassB, ClassA, ClassF, ClassG, ClassK, ClassM}

// String returns the single-letter class name.
func (c StarClass) String() string {
	if c < ClassO || c > ClassM {
		return "?"
	}
	return "OBAFGKM"[c : c+1]
}

// Label returns the descriptive color label, e.g. "Yellow star".
func (c StarClass) Label() string {
	return c.info().Label
}

// Color returns the display color as a truecolor hex string.
func (c StarClass) Color() string {
	return c.info().Color
}

// PlanetType is the composition category of a planet.
type PlanetType int

const (
	Terrestrial PlanetType = iota
	GasGiant
	IceGiant
)

// PlanetTypes lists every planet type.
var PlanetTypes = []PlanetType{Terrestrial, GasGiant, IceGiant}

// String returns the upper-case type name used in reports.
func (t PlanetType) String() string {
	switch t {
	case Terrestrial:
		return "TERRESTRIAL"
	case GasGiant:
		return "GASGIANT"
	case IceGiant:
		return "ICEGIANT"
	default:
		return "UNKNOWN"
	}
}

// Star is a generated or reference star.
type Star struct {
	Name     string
	Class    StarClass
	Diameter float64 // km
	Temp     float64 // Kelvin
}

// Planet is a generated or reference planet.
type Planet struct {
	Name          string
	Type          PlanetType
	Diameter      float64 // km
	Mass          float64 // kg
	OrbitalPeriod float64 // days
}

// Satellite is a generated or reference natural satellite.
type Satellite struct {
	Name            string
	Diameter        float64 // km
	OrbitalDistance float64 // km
}

// Body is implemented by Star, Planet and Satellite.
type Body interface {
	Kind() Kind
	Title() string
}

func (s Star) Kind() Kind      { return KindStar }
func (p Planet) Kind() Kind    { return KindPlanet }
func (s Satellite) Kind() Kind { return KindSatellite }

func (s Star) Title() string      { return s.Name }
func (p Planet) Title() string    { return p.Name }
func (s Satellite) Title() string { return s.Name }

// Reference bodies. Treat as constants.
var (
	Sun = Star{
		Name:     "Sun",
		Class:    ClassG,
		Diameter: 1.39095e6,
		Temp:     5777.0,
	}

	Earth = Planet{
		Name:          "Earth",
		Type:          Terrestrial,
		Diameter:      12745.274,
		Mass:          5.9726e24,
		OrbitalPeriod: 365.0,
	}

	Luna = Satellite{
		Name:            "Luna",
		Diameter:        3474.0,
		OrbitalDistance: 384400.0,
	}
)

// SunRatios holds a star's attributes relative to the Sun.
type SunRatios struct {
	Diameter float64
	Temp     float64
}

// RelativeToSun compares the star against Sun.
func (s Star) RelativeToSun() SunRatios {
	return SunRatios{
		Diameter: astro.Ratio(s.Diameter, Sun.Diameter),
		Temp:     astro.Ratio(s.Temp, Sun.Temp),
	}
}

// TempCelsius returns the surface temperature in °C.
func (s Star) TempCelsius() float64 {
	return astro.KelvinToCelsius(s.Temp)
}

// SurfaceGravity returns the surface gravity in m/s^2.
func (p Planet) SurfaceGravity() float64 {
	return astro.SurfaceGravity(p.Mass, p.Diameter)
}

// OrbitalVelocity returns the simplified diameter-per-period speed in km/s.
func (p Planet) OrbitalVelocity() float64 {
	return astro.OrbitalVelocity(p.Diameter, p.OrbitalPeriod)
}

// EarthRatios holds a planet's attributes relative to Earth.
// Gravity is therefore expressed in g.
type EarthRatios struct {
	Diameter      float64
	Mass          float64
	OrbitalPeriod float64
	Gravity       float64
}

// RelativeToEarth compares the planet against Earth.
func (p Planet) RelativeToEarth() EarthRatios {
	return EarthRatios{
		Diameter:      astro.Ratio(p.Diameter, Earth.Diameter),
		Mass:          astro.Ratio(p.Mass, Earth.Mass),
		OrbitalPeriod: astro.Ratio(p.OrbitalPeriod, Earth.OrbitalPeriod),
		Gravity:       astro.Ratio(p.SurfaceGravity(), Earth.SurfaceGravity()),
	}
}

// LunaRatios holds a satellite's attributes relative to Luna.
type LunaRatios struct {
	Diameter        float64
	OrbitalDistance float64
}

// RelativeToLuna compares the satellite against Luna.
func (s Satellite) RelativeToLuna() LunaRatios {
	return LunaRatios{
		Diameter:        astro.Ratio(s.Diameter, Luna.Diameter),
		OrbitalDistance: astro.Ratio(s.OrbitalDistance, Luna.OrbitalDistance),
	}
}
