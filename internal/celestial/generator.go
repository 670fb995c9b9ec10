package celestial

import "github.com/litescript/stargen/internal/rng"

// Generator samples bodies from the classification tables.
// Every method is total: any input yields a fully populated body.
type Generator struct {
	src rng.Source
}

// NewGenerator creates a generator drawing from src. A nil src uses
// rng.Default().
func NewGenerator(src rng.Source) *Generator {
	if src == nil {
		src = rng.Default()
	}
	return &Generator{src: src}
}

// Star generates a star of a uniformly random class.
func (g *Generator) Star(name string) Star {
	class := StarClasses[g.src.IntN(len(StarClasses))]
	return g.StarFromClass(name, class)
}

// StarFromClass generates a star of the given class. Diameter and temperature
// are sampled independently from the class ranges.
func (g *Generator) StarFromClass(name string, class StarClass) Star {
	info := class.info()
	return Star{
		Name:     name,
		Class:    info.Class,
		Diameter: g.diameterFor(info),
		Temp:     rng.Uniform(g.src, info.Temp.Min, info.Temp.Max),
	}
}

// StarFromTemp classifies temp and samples a diameter for that class.
// The temperature is kept as given.
func (g *Generator) StarFromTemp(name string, temp float64) Star {
	class := ClassFromTemp(temp)
	return Star{
		Name:     name,
		Class:    class,
		Diameter: g.diameterFor(class.info()),
		Temp:     temp,
	}
}

// StarFromDiameter classifies diameter (km) and samples a temperature for
// that class. The diameter is kept as given.
func (g *Generator) StarFromDiameter(name string, diameter float64) Star {
	info := ClassFromDiameter(diameter).info()
	return Star{
		Name:     name,
		Class:    info.Class,
		Diameter: diameter,
		Temp:     rng.Uniform(g.src, info.Temp.Min, info.Temp.Max),
	}
}

func (g *Generator) diameterFor(info ClassInfo) float64 {
	return rng.Uniform(g.src, info.Diameter.Min, info.Diameter.Max) * Sun.Diameter
}

// Planet generates a planet of a uniformly random type.
func (g *Generator) Planet(name string) Planet {
	return g.PlanetFromType(name, g.RandomPlanetType())
}

// PlanetFromType samples diameter, mass and orbital period from the type's
// ranges.
func (g *Generator) PlanetFromType(name string, t PlanetType) Planet {
	r := RangesFor(t)
	diameter := rng.Uniform(g.src, r.Diameter.Min, r.Diameter.Max)
	return g.planetWithDiameter(name, t, r, diameter)
}

// PlanetFromTypeAndDiameter keeps diameter (km) and samples mass and orbital
// period from the ranges of t.
func (g *Generator) PlanetFromTypeAndDiameter(name string, t PlanetType, diameter float64) Planet {
	return g.planetWithDiameter(name, t, RangesFor(t), diameter)
}

func (g *Generator) planetWithDiameter(name string, t PlanetType, r PlanetRanges, diameter float64) Planet {
	return Planet{
		Name:          name,
		Type:          t,
		Diameter:      diameter,
		Mass:          rng.Uniform(g.src, r.Mass.Min, r.Mass.Max),
		OrbitalPeriod: rng.Uniform(g.src, r.OrbitalPeriod.Min, r.OrbitalPeriod.Max),
	}
}

// RandomPlanetType picks a planet type uniformly.
func (g *Generator) RandomPlanetType() PlanetType {
	return PlanetTypes[g.src.IntN(len(PlanetTypes))]
}

// Satellite samples diameter and orbital distance over the full satellite
// ranges.
func (g *Generator) Satellite(name string) Satellite {
	return Satellite{
		Name:            name,
		Diameter:        rng.Uniform(g.src, SatelliteDiameter.Min, SatelliteDiameter.Max),
		OrbitalDistance: rng.Uniform(g.src, SatelliteOrbitalDistance.Min, SatelliteOrbitalDistance.Max),
	}
}
