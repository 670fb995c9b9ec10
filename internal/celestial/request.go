package celestial

// Request describes a body with optional constraints. Nil fields are sampled.
type Request struct {
	Kind       Kind
	Name       string
	Class      *StarClass
	PlanetType *PlanetType
	Diameter   *float64 // km
	Temp       *float64 // Kelvin, stars only
}

// Generate builds the body described by req.
//
// Stars: Class wins over Diameter, which wins over Temp; with none set the
// class is random. Planets: PlanetType and Diameter may be combined; a
// Diameter alone picks a random type. Satellites ignore every constraint.
func (g *Generator) Generate(req Request) Body {
	switch req.Kind {
	case KindPlanet:
		return g.generatePlanet(req)
	case KindSatellite:
		return g.Satellite(req.Name)
	default:
		return g.generateStar(req)
	}
}

func (g *Generator) generateStar(req Request) Star {
	switch {
	case req.Class != nil:
		return g.StarFromClass(req.Name, *req.Class)
	case req.Diameter != nil:
		return g.StarFromDiameter(req.Name, *req.Diameter)
	case req.Temp != nil:
		return g.StarFromTemp(req.Name, *req.Temp)
	default:
		return g.Star(req.Name)
	}
}

func (g *Generator) generatePlanet(req Request) Planet {
	switch {
	case req.PlanetType != nil && req.Diameter != nil:
		return g.PlanetFromTypeAndDiameter(req.Name, *req.PlanetType, *req.Diameter)
	case req.PlanetType != nil:
		return g.PlanetFromType(req.Name, *req.PlanetType)
	case req.Diameter != nil:
		return g.PlanetFromTypeAndDiameter(req.Name, g.RandomPlanetType(), *req.Diameter)
	default:
		return g.Planet(req.Name)
	}
}
