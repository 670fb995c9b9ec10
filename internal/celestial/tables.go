package celestial

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// ClassInfo describes one spectral class.
// Diameter is a multiplier of the Sun's diameter.
type ClassInfo struct {
	Class    StarClass
	Label    string
	Color    string // truecolor hex
	Temp     Range  // Kelvin
	Diameter Range  // x Sun.Diameter
}

// classTable is indexed by StarClass. Adjacent rows share boundaries so the
// temperature and diameter classifiers partition the axis the same way.
var classTable = [...]ClassInfo{
	ClassO: {ClassO, "Blue star", "#0066C4", Range{33000, 70000}, Range{6.6, 7.0}},
	ClassB: {ClassB, "Light blue star", "#44C7FF", Range{10000, 33000}, Range{1.8, 6.6}},
	ClassA: {ClassA, "White star", "#FFFFFF", Range{7500, 10000}, Range{1.4, 1.8}},
	ClassF: {ClassF, "Yellow-white star", "#FEFC96", Range{6000, 7500}, Range{1.15, 1.4}},
	ClassG: {ClassG, "Yellow star", "#FEFE4C", Range{5200, 6000}, Range{0.96, 1.15}},
	ClassK: {ClassK, "Orange star", "#FECF51", Range{3700, 5200}, Range{0.7, 0.96}},
	ClassM: {ClassM, "Red star", "#FE552B", Range{1000, 3700}, Range{0.1, 0.7}},
}

// Info returns the table row for a class. Out-of-range values fall back to G.
func Info(c StarClass) ClassInfo {
	return c.info()
}

func (c StarClass) info() ClassInfo {
	if c < ClassO || c > ClassM {
		return classTable[ClassG]
	}
	return classTable[c]
}

// PlanetRanges holds the sampling ranges for one planet type.
type PlanetRanges struct {
	Diameter      Range // km
	Mass          Range // kg
	OrbitalPeriod Range // days
}

var planetTable = [...]PlanetRanges{
	Terrestrial: {
		Diameter:      Range{4000, 20000},
		Mass:          Range{2e22, 2.9e25},
		OrbitalPeriod: Range{70, 750},
	},
	GasGiant: {
		Diameter:      Range{45000, 150000},
		Mass:          Range{5e26, 3e28},
		OrbitalPeriod: Range{3000, 80000},
	},
	IceGiant: {
		Diameter:      Range{45000, 60000},
		Mass:          Range{8e26, 3.6e28},
		OrbitalPeriod: Range{3000, 80000},
	},
}

// RangesFor returns the sampling ranges for a planet type.
// Unknown types use the terrestrial ranges.
func RangesFor(t PlanetType) PlanetRanges {
	if t < Terrestrial || t > IceGiant {
		return planetTable[Terrestrial]
	}
	return planetTable[t]
}

// Satellite sampling ranges. Satellites have no sub-classes.
var (
	SatelliteDiameter        = Range{5, 8000}
	SatelliteOrbitalDistance = Range{1000, 1000000}
)
