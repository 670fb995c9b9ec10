package celestial

import "strings"

// The parsers below are total: unknown text maps to a default value and
// ok == false, so callers can decide whether a fallback is worth a warning
// or an error.

// ParseStarClass parses a spectral class letter, case-insensitively.
// Unknown input yields ClassG.
func ParseStarClass(s string) (StarClass, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "O":
		return ClassO, true
	case "B":
		return ClassB, true
	case "A":
		return ClassA, true
	case "F":
		return ClassF, true
	case "G":
		return ClassG, true
	case "K":
		return ClassK, true
	case "M":
		return ClassM, true
	default:
		return ClassG, false
	}
}

// ParsePlanetType parses a planet type or one of its aliases.
// Unknown input yields Terrestrial.
func ParsePlanetType(s string) (PlanetType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terrestrial", "t", "rocky":
		return Terrestrial, true
	case "gasgiant", "gg", "gas", "gas giant":
		return GasGiant, true
	case "icegiant", "ig", "ice", "ice giant":
		return IceGiant, true
	default:
		return Terrestrial, false
	}
}

// ParseKind parses a body selector. Unknown input yields KindStar.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "star", "s":
		return KindStar, true
	case "planet", "p":
		return KindPlanet, true
	case "satellite", "sat":
		return KindSatellite, true
	default:
		return KindStar, false
	}
}
