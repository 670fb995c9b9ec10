package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/litescript/stargen/internal/celestial"
)

// BodyExport is the JSON representation of a generated body. Exactly one of
// Star, Planet or Satellite is set, matching Kind.
type BodyExport struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	Seed      string           `json:"seed,omitempty"`
	Star      *StarExport      `json:"star,omitempty"`
	Planet    *PlanetExport    `json:"planet,omitempty"`
	Satellite *SatelliteExport `json:"satellite,omitempty"`
}

// StarExport is a JSON-friendly star.
type StarExport struct {
	Class      string  `json:"class"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	DiameterKm float64 `json:"diameter_km"`
	TempK      float64 `json:"temp_k"`
	TempC      float64 `json:"temp_c"`
	DiscRadius int     `json:"disc_radius"`
	ToSun      Ratios  `json:"to_sun"`
}

// PlanetExport is a JSON-friendly planet with derived quantities.
type PlanetExport struct {
	Type              string  `json:"type"`
	DiameterKm        float64 `json:"diameter_km"`
	MassKg            float64 `json:"mass_kg"`
	OrbitalPeriodDays float64 `json:"orbital_period_days"`
	SurfaceGravity    float64 `json:"surface_gravity_ms2"`
	OrbitalVelocity   float64 `json:"orbital_velocity_kms"`
	ToEarth           Ratios  `json:"to_earth"`
}

// SatelliteExport is a JSON-friendly satellite.
type SatelliteExport struct {
	DiameterKm        float64 `json:"diameter_km"`
	OrbitalDistanceKm float64 `json:"orbital_distance_km"`
	ToLuna            Ratios  `json:"to_luna"`
}

// Ratios maps attribute name to its ratio against the reference body.
type Ratios map[string]float64

// ExportBody converts a body to its exportable form.
func ExportBody(b celestial.Body) (*BodyExport, error) {
	export := &BodyExport{
		Kind: b.Kind().String(),
		Name: b.Title(),
	}

	switch v := b.(type) {
	case celestial.Star:
		r := v.RelativeToSun()
		export.Star = &StarExport{
			Class:      v.Class.String(),
			Label:      v.Class.Label(),
			Color:      v.Class.Color(),
			DiameterKm: v.Diameter,
			TempK:      v.Temp,
			TempC:      v.TempCelsius(),
			DiscRadius: DiscRadius(v.Diameter),
			ToSun:      Ratios{"diameter": r.Diameter, "temp": r.Temp},
		}
	case celestial.Planet:
		r := v.RelativeToEarth()
		export.Planet = &PlanetExport{
			Type:              v.Type.String(),
			DiameterKm:        v.Diameter,
			MassKg:            v.Mass,
			OrbitalPeriodDays: v.OrbitalPeriod,
			SurfaceGravity:    v.SurfaceGravity(),
			OrbitalVelocity:   v.OrbitalVelocity(),
			ToEarth: Ratios{
				"diameter":       r.Diameter,
				"mass":           r.Mass,
				"orbital_period": r.OrbitalPeriod,
				"gravity":        r.Gravity,
			},
		}
	case celestial.Satellite:
		r := v.RelativeToLuna()
		export.Satellite = &SatelliteExport{
			DiameterKm:        v.Diameter,
			OrbitalDistanceKm: v.OrbitalDistance,
			ToLuna:            Ratios{"diameter": r.Diameter, "orbital_distance": r.OrbitalDistance},
		}
	default:
		return nil, fmt.Errorf("unsupported body type %T", b)
	}

	return export, nil
}

// WriteJSON writes the export as indented JSON.
func (e *BodyExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
