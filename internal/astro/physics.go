// Package astro provides physical constants and unit helpers for body statistics.
package astro

// Physical constants and unit conversions.
const (
	// GravitationalConstant in m^3 kg^-1 s^-2 (truncated).
	GravitationalConstant = 6.67e-11

	// SecondsPerDay converts orbital periods from days.
	SecondsPerDay = 86400.0

	// KelvinOffset is 0 °C expressed in Kelvin.
	KelvinOffset = 273.15

	// gravityScale brings G*M/r^2 with r in km back to m/s^2.
	gravityScale = 1e-6
)

// SurfaceGravity returns surface gravity in m/s^2 for a body of the given
// mass (kg) and diameter (km).
func SurfaceGravity(massKg, diameterKm float64) float64 {
	radius := diameterKm * 0.5
	return GravitationalConstant * massKg / (radius * radius) * gravityScale
}

// OrbitalVelocity is the generator's simplified speed metric: the body's own
// diameter covered once per orbital period, in km/s. It is not orbital
// mechanics.
func OrbitalVelocity(diameterKm, periodDays float64) float64 {
	return diameterKm / (periodDays * SecondsPerDay)
}

// KelvinToCelsius converts a temperature.
func KelvinToCelsius(k float64) float64 {
	return k - KelvinOffset
}

// Ratio returns v/ref, or 0 when ref is 0.
func Ratio(v, ref float64) float64 {
	if ref == 0 {
		return 0
	}
	return v / ref
}
