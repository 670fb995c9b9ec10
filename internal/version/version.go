// Package version provides build and version information.
package version

import "fmt"

// Name is the program name shown in usage and the TUI header.
const Name = "stargen"

// Version is the current application version.
const Version = "0.4.0"

// String returns "stargen vX.Y.Z".
func String() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}

// Milestones:
// 0.4.0 - Interactive browser, YAML/.env config, --strict
// 0.3.0 - Reproducible --seed, JSON output
// 0.2.0 - Star generation from temperature or diameter, fixed-diameter planets
// 0.1.0 - Initial release: random stars, planets and satellites with text reports
