package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/litescript/stargen/internal/celestial"
	"github.com/litescript/stargen/internal/config"
	"github.com/litescript/stargen/internal/logging"
)

// errUsage marks errors that should exit with status 2.
var errUsage = errors.New("usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// optionalFloat is a flag.Value that records whether it was set.
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	f.value = v
	f.set = true
	return nil
}

func (f *optionalFloat) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// flags holds the raw command line.
type flags struct {
	body        string
	name        string
	class       string
	planetType  string
	diameter    optionalFloat
	temperature optionalFloat
	seed        string
	format      string
	color       string
	logLevel    string
	configPath  string
	strict      bool
	interactive bool
	version     bool

	// set records which flags appeared, by long name.
	set map[string]bool
}

// shorthands maps short flag names to their long form.
var shorthands = map[string]string{
	"b": "body",
	"n": "name",
	"c": "class",
	"t": "type",
	"d": "diameter",
	"i": "interactive",
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("stargen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.body, "body", "", "Body to generate: star|s, planet|p, satellite|sat (required)")
	fs.StringVar(&f.body, "b", "", "Shorthand for --body")
	fs.StringVar(&f.name, "name", "", "Name of the body (default from config, NONAME)")
	fs.StringVar(&f.name, "n", "", "Shorthand for --name")
	fs.StringVar(&f.class, "class", "", "Harvard spectral class of the star: O, B, A, F, G, K, M")
	fs.StringVar(&f.class, "c", "", "Shorthand for --class")
	fs.StringVar(&f.planetType, "type", "", "Planet type: terrestrial|t, gasgiant|gg, icegiant|ig")
	fs.StringVar(&f.planetType, "t", "", "Shorthand for --type")
	fs.Var(&f.diameter, "diameter", "Average diameter in km, ignored for stars with --class")
	fs.Var(&f.diameter, "d", "Shorthand for --diameter")
	fs.Var(&f.temperature, "temperature", "Surface temperature of the star in Kelvin, ignored with --class or --diameter")
	fs.StringVar(&f.seed, "seed", "", "UUID seed for reproducible output, or \"new\"")
	fs.StringVar(&f.format, "format", "", "Output format: text, json")
	fs.StringVar(&f.color, "color", "", "Color output: auto, always, never")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	fs.BoolVar(&f.strict, "strict", false, "Reject unrecognized body, class or type instead of defaulting")
	fs.BoolVar(&f.interactive, "interactive", false, "Browse generated bodies in an interactive terminal UI")
	fs.BoolVar(&f.interactive, "i", false, "Shorthand for --interactive")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) {
		name := fl.Name
		if long, ok := shorthands[name]; ok {
			name = long
		}
		f.set[name] = true
	})
	return f, nil
}

// options is the fully resolved invocation.
type options struct {
	cfg         config.Config
	request     celestial.Request
	interactive bool
}

// applyFlags overlays explicitly set flags onto cfg.
func (f *flags) applyFlags(cfg config.Config) (config.Config, error) {
	if f.set["name"] {
		cfg.Name = f.name
	}
	if f.set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	if f.set["color"] {
		cfg.Color = f.color
	}
	if f.set["format"] {
		cfg.Format = f.format
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["strict"] {
		cfg.Strict = f.strict
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	return cfg, nil
}

// resolve turns flags and config into a generation request. Unrecognized enum
// text falls back to its default with a warning, or fails under strict.
func (f *flags) resolve(cfg config.Config, logger *logging.Logger) (options, error) {
	opts := options{cfg: cfg, interactive: f.interactive}

	if !f.set["body"] && !f.interactive {
		return opts, usageErrorf("--body is required")
	}

	fallback := func(flagName, input, used string) error {
		if cfg.Strict {
			return usageErrorf("unrecognized --%s %q", flagName, input)
		}
		logger.Warn("unrecognized --%s %q, using %s", flagName, input, used)
		return nil
	}

	req := celestial.Request{Name: cfg.Name}

	if f.set["body"] {
		kind, ok := celestial.ParseKind(f.body)
		if !ok {
			if err := fallback("body", f.body, kind.String()); err != nil {
				return opts, err
			}
		}
		req.Kind = kind
	}

	if f.set["class"] {
		class, ok := celestial.ParseStarClass(f.class)
		if !ok {
			if err := fallback("class", f.class, class.String()); err != nil {
				return opts, err
			}
		}
		req.Class = &class
	}

	if f.set["type"] {
		pt, ok := celestial.ParsePlanetType(f.planetType)
		if !ok {
			if err := fallback("type", f.planetType, pt.String()); err != nil {
				return opts, err
			}
		}
		req.PlanetType = &pt
	}

	if err := checkPositive("diameter", f.diameter); err != nil {
		return opts, err
	}
	if err := checkPositive("temperature", f.temperature); err != nil {
		return opts, err
	}
	req.Diameter = f.diameter.ptr()
	req.Temp = f.temperature.ptr()

	warnIgnored(req, logger)

	opts.request = req
	return opts, nil
}

func checkPositive(name string, v optionalFloat) error {
	if !v.set {
		return nil
	}
	if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value <= 0 {
		return usageErrorf("--%s must be a positive number, got %v", name, v.value)
	}
	return nil
}

// warnIgnored logs constraints that the selected body will not use.
func warnIgnored(req celestial.Request, logger *logging.Logger) {
	switch req.Kind {
	case celestial.KindStar:
		if req.PlanetType != nil {
			logger.Warn("--type applies to planets only, ignoring")
		}
		if req.Class != nil && (req.Diameter != nil || req.Temp != nil) {
			logger.Warn("--class given, ignoring --diameter/--temperature")
		} else if req.Diameter != nil && req.Temp != nil {
			logger.Warn("--diameter given, ignoring --temperature")
		}
	case celestial.KindPlanet:
		if req.Class != nil {
			logger.Warn("--class applies to stars only, ignoring")
		}
		if req.Temp != nil {
			logger.Warn("--temperature applies to stars only, ignoring")
		}
	case celestial.KindSatellite:
		if req.Class != nil || req.PlanetType != nil || req.Diameter != nil || req.Temp != nil {
			logger.Warn("satellites take no constraints, ignoring them")
		}
	}
}
