// Command stargen generates random stars, planets and satellites and reports
// them against the Sun, the Earth and the Moon.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/litescript/stargen/internal/celestial"
	"github.com/litescript/stargen/internal/config"
	"github.com/litescript/stargen/internal/logging"
	"github.com/litescript/stargen/internal/report"
	"github.com/litescript/stargen/internal/rng"
	"github.com/litescript/stargen/internal/ui"
	"github.com/litescript/stargen/internal/version"
)

const dotEnvPath = ".env"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	err := execute(args, stdout, stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Run 'stargen -h' for usage.")
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.version {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	dotEnvLoaded, err := config.LoadDotEnv(dotEnvPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	cfg, err = f.applyFlags(cfg)
	if err != nil {
		return err
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level).With("cli")
	logger.SetOutput(stderr)
	if !ok {
		logger.Warn("unknown log level %q, using %s", cfg.LogLevel, level)
	}
	if dotEnvLoaded {
		logger.Debug("loaded %s", dotEnvPath)
	}

	opts, err := f.resolve(cfg, logger)
	if err != nil {
		return err
	}

	src, seed, err := seedSource(cfg.Seed)
	if err != nil {
		return err
	}
	if seed != "" {
		logger.Info("seed %s", seed)
		if strings.EqualFold(strings.TrimSpace(cfg.Seed), "new") {
			fmt.Fprintf(stderr, "Seed: %s\n", seed)
		}
	}

	gen := celestial.NewGenerator(src)
	renderer := report.NewRenderer(useColor(cfg.Color, stdout))

	if opts.interactive {
		if cfg.Format == config.FormatJSON {
			logger.Warn("--format json is ignored in interactive mode")
		}
		kind := opts.request.Kind
		if !f.set["body"] {
			kind = celestial.KindStar
		}
		return ui.Run(ui.New(gen, renderer, logger, cfg.Name, kind))
	}

	body := gen.Generate(opts.request)
	logger.Debug("generated %s %q", body.Kind(), body.Title())

	if cfg.Format == config.FormatJSON {
		export, err := report.ExportBody(body)
		if err != nil {
			return err
		}
		export.Seed = seed
		if err := export.WriteJSON(stdout); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		return nil
	}

	if err := renderer.Write(stdout, body); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// loadConfig reads the YAML file named by --config or STARGEN_CONFIG, or
// falls back to defaults plus environment.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}

// seedSource returns the random source for seed and the UUID it used, empty
// for unseeded runs.
func seedSource(seed string) (rng.Source, string, error) {
	if seed == "" {
		return rng.Default(), "", nil
	}
	id, err := rng.ParseSeed(seed)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errUsage, err)
	}
	return rng.FromUUID(id), id.String(), nil
}

// useColor resolves the color mode. Auto enables color only when w is a
// terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
