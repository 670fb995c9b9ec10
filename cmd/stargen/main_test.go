package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/stargen/internal/celestial"
	"github.com/litescript/stargen/internal/config"
	"github.com/litescript/stargen/internal/logging"
)

const testSeed = "6f1c2a7e-3b5d-4c8a-9e0f-1a2b3c4d5e6f"

// clearEnv blanks every STARGEN_* variable so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvConfig, config.EnvName, config.EnvLogLevel, config.EnvColor,
		config.EnvFormat, config.EnvStrict, config.EnvSeed,
	} {
		t.Setenv(name, "")
	}
}

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	clearEnv(t)
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no body", nil, 2},
		{"unknown flag", []string{"--bogus"}, 2},
		{"extra argument", []string{"-b", "star", "extra"}, 2},
		{"bad diameter", []string{"-b", "planet", "-d", "abc"}, 2},
		{"negative diameter", []string{"-b", "planet", "-d", "-5"}, 2},
		{"zero temperature", []string{"-b", "star", "--temperature", "0"}, 2},
		{"bad format", []string{"-b", "star", "--format", "yaml"}, 2},
		{"bad color", []string{"-b", "star", "--color", "sometimes"}, 2},
		{"bad seed", []string{"-b", "star", "--seed", "not-a-uuid"}, 2},
		{"strict class", []string{"-b", "star", "-c", "X", "--strict"}, 2},
		{"strict body", []string{"-b", "comet", "--strict"}, 2},
		{"missing config", []string{"-b", "star", "--config", "/nonexistent/stargen.yaml"}, 1},
		{"star", []string{"-b", "star"}, 0},
		{"version", []string{"--version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runArgs(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit = %d, want %d (stderr: %s)", code, tt.want, stderr)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runArgs(t, "--version")
	if code != 0 || !strings.HasPrefix(stdout, "stargen v") {
		t.Errorf("exit %d, stdout %q", code, stdout)
	}
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		code, stdout, stderr := runArgs(t, arg)
		if code != 0 {
			t.Errorf("%s: exit = %d, want 0", arg, code)
		}
		if stdout != "" {
			t.Errorf("%s: stdout = %q, want empty", arg, stdout)
		}
		if strings.Contains(stderr, "Error:") {
			t.Errorf("%s: stderr has error line: %q", arg, stderr)
		}
		if !strings.Contains(stderr, "-body") {
			t.Errorf("%s: usage not printed: %q", arg, stderr)
		}
	}
}

func TestRun_TextReports(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-b", "star", "-n", "Vega", "-c", "A"}, []string{"Vega:", "-- Star Class: A", "-- White star", "█"}},
		{[]string{"--body", "p", "--type", "gg"}, []string{"NONAME:", "-- Planet Type: GASGIANT", "of earth"}},
		{[]string{"-b", "sat", "-n", "Phobos"}, []string{"Phobos:", "-- Orbital Distance:", "of luna"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, stdout, stderr := runArgs(t, append(tt.args, "--color", "never")...)
			if code != 0 {
				t.Fatalf("exit = %d, stderr: %s", code, stderr)
			}
			for _, w := range tt.want {
				if !strings.Contains(stdout, w) {
					t.Errorf("output missing %q:\n%s", w, stdout)
				}
			}
			if strings.Contains(stdout, "\x1b[") {
				t.Error("--color never output contains escape sequences")
			}
		})
	}
}

func TestRun_FallbackWarns(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-b", "star", "-c", "X", "--color", "never")
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "[WARN]") || !strings.Contains(stderr, `"X"`) {
		t.Errorf("stderr = %q, want a warning naming X", stderr)
	}
	if !strings.Contains(stdout, "-- Star Class: G") {
		t.Errorf("expected G fallback, got:\n%s", stdout)
	}
}

func TestRun_SeededJSONIsReproducible(t *testing.T) {
	args := []string{"-b", "planet", "--format", "json", "--seed", testSeed}

	code, first, stderr := runArgs(t, args...)
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	_, second, _ := runArgs(t, args...)
	if first != second {
		t.Errorf("seeded runs differ:\n%s\n%s", first, second)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(first), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, first)
	}
	if doc["kind"] != "planet" || doc["seed"] != testSeed {
		t.Errorf("kind/seed = %v/%v", doc["kind"], doc["seed"])
	}
	if _, ok := doc["planet"].(map[string]any); !ok {
		t.Errorf("missing planet object: %v", doc)
	}
}

func TestRun_NewSeedIsPrinted(t *testing.T) {
	code, _, stderr := runArgs(t, "-b", "sat", "--seed", "new", "--color", "never")
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stderr, "Seed: ") {
		t.Errorf("stderr = %q, want Seed line", stderr)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stargen.yaml")
	if err := os.WriteFile(path, []byte("name: Arrakis\nformat: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runArgs(t, "-b", "planet", "--config", path)
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, `"name": "Arrakis"`) {
		t.Errorf("config name/format not applied:\n%s", stdout)
	}

	// Flags override the file.
	code, stdout, _ = runArgs(t, "-b", "planet", "--config", path, "-n", "Dune", "--format", "text", "--color", "never")
	if code != 0 || !strings.Contains(stdout, "Dune:") {
		t.Errorf("exit %d, flags did not override config:\n%s", code, stdout)
	}
}

func TestResolve(t *testing.T) {
	logger := logging.Discard()

	f, err := parseFlags([]string{"-b", "planet", "-t", "ice", "-d", "50000"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	opts, err := f.resolve(config.Default(), logger)
	if err != nil {
		t.Fatal(err)
	}
	req := opts.request
	if req.Kind != celestial.KindPlanet {
		t.Errorf("Kind = %v, want planet", req.Kind)
	}
	if req.PlanetType == nil || *req.PlanetType != celestial.IceGiant {
		t.Errorf("PlanetType = %v, want ICEGIANT", req.PlanetType)
	}
	if req.Diameter == nil || *req.Diameter != 50000 {
		t.Errorf("Diameter = %v, want 50000", req.Diameter)
	}
	if req.Temp != nil || req.Class != nil {
		t.Errorf("unexpected constraints: %+v", req)
	}
	if req.Name != "NONAME" {
		t.Errorf("Name = %q, want NONAME", req.Name)
	}
}

func TestResolve_InteractiveNeedsNoBody(t *testing.T) {
	f, err := parseFlags([]string{"-i"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	opts, err := f.resolve(config.Default(), logging.Discard())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !opts.interactive {
		t.Error("interactive not set")
	}
}

func TestWarnIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.LevelWarn)
	logger.SetOutput(&buf)

	class := celestial.ClassK
	d := 1e6
	warnIgnored(celestial.Request{Kind: celestial.KindStar, Class: &class, Diameter: &d}, logger)
	if !strings.Contains(buf.String(), "ignoring --diameter") {
		t.Errorf("log = %q", buf.String())
	}

	buf.Reset()
	warnIgnored(celestial.Request{Kind: celestial.KindSatellite, Diameter: &d}, logger)
	if !strings.Contains(buf.String(), "satellites take no constraints") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestOptionalFloat(t *testing.T) {
	var f optionalFloat
	if f.ptr() != nil || f.String() != "" {
		t.Error("unset value should be nil/empty")
	}
	if err := f.Set("1.5e3"); err != nil {
		t.Fatal(err)
	}
	if p := f.ptr(); p == nil || *p != 1500 {
		t.Errorf("ptr = %v, want 1500", p)
	}
	if err := f.Set("x"); err == nil {
		t.Error("expected error for non-number")
	}
}
