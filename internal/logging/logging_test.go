package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level)
	l.SetOutput(&buf)
	l.sink.now = func() time.Time { return time.Date(2025, 3, 1, 12, 30, 45, 123000000, time.UTC) }
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"Warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelWarn, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Info("generated %d bodies", 3)

	want := "12:30:45.123 [INFO] generated 3 bodies\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestLogger_WithComponentSharesSink(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	cli := l.With("cli")
	cli.Warn("unknown class %q", "X")

	if !strings.Contains(buf.String(), "[WARN] cli: unknown class \"X\"") {
		t.Errorf("missing component prefix: %q", buf.String())
	}

	l.SetLevel(LevelError)
	buf.Reset()
	cli.Warn("suppressed")
	if buf.Len() != 0 {
		t.Errorf("scoped logger ignored parent level: %q", buf.String())
	}
	if cli.Enabled(LevelWarn) {
		t.Error("Enabled(Warn) should be false at LevelError")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
}
