package clargsio

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnvFallbackSize(t *testing.T) {
	t.Setenv("COLUMNS", "101")
	t.Setenv("LINES", "55")
	m := New().WithOut(&bytes.Buffer{})
	if m.Width() != 101 || m.Height() != 55 {
		t.Fatalf("want 101x55, got %dx%d", m.Width(), m.Height())
	}
}

func TestDefaultSizeWhenNotATerminal(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "garbage")
	m := New().WithOut(&bytes.Buffer{})
	if m.Width() != 80 || m.Height() != 24 {
		t.Fatalf("want 80x24, got %dx%d", m.Width(), m.Height())
	}
}

func TestColorOverrides(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	m := New().WithOut(&bytes.Buffer{}).ColorAuto()
	if m.SupportsColor() {
		t.Fatalf("NO_COLOR should disable")
	}
	if !m.ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should win over NO_COLOR")
	}
	if m.NoColor().SupportsColor() {
		t.Fatalf("NoColor should disable")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !m.ColorAuto().SupportsColor() {
		t.Fatalf("FORCE_COLOR should enable")
	}
}

func TestColorLevels(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ForceColor()
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm")
	if m.ColorLevel() != 1 {
		t.Fatalf("expected basic level 1, got %d", m.ColorLevel())
	}
	t.Setenv("TERM", "xterm-256color")
	if m.ColorLevel() != 2 {
		t.Fatalf("expected 256 level 2, got %d", m.ColorLevel())
	}
	t.Setenv("COLORTERM", "truecolor")
	if m.ColorLevel() != 3 {
		t.Fatalf("expected truecolor level 3, got %d", m.ColorLevel())
	}
	if m.NoColor().ColorLevel() != 0 {
		t.Fatalf("expected level 0 without color")
	}
}

func TestColorize(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ForceColor()
	out := m.Bold("x")
	if !strings.HasPrefix(out, "\x1b[1m") || !strings.Contains(out, "x") {
		t.Fatalf("missing ANSI: %q", out)
	}
	if got := m.NoColor().Bold("x"); got != "x" {
		t.Fatalf("expected plain text without color, got %q", got)
	}
	if got := m.ForceColor().Colorize("x"); got != "x" {
		t.Fatalf("expected plain text without attributes, got %q", got)
	}
}

func TestBufferIsNotATerminal(t *testing.T) {
	m := New().WithIn(strings.NewReader("")).WithOut(&bytes.Buffer{})
	if m.IsTTY() || m.IsInteractive() {
		t.Fatalf("buffers must not be reported as terminals")
	}
	if !m.IsPiped() || !m.IsRedirected() {
		t.Fatalf("buffers should count as piped and redirected")
	}
}
