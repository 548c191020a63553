package clargs

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	clargsio "github.com/dzonerzy/go-clargs/io"
)

var (
	testVerbose = NewFlag("--verbose,-v", "Enable verbose output")
	testFile    = NewOption("--file", "<path>", "Input file", Path).Required()
	testPort    = NewOption("--port", "<number>", "Port to listen on", Uint16)
)

type testCLI struct {
	p       *Parser
	verbose *FlagValue
	file    *Slot[string]
	port    *Slot[uint16]
}

func newTestCLI(requireFile bool) *testCLI {
	p := New()
	c := &testCLI{p: p}
	c.verbose = p.Flag(testVerbose)
	if requireFile {
		c.file = AddOption(p, testFile)
	} else {
		c.file = AddOption(p, NewOption("--file", "<path>", "Input file", Path))
	}
	c.port = AddOption(p, testPort)
	return c
}

func parseErrorOf(t *testing.T, err error) *ParseError {
	t.Helper()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	return pe
}

// TestParseFlagAlias tests that a flag is matched by its alias
func TestParseFlagAlias(t *testing.T) {
	c := newTestCLI(false)
	if err := c.p.Parse([]string{"prog", "-v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.verbose.Present() {
		t.Error("verbose should be present")
	}
	if !c.p.Has(testVerbose) {
		t.Error("Has(verbose) should be true")
	}
	if c.p.Program() != "prog" {
		t.Errorf("program = %q, want prog", c.p.Program())
	}
}

// TestParseFlagTakesNoValue tests that a flag is set without consuming the
// token after it
func TestParseFlagTakesNoValue(t *testing.T) {
	c := newTestCLI(false)
	err := c.p.Parse([]string{"prog", "-v", "80"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeUnknownOption || pe.Token != "80" {
		t.Fatalf("expected unknown option 80, got %v", err)
	}

	if err := c.p.Parse([]string{"prog", "--verbose", "--port", "80"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.verbose.Present() || c.port.Value() != 80 {
		t.Errorf("got verbose=%v port=%d", c.verbose.Present(), c.port.Value())
	}
}

// TestParseNoArguments tests that an absent flag reads as false
func TestParseNoArguments(t *testing.T) {
	c := newTestCLI(false)
	if err := c.p.Parse([]string{"prog"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.verbose.Present() {
		t.Error("verbose should be absent")
	}
	if _, ok := c.port.Get(); ok {
		t.Error("port should be absent")
	}
}

// TestParseRequiredPath tests that a required path option is stored
func TestParseRequiredPath(t *testing.T) {
	c := newTestCLI(true)
	if err := c.p.Parse([]string{"prog", "--file", "data.txt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := c.file.Get()
	if !ok || v != "data.txt" {
		t.Errorf("file = %q, %v; want data.txt", v, ok)
	}
}

// TestParseMissingValue tests an option at the end of the command line
func TestParseMissingValue(t *testing.T) {
	c := newTestCLI(true)
	err := c.p.Parse([]string{"prog", "--file"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeMissingValue {
		t.Errorf("type = %s, want %s", pe.Type, ErrorTypeMissingValue)
	}
	if !strings.Contains(pe.Message, "expected value for option") {
		t.Errorf("unexpected message %q", pe.Message)
	}
	if pe.Identifier != "--file" {
		t.Errorf("identifier = %q, want --file", pe.Identifier)
	}
}

// TestParseInvalidValue tests that decode failures are wrapped with the option
func TestParseInvalidValue(t *testing.T) {
	c := newTestCLI(false)
	err := c.p.Parse([]string{"prog", "--port", "abc"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeInvalidValue {
		t.Fatalf("type = %s, want %s", pe.Type, ErrorTypeInvalidValue)
	}
	if pe.Identifier != "--port" {
		t.Errorf("identifier = %q, want --port", pe.Identifier)
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected wrapped *DecodeError, got %v", err)
	}
	if de.Token != "abc" || de.Type != "16-bit unsigned integer" || de.Reason != "invalid format" {
		t.Errorf("unexpected decode error %+v", de)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("errors.Is should reach ErrInvalidFormat")
	}
	want := `invalid value for option "--port": unable to parse "abc" as type "16-bit unsigned integer": invalid format`
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

// TestParseDuplicate tests that a repeated flag is rejected
func TestParseDuplicate(t *testing.T) {
	c := newTestCLI(false)
	err := c.p.Parse([]string{"prog", "-v", "-v"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeDuplicate {
		t.Fatalf("type = %s, want %s", pe.Type, ErrorTypeDuplicate)
	}
	if pe.Message != `duplicate argument "-v" (--verbose)` {
		t.Errorf("unexpected message %q", pe.Message)
	}
	if c.p.State() != StateFailed {
		t.Errorf("state = %s, want failed", c.p.State())
	}
}

// TestParseDuplicateAnyPosition tests duplicates across aliases and positions
func TestParseDuplicateAnyPosition(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"alias then canonical", []string{"prog", "-v", "--port", "80", "--verbose"}},
		{"canonical twice", []string{"prog", "--verbose", "--verbose"}},
		{"option twice", []string{"prog", "--port", "80", "-v", "--port", "81"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(false)
			err := c.p.Parse(tt.argv)
			if !IsParseError(err, ErrorTypeDuplicate) {
				t.Fatalf("expected duplicate error, got %v", err)
			}
		})
	}
}

func TestParseUnknownOption(t *testing.T) {
	c := newTestCLI(false)
	err := c.p.Parse([]string{"prog", "--verbos"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeUnknownOption {
		t.Fatalf("type = %s, want %s", pe.Type, ErrorTypeUnknownOption)
	}
	if pe.Token != "--verbos" || pe.Message != `unknown option "--verbos"` {
		t.Errorf("unexpected error %+v", pe)
	}
	if pe.Suggestion != "--verbose" {
		t.Errorf("suggestion = %q, want --verbose", pe.Suggestion)
	}
}

func TestParseUnknownOptionWithoutSuggestions(t *testing.T) {
	c := newTestCLI(false)
	c.p.SuggestOptions(0)
	pe := parseErrorOf(t, c.p.Parse([]string{"prog", "--verbos"}))
	if pe.Suggestion != "" {
		t.Errorf("suggestions disabled, got %q", pe.Suggestion)
	}
}

// TestParsePositionalRejected tests that bare words are unknown options
func TestParsePositionalRejected(t *testing.T) {
	c := newTestCLI(false)
	if err := c.p.Parse([]string{"prog", "data.txt"}); !IsParseError(err, ErrorTypeUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}
}

// TestParseMissingRequired tests required-option enforcement
func TestParseMissingRequired(t *testing.T) {
	c := newTestCLI(true)
	err := c.p.Parse([]string{"prog", "-v", "--port", "8080"})
	pe := parseErrorOf(t, err)
	if pe.Type != ErrorTypeMissingRequired {
		t.Fatalf("type = %s, want %s", pe.Type, ErrorTypeMissingRequired)
	}
	if pe.Identifier != "--file" || pe.Message != `expected required option "--file"` {
		t.Errorf("unexpected error %+v", pe)
	}
}

// TestParseMissingRequiredOrder tests that the first missing required option
// in declaration order is reported
func TestParseMissingRequiredOrder(t *testing.T) {
	p := New()
	AddOption(p, NewOption("--user,-u", "", "user", String).Required())
	AddOption(p, NewOption("--host", "", "host", String).Required())

	pe := parseErrorOf(t, p.Parse([]string{"prog"}))
	if pe.Identifier != "--user" {
		t.Errorf("identifier = %q, want --user", pe.Identifier)
	}
	if pe.Message != `expected required option "--user, -u"` {
		t.Errorf("unexpected message %q", pe.Message)
	}

	pe = parseErrorOf(t, p.Parse([]string{"prog", "-u", "root"}))
	if pe.Identifier != "--host" {
		t.Errorf("identifier = %q, want --host", pe.Identifier)
	}
}

// TestParseValueLooksLikeIdentifier tests that the token after an option is
// always consumed as its value
func TestParseValueLooksLikeIdentifier(t *testing.T) {
	c := newTestCLI(false)
	if err := c.p.Parse([]string{"prog", "--file", "--verbose"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := c.file.Value(); v != "--verbose" {
		t.Errorf("file = %q, want --verbose", v)
	}
	if c.verbose.Present() {
		t.Error("--verbose was consumed as a value")
	}
}

func TestParseFirstMatchWins(t *testing.T) {
	p := New()
	first := p.Flag(NewFlag("--quiet,-q", "quiet"))
	second := AddOption(p, NewOption("--query,-q", "", "query", String))

	if err := p.Parse([]string{"prog", "-q"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Present() || second.IsSet() {
		t.Error("-q should match the first declared descriptor")
	}
}

func TestParseEmptyArgv(t *testing.T) {
	p := New()
	if err := p.Parse(nil); !IsParseError(err, ErrorTypeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

// TestParseFailureLeavesNoPartialState tests that values stored before an
// error are discarded
func TestParseFailureLeavesNoPartialState(t *testing.T) {
	c := newTestCLI(false)
	err := c.p.Parse([]string{"prog", "-v", "--port", "80", "--bogus"})
	if err == nil {
		t.Fatal("expected error")
	}
	if c.p.store.IsSet(testVerbose) || c.p.store.IsSet(testPort) {
		t.Error("no value from a failed parse should survive")
	}
}

// TestParseAgain tests that a second Parse starts from a clean store
func TestParseAgain(t *testing.T) {
	c := newTestCLI(false)
	if err := c.p.Parse([]string{"prog", "-v", "--port", "80"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.p.Parse([]string{"other", "--port", "81"}); err != nil {
		t.Fatalf("second parse should not see duplicates: %v", err)
	}
	if c.verbose.Present() {
		t.Error("verbose leaked from the first parse")
	}
	if c.port.Value() != 81 || c.p.Program() != "other" {
		t.Errorf("unexpected results %d %q", c.port.Value(), c.p.Program())
	}

	c.p.Reset()
	if c.p.State() != StateInit {
		t.Errorf("state = %s, want init", c.p.State())
	}
}

func TestParseAllValueTypes(t *testing.T) {
	p := New()
	i := AddOption(p, NewOption("--int", "", "", Int))
	f := AddOption(p, NewOption("--float", "", "", Float64))
	b := AddOption(p, NewOption("--bool", "", "", Bool))
	ch := AddOption(p, NewOption("--char", "", "", Char))
	s := AddOption(p, NewOption("--string", "", "", String))
	d := AddOption(p, NewOption("--timeout", "", "", Seconds))
	e := AddOption(p, NewOption("--level", "", "", Enum("low", "high")))

	err := p.Parse([]string{"prog",
		"--int", "-42",
		"--float", "2.5",
		"--bool", "yes",
		"--char", "x",
		"--string", "hello",
		"--timeout", "30",
		"--level", "high",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Value() != -42 || f.Value() != 2.5 || !b.Value() || ch.Value() != 'x' ||
		s.Value() != "hello" || d.Value().Seconds() != 30 || e.Value() != "high" {
		t.Errorf("unexpected values: %d %v %v %q %q %v %q",
			i.Value(), f.Value(), b.Value(), ch.Value(), s.Value(), d.Value(), e.Value())
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	p := New()
	p.Flag(testVerbose)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	p.Flag(testVerbose)
}

func TestDescriptors(t *testing.T) {
	c := newTestCLI(false)
	ds := c.p.Descriptors()
	if len(ds) != 3 || ds[0] != Descriptor(testVerbose) || ds[2] != Descriptor(testPort) {
		t.Errorf("unexpected descriptors %v", ds)
	}
}

func TestParserTrace(t *testing.T) {
	var out bytes.Buffer
	logger := clargsio.NewLogger(clargsio.New().WithOut(&out).NoColor()).
		WithFormat(clargsio.LogFormatPlain).
		WithLevel(clargsio.LevelDebug)

	c := newTestCLI(false)
	c.p.WithLogger(logger)
	if err := c.p.Parse([]string{"prog", "-v", "--port", "80"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "flag --verbose set by \"-v\"\noption --port = \"80\"\n"
	if out.String() != want {
		t.Errorf("trace = %q, want %q", out.String(), want)
	}
}
