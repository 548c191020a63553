package clargs

import (
	"errors"
	"fmt"

	clargsio "github.com/dzonerzy/go-clargs/io"
)

// ExitError requests a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

// DefaultExitCodes returns the conventional exit codes.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps errors to process exit codes.
type ExitCodeManager struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the default parse error mapping:
// structural errors are misuse, undecodable values are validation errors.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		byType:   make(map[ErrorType]int),
		defaults: DefaultExitCodes(),
	}
	m.prewire()
	return m
}

func (m *ExitCodeManager) prewire() {
	for _, t := range []ErrorType{
		ErrorTypeUnknownOption,
		ErrorTypeDuplicate,
		ErrorTypeMissingValue,
		ErrorTypeMissingRequired,
		ErrorTypeGroupViolation,
		ErrorTypeInvalidArgument,
	} {
		m.byType[t] = m.defaults.MisusageError
	}
	m.byType[ErrorTypeInvalidValue] = m.defaults.ValidationError
}

// Define overrides the exit code for a parse error category.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	m.byType[typ] = code
	return m
}

// Default replaces the default codes and re-derives the category mapping.
// Call it before Define.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	m.byType = make(map[ErrorType]int)
	m.prewire()
	return m
}

// Resolve converts err to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping
//  3. Default codes
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := m.byType[pe.Type]; ok {
			return code
		}
	}
	return m.defaults.GeneralError
}

var defaultExitCodes = NewExitCodeManager()

// ExitCode maps err to an exit code using the default mapping.
func ExitCode(err error) int {
	return defaultExitCodes.Resolve(err)
}

// Report writes err, a suggestion when one is known, and the usage line to
// standard error, and returns the exit code for err. With a logger
// configured, the error and suggestion are written through it. A nil error
// writes nothing.
func (p *Parser) Report(err error) int {
	if err == nil {
		return ExitCode(nil)
	}
	var suggestion string
	var pe *ParseError
	if errors.As(err, &pe) {
		suggestion = pe.Suggestion
	}

	if p.logger != nil {
		p.logger.Error("%s", err)
		if suggestion != "" {
			p.logger.Warning("did you mean %q?", suggestion)
		}
		fmt.Fprintln(p.logger.IO().Err(), p.Usage())
		return ExitCode(err)
	}

	io := p.ioManager()
	theme := clargsio.DefaultTheme()
	w := io.Err()
	fmt.Fprintf(w, "%s %s\n", io.Colorize("Error:", theme.Error...), err.Error())
	if suggestion != "" {
		fmt.Fprintln(w, io.Colorize(fmt.Sprintf("Did you mean %q?", suggestion), theme.Warning...))
	}
	fmt.Fprintln(w, p.Usage())
	return ExitCode(err)
}

func (p *Parser) ioManager() *clargsio.IOManager {
	if p.io == nil {
		p.io = clargsio.New()
	}
	return p.io
}
