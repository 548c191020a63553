package clargs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dzonerzy/go-clargs/internal/fuzzy"
)

// ErrorType represents the category of a parse failure.
// Categories drive suggestion logic and exit-code mapping (see ExitCode).
type ErrorType string

const (
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeDuplicate       ErrorType = "duplicate_argument"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeGroupViolation  ErrorType = "group_violation"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
)

// ErrNotParsed is reported by debug builds when results are queried before
// a successful Parse.
var ErrNotParsed = errors.New("clargs: parser queried before a successful parse")

// ParseError describes the single error that stopped a parse.
type ParseError struct {
	Type       ErrorType
	Message    string
	Token      string // offending command-line token, if any
	Identifier string // canonical identifier of the descriptor involved
	Group      string // group name for group violations
	Suggestion string // closest known identifier for unknown tokens
	Err        error  // wrapped cause, a *DecodeError for invalid values
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// IsParseError reports whether err (or anything it wraps) is a *ParseError of
// the given type.
func IsParseError(err error, typ ErrorType) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Type == typ
}

func unknownOptionError(token string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeUnknownOption,
		Message: fmt.Sprintf("unknown option %q", token),
		Token:   token,
	}
}

func duplicateError(token string, d Descriptor) *ParseError {
	canonical := d.Identifiers()[0]
	msg := fmt.Sprintf("duplicate argument %q", token)
	if token != canonical {
		msg += " (" + canonical + ")"
	}
	return &ParseError{
		Type:       ErrorTypeDuplicate,
		Message:    msg,
		Token:      token,
		Identifier: canonical,
	}
}

func missingValueError(token string, d Descriptor) *ParseError {
	return &ParseError{
		Type:       ErrorTypeMissingValue,
		Message:    fmt.Sprintf("expected value for option %q", token),
		Token:      token,
		Identifier: d.Identifiers()[0],
	}
}

func invalidValueError(token string, d Descriptor, cause error) *ParseError {
	return &ParseError{
		Type:       ErrorTypeInvalidValue,
		Message:    fmt.Sprintf("invalid value for option %q: %v", token, cause),
		Token:      token,
		Identifier: d.Identifiers()[0],
		Err:        cause,
	}
}

func missingRequiredError(d Descriptor) *ParseError {
	ids := d.Identifiers()
	return &ParseError{
		Type:       ErrorTypeMissingRequired,
		Message:    fmt.Sprintf("expected required option %q", strings.Join(ids, ", ")),
		Identifier: ids[0],
	}
}

// suggest fills in Suggestion for unknown-option errors using the
// identifiers known to the parser.
func (e *ParseError) suggest(candidates []string, maxDistance int) {
	if e.Type != ErrorTypeUnknownOption || maxDistance <= 0 {
		return
	}
	e.Suggestion = fuzzy.FindBestIdentifier(e.Token, candidates, maxDistance)
}
