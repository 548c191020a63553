package clargs

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Decode failure reasons. DecodeError.Err holds one of these (or, for
// duration types, the *DecodeError of the underlying numeral).
var (
	ErrEmptyValue        = errors.New("string cannot be empty")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrOutOfRange        = errors.New("number out of range")
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// DecodeError is returned when a token cannot be converted to the declared
// value type of an option.
type DecodeError struct {
	Token    string // token as given on the command line
	Type     string // pretty name of the target type
	Reason   string // human readable reason
	Position int    // byte offset of the offending character, -1 if not applicable
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to parse %q as type %q: %s", e.Token, e.Type, e.Reason)
}

// Unwrap returns the reason sentinel or the wrapped inner failure.
func (e *DecodeError) Unwrap() error { return e.Err }

func decodeError(token, typeName string, reason error) *DecodeError {
	return &DecodeError{Token: token, Type: typeName, Reason: reason.Error(), Position: -1, Err: reason}
}

func decodeErrorf(token, typeName string, reason error, format string, args ...any) *DecodeError {
	return &DecodeError{Token: token, Type: typeName, Reason: fmt.Sprintf(format, args...), Position: -1, Err: reason}
}

func invalidCharacter(token, typeName string, pos int) *DecodeError {
	return &DecodeError{
		Token:    token,
		Type:     typeName,
		Reason:   fmt.Sprintf("invalid character at position %d", pos),
		Position: pos,
		Err:      ErrInvalidCharacter,
	}
}

// ValueType describes how a command-line token is decoded into a T.
// The zero value is not usable; build one with NewValueType or use the
// predefined types below.
type ValueType[T any] struct {
	name   string
	decode func(token string) (T, error)
}

// NewValueType creates a custom value type. The empty token is rejected
// before fn is called, so fn never sees it.
func NewValueType[T any](name string, fn func(token string) (T, error)) ValueType[T] {
	if name == "" || fn == nil {
		panic("clargs: value type needs a name and a decode function")
	}
	return ValueType[T]{name: name, decode: fn}
}

// Name returns the human readable type name used in errors and help.
func (v ValueType[T]) Name() string { return v.name }

// Decode converts token into a T. Failures are always *DecodeError.
func (v ValueType[T]) Decode(token string) (T, error) {
	var zero T
	if token == "" {
		return zero, decodeError(token, v.name, ErrEmptyValue)
	}
	val, err := v.decode(token)
	if err == nil {
		return val, nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return zero, err
	}
	// custom decoders may return plain errors
	return zero, &DecodeError{Token: token, Type: v.name, Reason: err.Error(), Position: -1, Err: err}
}

// Predefined value types.
var (
	Int   = signedType[int](strconv.IntSize)
	Int8  = signedType[int8](8)
	Int16 = signedType[int16](16)
	Int32 = signedType[int32](32)
	Int64 = signedType[int64](64)

	Uint   = unsignedType[uint](strconv.IntSize)
	Uint8  = unsignedType[uint8](8)
	Uint16 = unsignedType[uint16](16)
	Uint32 = unsignedType[uint32](32)
	Uint64 = unsignedType[uint64](64)

	Float32 = floatType[float32](32)
	Float64 = floatType[float64](64)

	Bool   = ValueType[bool]{name: "bool", decode: decodeBool}
	Char   = ValueType[rune]{name: "char", decode: decodeChar}
	String = ValueType[string]{name: "string", decode: func(s string) (string, error) { return s, nil }}
	Path   = ValueType[string]{name: "filesystem path", decode: decodePath}
)

// Predefined duration types. The numeral is an unsigned 64-bit integer,
// matching how durations are usually given on the command line.
var (
	Nanoseconds  = Duration(Uint64, time.Nanosecond, "nanoseconds")
	Microseconds = Duration(Uint64, time.Microsecond, "microseconds")
	Milliseconds = Duration(Uint64, time.Millisecond, "milliseconds")
	Seconds      = Duration(Uint64, time.Second, "seconds")
	Minutes      = Duration(Uint64, time.Minute, "minutes")
	Hours        = Duration(Uint64, time.Hour, "hours")
	Days         = Duration(Uint64, 24*time.Hour, "days")
	Weeks        = Duration(Uint64, 7*24*time.Hour, "weeks")
)
