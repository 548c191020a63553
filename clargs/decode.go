package clargs

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Numeric is the set of representation types accepted by Duration.
type Numeric interface {
	signedInteger | unsignedInteger | float
}

func signedType[T signedInteger](bits int) ValueType[T] {
	name := fmt.Sprintf("%d-bit signed integer", bits)
	return ValueType[T]{name: name, decode: func(token string) (T, error) {
		start := 0
		if token[0] == '-' {
			start = 1
		}
		end := scanDigits(token, start, 10)
		if end == start {
			return 0, decodeError(token, name, ErrInvalidFormat)
		}
		n, err := strconv.ParseInt(token[:end], 10, bits)
		if err != nil {
			return 0, numError(token, name, err)
		}
		if end != len(token) {
			return 0, invalidCharacter(token, name, end)
		}
		return T(n), nil
	}}
}

func unsignedType[T unsignedInteger](bits int) ValueType[T] {
	name := fmt.Sprintf("%d-bit unsigned integer", bits)
	return ValueType[T]{name: name, decode: func(token string) (T, error) {
		start, base := 0, 10
		if len(token) >= 2 && token[0] == '0' {
			switch token[1] {
			case 'x', 'X':
				start, base = 2, 16
			case 'b', 'B':
				start, base = 2, 2
			}
		}
		end := scanDigits(token, start, base)
		if end == start {
			return 0, decodeError(token, name, ErrInvalidFormat)
		}
		n, err := strconv.ParseUint(token[start:end], base, bits)
		if err != nil {
			return 0, numError(token, name, err)
		}
		if end != len(token) {
			return 0, invalidCharacter(token, name, end)
		}
		return T(n), nil
	}}
}

func floatType[T float](bits int) ValueType[T] {
	name := fmt.Sprintf("%d-bit floating-point number", bits)
	return ValueType[T]{name: name, decode: func(token string) (T, error) {
		if hasPrefixFold(token, "0x") {
			return 0, decodeErrorf(token, name, ErrUnsupportedFormat, "hexadecimal formatting is not supported")
		}
		if hasPrefixFold(token, "0b") {
			return 0, decodeErrorf(token, name, ErrUnsupportedFormat, "binary formatting is not supported")
		}
		end := scanFloat(token)
		if end == 0 {
			return 0, decodeError(token, name, ErrInvalidFormat)
		}
		f, err := strconv.ParseFloat(token[:end], bits)
		if err != nil {
			return 0, numError(token, name, err)
		}
		if end != len(token) {
			return 0, invalidCharacter(token, name, end)
		}
		return T(f), nil
	}}
}

func numError(token, name string, err error) *DecodeError {
	if errors.Is(err, strconv.ErrRange) {
		return decodeError(token, name, ErrOutOfRange)
	}
	return decodeError(token, name, ErrInvalidFormat)
}

// scanDigits returns the index of the first byte at or after start that is
// not a digit in the given base.
func scanDigits(s string, start, base int) int {
	i := start
	for ; i < len(s); i++ {
		if digitValue(s[i]) >= base {
			break
		}
	}
	return i
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return math.MaxInt
}

// scanFloat returns the length of the longest prefix of s that is a decimal
// floating-point literal: [-] digits [. digits] [e [+-] digits], or one of
// inf, infinity, nan. It returns 0 when no such prefix exists.
func scanFloat(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for _, special := range []string{"infinity", "inf", "nan"} {
		if hasPrefixFold(s[i:], special) {
			return i + len(special)
		}
	}

	intEnd := scanDigits(s, i, 10)
	mantissa := intEnd > i
	end := intEnd
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1, 10)
		if mantissa || fracEnd > end+1 {
			mantissa = true
			end = fracEnd
		}
	}
	if !mantissa {
		return 0
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := scanDigits(s, j, 10); expEnd > j {
			end = expEnd
		}
	}
	return end
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

var (
	trueWords  = []string{"true", "yes", "y", "1"}
	falseWords = []string{"false", "no", "n", "0"}
)

func decodeBool(token string) (bool, error) {
	for _, w := range trueWords {
		if strings.EqualFold(token, w) {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if strings.EqualFold(token, w) {
			return false, nil
		}
	}
	return false, decodeError(token, "bool", ErrInvalidFormat)
}

func decodeChar(token string) (rune, error) {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size <= 1 {
		return 0, decodeError(token, "char", ErrInvalidFormat)
	}
	if size != len(token) {
		return 0, decodeErrorf(token, "char", ErrInvalidFormat, "expected exactly one character")
	}
	return r, nil
}

// decodePath rewrites forward slashes to the native separator. A backslash
// is an ordinary filename byte outside Windows and is kept as given.
func decodePath(token string) (string, error) {
	return filepath.FromSlash(token), nil
}

// Duration builds a duration value type whose numeral is decoded with rep
// and then scaled by unit. Decode failures carry name as their type and wrap
// the failure reported by rep.
func Duration[R Numeric](rep ValueType[R], unit time.Duration, name string) ValueType[time.Duration] {
	if unit <= 0 {
		panic("clargs: duration unit must be positive")
	}
	return NewValueType(name, func(token string) (time.Duration, error) {
		v, err := rep.Decode(token)
		if err != nil {
			var inner *DecodeError
			errors.As(err, &inner)
			return 0, &DecodeError{
				Token:    token,
				Type:     name,
				Reason:   inner.Error(),
				Position: inner.Position,
				Err:      inner,
			}
		}
		d, ok := scaleDuration(v, unit)
		if !ok {
			return 0, decodeError(token, name, ErrOutOfRange)
		}
		return d, nil
	})
}

func scaleDuration[R Numeric](v R, unit time.Duration) (time.Duration, bool) {
	var zero R
	// R(1)/R(2) is zero only for integer representations.
	if R(1)/R(2) != 0 {
		f := float64(v) * float64(unit)
		if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return time.Duration(f), true
	}
	// zero-1 wraps around for unsigned representations.
	if zero-1 > zero {
		if uint64(v) > uint64(math.MaxInt64)/uint64(unit) {
			return 0, false
		}
		return time.Duration(uint64(v)) * unit, true
	}
	n := int64(v)
	if n > math.MaxInt64/int64(unit) || n < math.MinInt64/int64(unit) {
		return 0, false
	}
	return time.Duration(n) * unit, true
}

// Enum builds a string value type that accepts only the listed values
// (case-sensitive).
func Enum(values ...string) ValueType[string] {
	if len(values) == 0 {
		panic("clargs: enum needs at least one value")
	}
	allowed := append([]string(nil), values...)
	name := "one of [" + strings.Join(allowed, " ") + "]"
	return NewValueType(name, func(token string) (string, error) {
		for _, v := range allowed {
			if token == v {
				return token, nil
			}
		}
		return "", decodeErrorf(token, name, ErrInvalidFormat, "must be one of: %s", strings.Join(allowed, ", "))
	})
}
