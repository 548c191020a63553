package clargs

import (
	"fmt"
	"strings"
	"unicode"
)

// Descriptor is the static definition of a flag or an option.
// Descriptors are immutable once built and are usually declared as
// package-level variables.
type Descriptor interface {
	// Identifiers returns the canonical identifier followed by its aliases.
	Identifiers() []string
	Description() string
	// ValueHint is the placeholder shown in help, empty for flags.
	ValueHint() string
	IsRequired() bool
	// TypeName is the pretty name of the value type, empty for flags.
	TypeName() string
	TakesValue() bool
}

// Flag is a presence-only descriptor.
type Flag struct {
	ids         []string
	description string
}

// NewFlag declares a flag. identifiers is a comma separated list where the
// first entry is canonical, e.g. "--verbose,-v". Malformed identifiers panic.
func NewFlag(identifiers, description string) *Flag {
	return &Flag{ids: splitIdentifiers(identifiers), description: description}
}

func (f *Flag) Identifiers() []string { return append([]string(nil), f.ids...) }
func (f *Flag) Description() string   { return f.description }
func (f *Flag) ValueHint() string     { return "" }
func (f *Flag) IsRequired() bool      { return false }
func (f *Flag) TypeName() string      { return "" }
func (f *Flag) TakesValue() bool      { return false }

// String returns the canonical identifier.
func (f *Flag) String() string { return f.ids[0] }

// Option is a descriptor whose identifier must be followed by a value token
// that decodes to T.
type Option[T any] struct {
	ids         []string
	valueHint   string
	description string
	required    bool
	typ         ValueType[T]
}

// NewOption declares an option of type T. valueHint is only used by help
// text, e.g. "<port>".
func NewOption[T any](identifiers, valueHint, description string, typ ValueType[T]) *Option[T] {
	if typ.decode == nil {
		panic(fmt.Sprintf("clargs: option %q has no value type", identifiers))
	}
	return &Option[T]{
		ids:         splitIdentifiers(identifiers),
		valueHint:   valueHint,
		description: description,
		typ:         typ,
	}
}

// Required returns a copy of the option that must be present on the
// command line.
func (o *Option[T]) Required() *Option[T] {
	c := *o
	c.required = true
	return &c
}

func (o *Option[T]) Identifiers() []string { return append([]string(nil), o.ids...) }
func (o *Option[T]) Description() string   { return o.description }
func (o *Option[T]) IsRequired() bool      { return o.required }
func (o *Option[T]) TypeName() string      { return o.typ.Name() }
func (o *Option[T]) TakesValue() bool      { return true }

// ValueHint returns the help placeholder, defaulting to "<type name>".
func (o *Option[T]) ValueHint() string {
	if o.valueHint != "" {
		return o.valueHint
	}
	return "<" + o.typ.Name() + ">"
}

// Type returns the value type used to decode the option's token.
func (o *Option[T]) Type() ValueType[T] { return o.typ }

// String returns the canonical identifier.
func (o *Option[T]) String() string { return o.ids[0] }

func splitIdentifiers(list string) []string {
	if strings.TrimSpace(list) == "" {
		panic("clargs: descriptor needs at least one identifier")
	}
	parts := strings.Split(list, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			panic(fmt.Sprintf("clargs: empty identifier in %q", list))
		}
		if strings.IndexFunc(p, unicode.IsSpace) >= 0 {
			panic(fmt.Sprintf("clargs: identifier %q in %q contains whitespace", p, list))
		}
		ids = append(ids, p)
	}
	return ids
}

// matches reports whether token is one of ids.
func matches(ids []string, token string) bool {
	for _, id := range ids {
		if id == token {
			return true
		}
	}
	return false
}
