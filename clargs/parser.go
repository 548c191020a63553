package clargs

import (
	"fmt"
	"path/filepath"

	clargsio "github.com/dzonerzy/go-clargs/io"
)

// ParseState tracks where a parser is in its lifecycle.
type ParseState int

const (
	StateInit ParseState = iota
	StateParsed
	StateFailed
)

func (s ParseState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateParsed:
		return "parsed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// entry binds a registered descriptor to its slot. assign decodes the value
// token (ignored for flags) and stores the result.
type entry struct {
	desc   Descriptor
	ids    []string
	slot   slot
	assign func(token string) error
}

// Parser matches a command line against a fixed set of descriptors.
//
// A parser owns the typed values of one parse. Parse may be called again,
// which discards the previous results first.
type Parser struct {
	description string
	program     string
	entries     []*entry
	groups      []*Group
	store       *Store
	state       ParseState

	io          *clargsio.IOManager
	logger      *clargsio.Logger
	maxDistance int
}

// New creates an empty parser. Register descriptors with Flag and AddOption
// before calling Parse.
func New() *Parser {
	p := &Parser{
		store:       NewStore(),
		maxDistance: 2,
	}
	p.store.guard = p.assertParsed
	return p
}

// WithDescription sets the text shown at the top of Help.
func (p *Parser) WithDescription(description string) *Parser {
	p.description = description
	return p
}

// WithIO sets the IO manager used by Report and PrintHelp.
func (p *Parser) WithIO(io *clargsio.IOManager) *Parser {
	p.io = io
	return p
}

// WithLogger enables debug tracing of each matched token.
func (p *Parser) WithLogger(logger *clargsio.Logger) *Parser {
	p.logger = logger
	return p
}

// SuggestOptions sets the maximum edit distance used for "did you mean"
// suggestions on unknown options. Zero disables suggestions.
func (p *Parser) SuggestOptions(maxDistance int) *Parser {
	p.maxDistance = maxDistance
	return p
}

// Flag registers a flag and returns the handle used to query it.
func (p *Parser) Flag(f *Flag) *FlagValue {
	p.checkUnregistered(f)
	sl := Register[bool](p.store, f)
	p.entries = append(p.entries, &entry{
		desc: f,
		ids:  f.ids,
		slot: sl,
		assign: func(string) error {
			sl.Set(true)
			return nil
		},
	})
	return &FlagValue{slot: sl}
}

// AddOption registers an option on p and returns the typed handle used to
// read its value after Parse.
func AddOption[T any](p *Parser, o *Option[T]) *Slot[T] {
	p.checkUnregistered(o)
	sl := Register[T](p.store, o)
	p.entries = append(p.entries, &entry{
		desc: o,
		ids:  o.ids,
		slot: sl,
		assign: func(token string) error {
			v, err := o.typ.Decode(token)
			if err != nil {
				return err
			}
			sl.Set(v)
			return nil
		},
	})
	return sl
}

func (p *Parser) checkUnregistered(d Descriptor) {
	if p.find(d) != nil {
		panic(fmt.Sprintf("clargs: descriptor %q registered twice", d.Identifiers()[0]))
	}
}

func (p *Parser) find(d Descriptor) *entry {
	for _, e := range p.entries {
		if e.desc == d {
			return e
		}
	}
	return nil
}

// Descriptors returns the registered descriptors in declaration order.
func (p *Parser) Descriptors() []Descriptor {
	out := make([]Descriptor, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.desc
	}
	return out
}

// Parse parses argv, whose first element is the program name. It stops at
// the first error; on failure no value from this call is kept.
func (p *Parser) Parse(argv []string) error {
	p.Reset()
	if len(argv) == 0 {
		p.state = StateFailed
		return NewParseError(ErrorTypeInvalidArgument, "argument vector is empty, expected at least the program name")
	}
	p.program = argv[0]

	if err := p.parseTokens(newTokenQueue(argv[1:])); err != nil {
		p.fail()
		return err
	}
	if err := p.checkRequired(); err != nil {
		p.fail()
		return err
	}
	if err := p.validateGroups(); err != nil {
		p.fail()
		return err
	}

	p.state = StateParsed
	return nil
}

// parseTokens runs the dispatch loop: every token must be an identifier,
// and an option identifier consumes the token after it as its value.
func (p *Parser) parseTokens(q *tokenQueue) error {
	for !q.empty() {
		token := q.front()
		e := p.match(token)
		if e == nil {
			err := unknownOptionError(token)
			err.suggest(p.identifiers(), p.maxDistance)
			return err
		}
		if e.slot.isSet() {
			return duplicateError(token, e.desc)
		}

		if !e.desc.TakesValue() {
			if err := e.assign(""); err != nil {
				return invalidValueError(token, e.desc, err)
			}
			q.dequeue()
			p.trace("flag %s set by %q", e.ids[0], token)
			continue
		}

		if q.len() < 2 {
			return missingValueError(token, e.desc)
		}
		q.dequeue()
		value := q.dequeue()
		if err := e.assign(value); err != nil {
			return invalidValueError(token, e.desc, err)
		}
		p.trace("option %s = %q", e.ids[0], value)
	}
	return nil
}

// match returns the first entry, in declaration order, that owns token.
func (p *Parser) match(token string) *entry {
	for _, e := range p.entries {
		if matches(e.ids, token) {
			return e
		}
	}
	return nil
}

func (p *Parser) checkRequired() error {
	for _, e := range p.entries {
		if e.desc.IsRequired() && !e.slot.isSet() {
			return missingRequiredError(e.desc)
		}
	}
	return nil
}

func (p *Parser) identifiers() []string {
	var ids []string
	for _, e := range p.entries {
		ids = append(ids, e.ids...)
	}
	return ids
}

func (p *Parser) fail() {
	p.store.Reset()
	p.state = StateFailed
}

func (p *Parser) trace(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(format, args...)
	}
}

// Reset discards the results of the last parse.
func (p *Parser) Reset() {
	p.store.Reset()
	p.program = ""
	p.state = StateInit
}

// State returns the lifecycle state of the parser.
func (p *Parser) State() ParseState { return p.state }

// Program returns the program name taken from argv[0].
func (p *Parser) Program() string {
	p.assertParsed()
	return p.program
}

// Has reports whether d was given on the command line.
func (p *Parser) Has(d Descriptor) bool {
	p.assertParsed()
	e := p.find(d)
	return e != nil && e.slot.isSet()
}

// programName is used by help output, which is valid before Parse.
func (p *Parser) programName() string {
	if p.program != "" {
		return filepath.Base(p.program)
	}
	return "program"
}
