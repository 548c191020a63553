package clargs

import (
	"fmt"
	"strings"
)

// GroupConstraint is the rule a group of descriptors must satisfy after a
// parse.
type GroupConstraint int

const (
	GroupMutuallyExclusive GroupConstraint = iota // at most one may be given
	GroupAtLeastOne                               // one or more must be given
	GroupExactlyOne                               // exactly one must be given
	GroupAllOrNone                                // all or none must be given
)

func (c GroupConstraint) String() string {
	switch c {
	case GroupMutuallyExclusive:
		return "mutually exclusive"
	case GroupAtLeastOne:
		return "at least one"
	case GroupExactlyOne:
		return "exactly one"
	case GroupAllOrNone:
		return "all or none"
	default:
		return "unknown"
	}
}

// Group is a named set of descriptors validated together.
type Group struct {
	Name        string
	Constraint  GroupConstraint
	Descriptors []Descriptor
}

// Group adds a constraint over already registered descriptors. Groups are
// checked after required options, in the order they were added.
func (p *Parser) Group(name string, constraint GroupConstraint, descs ...Descriptor) *Parser {
	if len(descs) < 2 {
		panic(fmt.Sprintf("clargs: group %q needs at least two descriptors", name))
	}
	for _, d := range descs {
		if p.find(d) == nil {
			panic(fmt.Sprintf("clargs: group %q references unregistered descriptor %q", name, d.Identifiers()[0]))
		}
	}
	p.groups = append(p.groups, &Group{
		Name:        name,
		Constraint:  constraint,
		Descriptors: append([]Descriptor(nil), descs...),
	})
	return p
}

// Groups returns the registered groups.
func (p *Parser) Groups() []*Group { return p.groups }

func (p *Parser) validateGroups() error {
	for _, g := range p.groups {
		if err := p.validateGroup(g); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) validateGroup(g *Group) error {
	setCount := 0
	for _, d := range g.Descriptors {
		if p.store.IsSet(d) {
			setCount++
		}
	}

	var msg string
	switch g.Constraint {
	case GroupMutuallyExclusive:
		if setCount > 1 {
			msg = fmt.Sprintf("options in group '%s' are mutually exclusive, but multiple were provided: %s",
				g.Name, strings.Join(p.givenIn(g), ", "))
		}
	case GroupAtLeastOne:
		if setCount == 0 {
			msg = fmt.Sprintf("group '%s' requires at least one of: %s", g.Name, strings.Join(canonicalIDs(g.Descriptors), ", "))
		}
	case GroupExactlyOne:
		if setCount != 1 {
			msg = fmt.Sprintf("group '%s' requires exactly one of: %s, but %d were provided",
				g.Name, strings.Join(canonicalIDs(g.Descriptors), ", "), setCount)
		}
	case GroupAllOrNone:
		if setCount > 0 && setCount < len(g.Descriptors) {
			msg = fmt.Sprintf("group '%s' requires either all or none of: %s", g.Name, strings.Join(canonicalIDs(g.Descriptors), ", "))
		}
	}
	if msg == "" {
		return nil
	}
	return &ParseError{Type: ErrorTypeGroupViolation, Message: msg, Group: g.Name}
}

// givenIn returns the canonical identifiers of the group members that were
// given.
func (p *Parser) givenIn(g *Group) []string {
	var ids []string
	for _, d := range g.Descriptors {
		if p.store.IsSet(d) {
			ids = append(ids, d.Identifiers()[0])
		}
	}
	return ids
}

func canonicalIDs(descs []Descriptor) []string {
	ids := make([]string, len(descs))
	for i, d := range descs {
		ids[i] = d.Identifiers()[0]
	}
	return ids
}
