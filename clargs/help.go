package clargs

import (
	"fmt"
	"strings"
)

// Usage returns the one-line usage summary, e.g.
//
//	Usage: prog [--verbose] --file <path>
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(p.programName())
	for _, e := range p.entries {
		b.WriteByte(' ')
		b.WriteString(usageTerm(e.desc))
	}
	return b.String()
}

func usageTerm(d Descriptor) string {
	term := d.Identifiers()[0]
	if d.TakesValue() {
		term += " " + d.ValueHint()
	}
	if !d.IsRequired() {
		term = "[" + term + "]"
	}
	return term
}

// Help returns the full help text: description, usage line, one row per
// descriptor and the group rules.
//
func (p *Parser) Help() string {
	var b strings.Builder
	if p.description != "" {
		b.WriteString(p.description)
		b.WriteString("\n\n")
	}
	b.WriteString(p.Usage())
	b.WriteString("\n")

	if len(p.entries) == 0 {
		return b.String()
	}

	// Left column: identifiers and value hint.
	left := make([]string, len(p.entries))
	width := 0
	for i, e := range p.entries {
		col := strings.Join(e.ids, ", ")
		if e.desc.TakesValue() {
			col += " " + e.desc.ValueHint()
		}
		left[i] = col
		if len(col) > width {
			width = len(col)
		}
	}

	b.WriteString("\nOptions:\n")
	for i, e := range p.entries {
		fmt.Fprintf(&b, "  %-*s  %s", width, left[i], e.desc.Description())
		if e.desc.IsRequired() {
			b.WriteString(" (REQUIRED)")
		}
		b.WriteString("\n")
	}

	if len(p.groups) > 0 {
		b.WriteString("\nGroups:\n")
		for _, g := range p.groups {
			fmt.Fprintf(&b, "  %s (%s): %s\n", g.Name, g.Constraint, strings.Join(canonicalIDs(g.Descriptors), ", "))
		}
	}
	return b.String()
}

// PrintHelp writes Help to the IO manager's standard output.
func (p *Parser) PrintHelp() {
	fmt.Fprint(p.ioManager().Out(), p.Help())
}
