//go:build clargs_debug

package clargs

// debugAssertions reports whether query-before-parse checks are compiled in.
const debugAssertions = true

func (p *Parser) assertParsed() {
	if p.state != StateParsed {
		panic(ErrNotParsed)
	}
}
