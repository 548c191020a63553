//go:build !clargs_debug

package clargs

const debugAssertions = false

// assertParsed is a no-op unless built with the clargs_debug tag.
func (p *Parser) assertParsed() {}
