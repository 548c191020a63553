// Package clargs parses command lines against a fixed set of statically
// declared flags and options.
//
// Descriptors are declared once, usually as package-level variables:
//
//	var (
//		verbose = clargs.NewFlag("--verbose,-v", "Enable verbose output")
//		port    = clargs.NewOption("--port", "<number>", "Port to listen on", clargs.Uint16).Required()
//	)
//
// Registering a descriptor on a Parser returns a typed handle that is read
// after a successful Parse:
//
//	p := clargs.New()
//	v := p.Flag(verbose)
//	listen := clargs.AddOption(p, port) // *clargs.Slot[uint16]
//	if err := p.Parse(os.Args); err != nil {
//		os.Exit(p.Report(err))
//	}
//	fmt.Println(v.Present(), listen.Value())
//
// Every token is either an identifier or the value of the option right
// before it. There are no positional arguments, no "--name=value" form and
// no combined short flags. Parsing stops at the first error, which is always
// a *ParseError; undecodable values also wrap a *DecodeError.
//
// Reading results before a successful Parse is a programmer error. Building
// with the clargs_debug tag turns it into a panic.
package clargs
