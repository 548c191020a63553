package clargs_test

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-clargs/clargs"
)

var (
	verbose = clargs.NewFlag("--verbose,-v", "Enable verbose output")
	file    = clargs.NewOption("--file,-f", "<path>", "File to read", clargs.Path).Required()
	port    = clargs.NewOption("--port", "<number>", "Port to listen on", clargs.Uint16)
	timeout = clargs.NewOption("--timeout", "<seconds>", "Request timeout", clargs.Seconds)
)

func Example() {
	p := clargs.New()
	isVerbose := p.Flag(verbose)
	path := clargs.AddOption(p, file)
	listen := clargs.AddOption(p, port)
	wait := clargs.AddOption(p, timeout)

	err := p.Parse([]string{"server", "-v", "--file", "config.toml", "--port", "0x1F90"})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("verbose:", isVerbose.Present())
	fmt.Println("file:", path.Value())
	fmt.Println("port:", listen.Value())
	fmt.Println("timeout:", wait.Or(0))
	// Output:
	// verbose: true
	// file: config.toml
	// port: 8080
	// timeout: 0s
}

func ExampleParser_Parse_invalidValue() {
	p := clargs.New()
	clargs.AddOption(p, port)

	err := p.Parse([]string{"server", "--port", "abc"})

	var de *clargs.DecodeError
	if errors.As(err, &de) {
		fmt.Println(de.Token, "|", de.Type, "|", de.Reason)
	}
	fmt.Println(clargs.ExitCode(err))
	// Output:
	// abc | 16-bit unsigned integer | invalid format
	// 3
}

func ExampleParser_Usage() {
	p := clargs.New()
	p.Flag(verbose)
	clargs.AddOption(p, file)
	fmt.Println(p.Usage())
	// Output: Usage: program [--verbose] --file <path>
}
