// Package common declares flags and options that most command-line programs
// need, ready to be registered on a clargs.Parser.
package common

import "github.com/dzonerzy/go-clargs/clargs"

// Common flags.
var (
	All          = clargs.NewFlag("--all,-a", "Include all")
	Debug        = clargs.NewFlag("--debug", "Run in debug mode")
	Experimental = clargs.NewFlag("--experimental", "Enable experimental features")
	Force        = clargs.NewFlag("--force,-f", "Force the action")
	Help         = clargs.NewFlag("--help,-h", "Show help menu")
	Overwrite    = clargs.NewFlag("--overwrite", "Allow overwriting existing data")
	Parallel     = clargs.NewFlag("--parallel", "Enable parallel execution")
	Profile      = clargs.NewFlag("--profile", "Profile program performance")
	Quiet        = clargs.NewFlag("--quiet,-q", "Enable quiet output")
	Recursive    = clargs.NewFlag("--recursive,-r", "Enable recursive mode")
	Verbose      = clargs.NewFlag("--verbose,-v", "Enable verbose output")
	Version      = clargs.NewFlag("--version", "Show program version")
)
