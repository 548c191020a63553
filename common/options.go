package common

import (
	"time"

	"github.com/dzonerzy/go-clargs/clargs"
)

// Common options.
var (
	Config  = clargs.NewOption("--configuration,--config", "<filepath>", "Specify the config file path", clargs.Path)
	Output  = clargs.NewOption("--output,-o", "<filepath>", "Specify the output file path", clargs.Path)
	Input   = clargs.NewOption("--input,-i", "<filepath>", "Specify the input file path", clargs.Path)
	Timeout = clargs.NewOption[time.Duration]("--timeout", "<seconds>", "Specify the timeout duration in seconds", clargs.Seconds)

	IP       = clargs.NewOption("--ip,--address", "<ip address>", "Specify the IP address", clargs.String)
	Port     = clargs.NewOption("--port", "<number>", "Specify the port number", clargs.Uint16)
	Threads  = clargs.NewOption("--threads", "<number>", "Specify the number of threads", clargs.Uint16)
	Username = clargs.NewOption("--username,--user", "<username>", "Specify the username", clargs.String)
	Password = clargs.NewOption("--password,--pass", "<password>", "Specify the password", clargs.String)

	MaxRetries = clargs.NewOption("--max-retries", "<number>", "Specify the maximum number of retries", clargs.Uint32)
)

// Flags returns every common flag in declaration order.
func Flags() []*clargs.Flag {
	return []*clargs.Flag{All, Debug, Experimental, Force, Help, Overwrite, Parallel, Profile, Quiet, Recursive, Verbose, Version}
}
