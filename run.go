package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies options for running a parse pass at the process
// boundary.
type RunOptions struct {
	// Stderr is the stream for the missing-arguments diagnostic. If nil, the
	// command will use [os.Stderr].
	Stderr io.Writer

	// Exit terminates the process on a failed pass. If nil, [os.Exit] is
	// used. Overriding it is mainly useful in tests.
	Exit func(code int)
}

// Run parses args and dispatches handlers, treating a missing required
// argument as fatal: it writes a diagnostic naming every missing argument to
// the error stream and terminates the process with status -1 (most POSIX
// systems report the masked value 255). This matches fail-fast CLI boundaries;
// library embeddings that want a recoverable outcome should call
// [Parser.Parse] instead.
//
// The options parameter may be nil, in which case default values are used.
// See [RunOptions] for more details.
func Run(p *Parser, args []string, options *RunOptions) *ParsedArgs {
	return run(p, options, func() (*ParsedArgs, error) {
		return p.Parse(args)
	})
}

// RunString is [Run] for a single raw input string. See [Parser.ParseString].
func RunString(p *Parser, input string, options *RunOptions) *ParsedArgs {
	return run(p, options, func() (*ParsedArgs, error) {
		return p.ParseString(input)
	})
}

func run(p *Parser, options *RunOptions, parse func() (*ParsedArgs, error)) *ParsedArgs {
	options = checkAndSetRunOptions(options)
	parsed, err := parse()
	if err != nil {
		var missingErr *MissingArgumentsError
		if errors.As(err, &missingErr) {
			fmt.Fprintln(options.Stderr, "Error when parsing arguments: One or more required arguments are missing:")
			for _, name := range missingErr.Names {
				fmt.Fprintln(options.Stderr, "Missing: "+name)
			}
		} else {
			fmt.Fprintf(options.Stderr, "Error when parsing arguments: %v\n", err)
		}
		options.Exit(-1)
		return nil
	}
	return parsed
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}
	return opt
}
