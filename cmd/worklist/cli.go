// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// cliOptions is the parsed command line.
type cliOptions struct {
	ProtocolPath string
	ConfigPath   string
	OutDir       string
	Spread       []string
	ShowPlates   bool
	LogLevel     string
	Workers      int
}

// parseArgs reads flags and the optional PROTOCOL argument. It reports
// shouldExit when help was printed.
func parseArgs(args []string, out io.Writer) (cliOptions, bool, error) {
	fs := flag.NewFlagSet("worklist", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
worklist - plan liquid-handling transfers for a DNA assembly protocol.

Usage:
  worklist [options] [PROTOCOL]

Arguments:
  PROTOCOL
    Path to a .yaml, .yml or .hcl protocol file.

Options:
`)
		fs.PrintDefaults()
	}

	var opts cliOptions
	fs.StringVar(&opts.ProtocolPath, "protocol", "", "Path to the protocol file.")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML planner configuration.")
	fs.StringVar(&opts.OutDir, "out", ".", "Directory for worklist.csv and plates.csv.")
	spread := fs.String("spread", "", "Comma-separated plate ids whose wells are drained round-robin.")
	fs.BoolVar(&opts.ShowPlates, "show-plates", false, "Print every plate layout after planning.")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Override the configured log level: debug, info, warn or error.")
	fs.IntVar(&opts.Workers, "workers", 0, "Override the configured number of resolution workers.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, true, nil
		}
		return opts, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if opts.ProtocolPath == "" && fs.NArg() > 0 {
		opts.ProtocolPath = fs.Arg(0)
	}
	if opts.ProtocolPath == "" {
		fs.Usage()
		return opts, false, &ExitError{Code: 2, Message: "a protocol file is required"}
	}
	for _, id := range strings.Split(*spread, ",") {
		if id = strings.TrimSpace(id); id != "" {
			opts.Spread = append(opts.Spread, id)
		}
	}

	return opts, false, nil
}
