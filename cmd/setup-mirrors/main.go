// Package main provides the CLI entrypoint for setup-mirrors.
//
// setup-mirrors links each setup of a catalog table to its horizontal
// mirror image:
//   - pair: run a pairing pass over a table and write the linked table
//   - check: verify the links already in a table
//   - mirror: print the mirrored form of setup codes
//   - clear: print setup codes reduced to their fields
//   - sort: print piece sequences in canonical order
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"setup-mirrors/internal/logging"
	"setup-mirrors/internal/match"
)

const usage = `usage: setup-mirrors <command> [arguments]

commands:
  pair   [-config file] [-in path] [-out path] [-db path] [-report path]
  check  [-config file] [-in path] [-report path]
  mirror CODE...
  clear  CODE...
  sort   SEQUENCE...

mirror, clear and sort read one value per line from stdin when no
arguments are given.
`

var commands = []string{"pair", "check", "mirror", "clear", "sort", "help"}

// env is what a command may touch outside its arguments.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logging.ConfigureRuntime(),
	}

	code := run(ctx, os.Args[1:], e)

	stop()
	os.Exit(code)
}

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, e env) int {
	if len(args) == 0 {
		fmt.Fprint(e.stderr, usage)
		return 2
	}

	var err error

	switch cmd, rest := args[0], args[1:]; cmd {
	case "pair":
		err = runPair(ctx, rest, e)
	case "check":
		err = runCheck(rest, e)
	case "mirror":
		err = runEach(rest, e, mirrorCode)
	case "clear":
		err = runEach(rest, e, clearCode)
	case "sort":
		err = runEach(rest, e, sortSequence)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(e.stdout, usage)
		return 0
	default:
		fmt.Fprintf(e.stderr, "setup-mirrors: unknown command %q\n", cmd)

		if near, ok := match.Closest(cmd, commands, 2); ok {
			fmt.Fprintf(e.stderr, "did you mean %q?\n", near)
		}

		fmt.Fprintf(e.stderr, "\n%s", usage)

		return 2
	}

	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(e.stderr, "setup-mirrors: %v\n", err)
		return 1
	}

	return 0
}
