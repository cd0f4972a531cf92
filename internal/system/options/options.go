// Released under an MIT license. See LICENSE.

// Package options parses the brack command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	terminal = func() bool {
		fd := os.Stdin.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	usage = `brack

Usage:
  brack [options] [-b] PROGRAM
  brack [options] -e COMMAND
  brack [options] compile SOURCE OUTPUT
  brack [options] decompile PROGRAM
  brack [options]
  brack -h
  brack -v

Arguments:
  PROGRAM  Path to a Brack program.
  SOURCE   Path to a Brack program in text form.
  OUTPUT   Path for the compiled program.

Options:
  -b, --binary           PROGRAM is in binary form.
  -c, --config=FILE      Read host configuration from FILE.
  -d, --debug            Log at debug level.
  -e, --eval=COMMAND     Evaluate COMMAND.
  -i, --interactive      Invert interactive mode.
  -q, --queue=SIZE       Statements buffered while streaming [default: 0].
  -u, --unthreaded       Read the whole program before evaluating it.
  -h, --help             Display this help.
  -v, --version          Print brack version.

If brack's stdin is a TTY, and brack was invoked with no PROGRAM or COMMAND,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// T (options) holds the parsed command line.
type T struct {
	Binary      bool   // PROGRAM is in binary form.
	Command     string // Text to evaluate.
	Compile     bool   // Compile SOURCE to OUTPUT.
	Config      string // Host configuration file.
	Debug       bool   // Log at debug level.
	Decompile   bool   // Write PROGRAM as text.
	Interactive bool   // Run the REPL.
	Message     string // Help or version text. If set, print it and exit.
	Output      string // Path for the compiled program.
	Program     string // Path to the program or the source to compile.
	Queue       int    // Statements buffered while streaming.
	Unthreaded  bool   // Read the whole program before evaluating it.
}

// Parse parses the command line arguments argv, not including the command name.
// A nil argv means no arguments.
func Parse(argv []string, version string) (*T, error) {
	if argv == nil {
		argv = []string{}
	}

	message := ""

	p := &docopt.Parser{
		HelpHandler: func(err error, output string) {
			if err == nil {
				message = output
			}
		},
	}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, usage)
	}

	t := &T{}

	if message != "" {
		t.Message = message

		return t, nil
	}

	t.Binary, _ = opts.Bool("--binary")
	t.Command, _ = opts.String("--eval")
	t.Compile, _ = opts.Bool("compile")
	t.Config, _ = opts.String("--config")
	t.Debug, _ = opts.Bool("--debug")
	t.Decompile, _ = opts.Bool("decompile")
	t.Output, _ = opts.String("OUTPUT")
	t.Unthreaded, _ = opts.Bool("--unthreaded")

	t.Program, _ = opts.String("PROGRAM")
	if t.Compile {
		t.Program, _ = opts.String("SOURCE")
	}

	t.Queue, err = opts.Int("--queue")
	if err != nil || t.Queue < 0 {
		return nil, fmt.Errorf("invalid queue size: %v", opts["--queue"])
	}

	if t.Decompile {
		t.Binary = true
	}

	if t.Program == "" && t.Command == "" {
		t.Interactive = terminal()
	}

	invert, _ := opts.Bool("--interactive")
	t.Interactive = t.Interactive != invert

	return t, nil
}
