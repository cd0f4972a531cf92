// Released under an MIT license. See LICENSE.

/*
Brack is a small scripting language whose programs are nested bracketed
expressions:

	[global greeting "hello, world"]
	[print [global greeting]]

	[script twice "x" "[return [mul [local x] 2]]"]
	[say [call twice 21]]

The brack command runs programs in text or binary form, evaluates a single
command, compiles text to binary and back, or, when its input is a
terminal, starts an interactive session.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bracklang/brack/internal/engine/commands"
	"github.com/bracklang/brack/internal/system/config"
	"github.com/bracklang/brack/internal/system/options"
	"github.com/bracklang/brack/internal/system/source"
	"github.com/bracklang/brack/internal/ui"
	"github.com/bracklang/brack/pkg/codec"
	"github.com/bracklang/brack/pkg/engine"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
)

const version = "brack 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func compile(path, output string) (err error) {
	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	enc := codec.NewEncoder(w)

	r := reader.New(path, src)
	for r.HasNext() {
		s, err := r.Next()
		if err != nil {
			return err
		}

		if err := enc.Encode(s); err != nil {
			return err
		}
	}

	return w.Flush()
}

func decompile(path string, out io.Writer) error {
	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w := bufio.NewWriter(out)

	d := codec.NewDecoder(src)
	for d.HasNext() {
		s, err := d.Next()
		if err != nil {
			return err
		}

		if _, err := w.WriteString(reader.Text(s)); err != nil {
			return err
		}
	}

	return w.Flush()
}

func execute(opts *options.T, cfg *config.T, stdin io.Reader, stdout io.Writer) error {
	table, err := ram.NewTable(commands.Operators(stdout)...)
	if err != nil {
		return err
	}

	r := ram.New(table)

	if err := cfg.Seed(r); err != nil {
		return err
	}

	o := engine.Options{
		Queue:    cfg.Queue,
		Threaded: cfg.Threaded && !opts.Unthreaded,
	}

	if opts.Queue > 0 {
		o.Queue = opts.Queue
	}

	switch {
	case opts.Command != "":
		_, err = engine.RunText(r, "command", strings.NewReader(opts.Command), o)

	case opts.Program != "":
		src, err := source.Open(opts.Program)
		if err != nil {
			return err
		}
		defer src.Close()

		slog.Debug("run", slog.String("program", opts.Program), slog.Bool("binary", opts.Binary))

		if opts.Binary {
			_, err = engine.RunBytes(r, src, o)
		} else {
			_, err = engine.RunText(r, opts.Program, src, o)
		}

		return err

	case opts.Interactive:
		return ui.Start(r, stdout, cfg)

	default:
		_, err = engine.RunText(r, "stdin", stdin, o)
	}

	return err
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv, version)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 2
	}

	if opts.Message != "" {
		fmt.Fprintln(stdout, strings.TrimRight(opts.Message, "\n"))

		return 0
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(opts.Config)
	if err == nil {
		switch {
		case opts.Compile:
			err = compile(opts.Program, opts.Output)
		case opts.Decompile:
			err = decompile(opts.Program, stdout)
		default:
			err = execute(opts, cfg, stdin, stdout)
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, "brack:", err)

		return 1
	}

	return 0
}
